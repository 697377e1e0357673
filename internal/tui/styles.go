package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title  lipgloss.Style
	bot    lipgloss.Style
	user   lipgloss.Style
	body   lipgloss.Style
	option lipgloss.Style
	muted  lipgloss.Style
	button lipgloss.Style
	errMsg lipgloss.Style
}

// newStyles binds the styles to out so colors are only emitted for terminals
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1),
		bot: r.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true),
		user: r.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true),
		body: r.NewStyle().
			Foreground(lipgloss.Color("7")),
		option: r.NewStyle().
			Foreground(lipgloss.Color("14")),
		muted: r.NewStyle().
			Foreground(lipgloss.Color("8")).
			Italic(true),
		button: r.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("2")).
			Bold(true),
		errMsg: r.NewStyle().
			Foreground(lipgloss.Color("9")),
	}
}
