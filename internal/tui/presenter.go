// Package tui is the terminal front end of the conversation. It prints the
// engine's messages and feeds typed lines back into it.
package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/khrees2412/cvexpress/internal/chat"
	"github.com/khrees2412/cvexpress/internal/textnorm"
	"github.com/khrees2412/cvexpress/pkg/models"
)

const (
	cmdQuit    = "/sair"
	cmdRestart = "/reiniciar"
	cmdPDF     = "/pdf"
)

// Engine is the conversation the presenter drives
type Engine interface {
	Start(ctx context.Context) error
	Accept(ctx context.Context) error
	Decline() error
	HandleInput(ctx context.Context, raw string)
	Snapshot() chat.State
	Resume() (models.ResumeData, bool)
}

// Exporter writes the finished resume
type Exporter interface {
	Export(data models.ResumeData, dir string) (string, error)
}

// Option configures a Presenter
type Option func(*Presenter)

// WithOutputDir sets where PDFs are saved
func WithOutputDir(dir string) Option {
	return func(p *Presenter) { p.outputDir = dir }
}

// Presenter renders engine state to a terminal
type Presenter struct {
	in        *bufio.Scanner
	out       io.Writer
	engine    Engine
	exporter  Exporter
	outputDir string
	st        styles

	session      string
	rendered     int
	loading      bool
	offerPDF     bool
	announcedEnd bool
}

// New creates a presenter reading lines from in and writing to out
func New(in io.Reader, out io.Writer, engine Engine, exporter Exporter, opts ...Option) *Presenter {
	p := &Presenter{
		in:        bufio.NewScanner(in),
		out:       out,
		engine:    engine,
		exporter:  exporter,
		outputDir: ".",
		st:        newStyles(out),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run starts the conversation and processes input until EOF, /sair or ctx
// cancellation. /pdf saves the finished resume again at any time.
func (p *Presenter) Run(ctx context.Context) error {
	fmt.Fprintln(p.out, p.st.title.Render("Meu Currículo Express"))
	fmt.Fprintln(p.out, p.st.muted.Render("Digite /reiniciar para recomeçar ou /sair para sair."))

	if err := p.start(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := p.readLine(p.promptFor(p.engine.Snapshot()))
		if !ok {
			fmt.Fprintln(p.out)
			return p.in.Err()
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case cmdQuit:
			fmt.Fprintln(p.out, p.st.muted.Render("Até logo!"))
			return nil
		case cmdRestart:
			if err := p.start(ctx); err != nil {
				return err
			}
			continue
		case cmdPDF:
			p.savePDF()
			continue
		}

		if err := p.handle(ctx, line); err != nil {
			return err
		}
		p.Observe(p.engine.Snapshot())

		if p.offerPDF {
			p.offerPDF = false
			if err := p.offerDownload(); err != nil {
				return err
			}
		}
		p.announceEnd(p.engine.Snapshot())
	}
}

func (p *Presenter) start(ctx context.Context) error {
	p.announcedEnd = false
	p.offerPDF = false
	if err := p.engine.Start(ctx); err != nil {
		return err
	}
	p.Observe(p.engine.Snapshot())
	return nil
}

// handle forwards one line to the engine, answering the greeting when it is
// pending
func (p *Presenter) handle(ctx context.Context, line string) error {
	s := p.engine.Snapshot()
	if !s.AwaitingConsent {
		p.engine.HandleInput(ctx, line)
		return nil
	}

	switch consentChoice(line) {
	case choiceAccept:
		if err := p.engine.Accept(ctx); err != nil {
			return err
		}
	case choiceDecline:
		if err := p.engine.Decline(); err != nil {
			return err
		}
	default:
		fmt.Fprintln(p.out, p.st.muted.Render("Digite 1 para começar ou 2 para sair."))
	}
	return nil
}

// Observe renders the messages of s that have not been printed yet. It can be
// registered with chat.WithObserver to render while a turn is still running.
func (p *Presenter) Observe(s chat.State) {
	if s.SessionID != p.session {
		if p.session != "" {
			fmt.Fprintln(p.out, p.st.muted.Render("--- nova conversa ---"))
		}
		p.session = s.SessionID
		p.rendered = 0
		p.loading = false
	}

	for _, msg := range s.Messages[min(p.rendered, len(s.Messages)):] {
		p.renderMessage(msg)
	}
	p.rendered = len(s.Messages)

	if s.Loading && !p.loading {
		fmt.Fprintln(p.out, p.st.muted.Render("digitando..."))
	}
	p.loading = s.Loading
}

func (p *Presenter) renderMessage(msg chat.Message) {
	// User lines were already typed into the terminal.
	if msg.Sender == chat.SenderUser {
		return
	}

	prefix := p.st.bot.Render("CV Express:")
	switch v := msg.Payload.(type) {
	case chat.Text:
		if strings.HasPrefix(v.Body, "Desculpe,") {
			fmt.Fprintf(p.out, "%s %s\n", prefix, p.st.errMsg.Render(v.Body))
			return
		}
		fmt.Fprintf(p.out, "%s %s\n", prefix, p.st.body.Render(v.Body))
	case chat.OptionList:
		fmt.Fprintf(p.out, "%s %s\n", prefix, p.st.body.Render(v.Prompt))
		for i, opt := range v.Options {
			fmt.Fprintf(p.out, "  %s\n", p.st.option.Render(optionLabel(i, opt)))
		}
	case chat.SourceList:
		fmt.Fprintf(p.out, "  %s\n", p.st.muted.Render(v.Title))
		for _, src := range v.Sources {
			fmt.Fprintf(p.out, "  - %s\n", p.st.muted.Render(sourceLabel(src)))
		}
	case chat.ActionButton:
		fmt.Fprintf(p.out, "  %s\n", p.st.button.Render("[ "+v.Label+" ]"))
		if v.Action == chat.ActionDownloadPDF {
			p.offerPDF = true
		}
	}
}

func (p *Presenter) offerDownload() error {
	data, ok := p.engine.Resume()
	if !ok {
		return nil
	}

	answer, ok := p.readLine("Salvar o PDF agora? [S/n] ")
	if !ok {
		return nil
	}
	switch textnorm.Fold(strings.TrimSpace(answer)) {
	case "", "s", "sim", "y", "yes":
	default:
		fmt.Fprintln(p.out, p.st.muted.Render("Tudo bem, o PDF não foi salvo. Digite /pdf quando quiser salvar."))
		return nil
	}

	p.export(data)
	return nil
}

// savePDF exports the resume on request, if the conversation produced one
func (p *Presenter) savePDF() {
	data, ok := p.engine.Resume()
	if !ok {
		fmt.Fprintln(p.out, p.st.muted.Render("Ainda não há currículo para salvar."))
		return
	}
	p.export(data)
}

func (p *Presenter) export(data models.ResumeData) {
	path, err := p.exporter.Export(data, p.outputDir)
	if err != nil {
		fmt.Fprintln(p.out, p.st.errMsg.Render("Não consegui salvar o PDF: "+err.Error()))
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", p.st.user.Render("PDF salvo em"), path)
}

func (p *Presenter) announceEnd(s chat.State) {
	if !s.Step.Terminal() || p.announcedEnd {
		return
	}
	p.announcedEnd = true
	if s.Step == chat.StepDone {
		fmt.Fprintln(p.out, p.st.muted.Render("Digite /pdf para salvar o currículo de novo, /reiniciar para criar outro ou /sair para sair."))
		return
	}
	fmt.Fprintln(p.out, p.st.muted.Render("Digite /reiniciar para recomeçar ou /sair para sair."))
}

func (p *Presenter) promptFor(s chat.State) string {
	if s.AwaitingConsent {
		return "[1] Sim  [2] Agora não > "
	}
	return p.st.user.Render("Você:") + " "
}

func (p *Presenter) readLine(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

type choice int

const (
	choiceUnknown choice = iota
	choiceAccept
	choiceDecline
)

func consentChoice(input string) choice {
	switch textnorm.Fold(strings.TrimSpace(input)) {
	case "1", "s", "sim", "sim, vamos la!", "vamos":
		return choiceAccept
	case "2", "n", "nao", "agora nao":
		return choiceDecline
	default:
		return choiceUnknown
	}
}

// optionLabel numbers an option unless its label already starts with its
// number, as job options do
func optionLabel(i int, opt chat.Option) string {
	n := strconv.Itoa(i + 1)
	if strings.HasPrefix(opt.Label, n+".") {
		return opt.Label
	}
	return "[" + n + "] " + opt.Label
}

func sourceLabel(src models.Source) string {
	if src.Title == "" || src.Title == src.URI {
		return src.URI
	}
	return src.Label() + " <" + src.URI + ">"
}
