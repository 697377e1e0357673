// Package parser extracts job listings from free-form model output.
package parser

import (
	"regexp"
	"strings"

	"github.com/khrees2412/cvexpress/pkg/models"
)

// Tier identifies which pass produced the parsed jobs
type Tier int

const (
	TierSections Tier = iota + 1
	TierRegex
	TierFallback
)

func (t Tier) String() string {
	switch t {
	case TierSections:
		return "sections"
	case TierRegex:
		return "regex"
	case TierFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Result is the outcome of Parse
type Result struct {
	Jobs []models.Job
	Tier Tier
}

var (
	sectionSplit   = regexp.MustCompile(`\n\d+\.\s`)
	leadingNumber  = regexp.MustCompile(`^\d+\.\s`)
	numberedHeader = regexp.MustCompile(`\d+\.\s+(.+?) - (.+?)\n`)
	nextNumber     = regexp.MustCompile(`\d+\.\s`)
)

// fallbackJobs keep the conversation moving when nothing could be parsed
var fallbackJobs = []models.Job{
	{ID: 1, Title: "Vendedor de Loja", Company: "Lojas Renner", Description: "Atendimento ao cliente, organização da loja e vendas."},
	{ID: 2, Title: "Consultor de Vendas", Company: "Magazine Luiza", Description: "Venda de produtos e serviços, metas e prospecção de clientes."},
	{ID: 3, Title: "Vendedor Interno", Company: "Empresa Local ABC", Description: "Contato com clientes por telefone e e-mail para vendas."},
}

// FallbackJobs returns a copy of the generic placeholder listings
func FallbackJobs() []models.Job {
	jobs := make([]models.Job, len(fallbackJobs))
	copy(jobs, fallbackJobs)
	return jobs
}

// ParseJobs returns the job listings found in text. It never fails: when
// nothing can be recovered the placeholder listings are returned.
func ParseJobs(text string) []models.Job {
	return Parse(text).Jobs
}

// Parse runs the section split, then the regex sweep, then the fallback
func Parse(text string) Result {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	if jobs := parseSections(text); len(jobs) > 0 {
		return Result{Jobs: jobs, Tier: TierSections}
	}
	if jobs := parseRegex(text); len(jobs) > 0 {
		return Result{Jobs: jobs, Tier: TierRegex}
	}
	return Result{Jobs: FallbackJobs(), Tier: TierFallback}
}

// parseSections splits the text on numbered list markers at line starts.
// Each section is "Title - Company" followed by description lines.
func parseSections(text string) []models.Job {
	sections := sectionSplit.Split(text, -1)
	if len(sections) == 0 {
		return nil
	}

	// The first section is either "1. ..." or a preamble before the list.
	if leadingNumber.MatchString(sections[0]) {
		sections[0] = leadingNumber.ReplaceAllString(sections[0], "")
	} else {
		sections = sections[1:]
	}

	var jobs []models.Job
	for _, section := range sections {
		lines := strings.Split(strings.TrimSpace(section), "\n")
		if len(lines) < 2 {
			continue
		}

		title, company := splitHeader(lines[0])
		description := joinLines(lines[1:])
		if title == "" || company == "" || description == "" {
			continue
		}

		jobs = append(jobs, models.Job{
			ID:          len(jobs) + 1,
			Title:       title,
			Company:     company,
			Description: description,
		})
	}
	return jobs
}

// parseRegex finds "N. Title - Company\n" headers anywhere in the text and
// takes everything up to the next "N. " marker as the description.
func parseRegex(text string) []models.Job {
	var jobs []models.Job
	pos := 0
	for pos < len(text) {
		loc := numberedHeader.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		title := cleanField(text[pos+loc[2] : pos+loc[3]])
		company := cleanField(text[pos+loc[4] : pos+loc[5]])
		descStart := pos + loc[1]
		if descStart >= len(text) {
			break
		}

		// The description needs at least one character before the next marker.
		descEnd := len(text)
		if next := nextNumber.FindStringIndex(text[descStart+1:]); next != nil {
			descEnd = descStart + 1 + next[0]
		}
		description := joinLines(strings.Split(text[descStart:descEnd], "\n"))

		if title != "" && company != "" && description != "" {
			jobs = append(jobs, models.Job{
				ID:          len(jobs) + 1,
				Title:       title,
				Company:     company,
				Description: description,
			})
		}
		pos = descEnd
	}
	return jobs
}

func splitHeader(line string) (title, company string) {
	parts := strings.Split(line, " - ")
	title = cleanField(parts[0])
	if len(parts) > 1 {
		company = cleanField(parts[1])
	}
	return title, company
}

// cleanField strips markdown bold markers and surrounding whitespace
func cleanField(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
}

func joinLines(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, " ")
}
