// Package pdf renders resumes to PDF files.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
	lpdf "github.com/ledongthuc/pdf"

	"github.com/khrees2412/cvexpress/pkg/models"
)

const (
	margin     = 20.0
	lineHeight = 5.0
	fontFamily = "Helvetica"
)

// Section headings, in render order
const (
	HeadingSummary    = "Resumo Profissional"
	HeadingExperience = "Experiência Profissional"
	HeadingSkills     = "Habilidades"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	pathChars  = strings.NewReplacer("/", "_", `\`, "_")
)

// FileName returns the download name for a resume: the user's name with
// whitespace runs collapsed to underscores, suffixed with _CV.pdf.
func FileName(name string) string {
	return pathChars.Replace(whitespace.ReplaceAllString(name, "_")) + "_CV.pdf"
}

// Exporter writes ResumeData as a one-column A4 document
type Exporter struct {
	Creator string
}

// NewExporter creates an Exporter
func NewExporter() *Exporter {
	return &Exporter{Creator: "cvexpress"}
}

// Export writes the resume into dir and returns the path of the new file
func (e *Exporter) Export(data models.ResumeData, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(data.Contact.Name))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := e.Write(data, f); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

// Write renders the resume to w
func (e *Exporter) Write(data models.ResumeData, w io.Writer) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.SetTitle(data.Contact.Name, true)
	doc.SetCreator(e.Creator, true)
	doc.AddPage()

	tr := doc.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := doc.GetPageSize()
	contentWidth := pageWidth - margin*2

	// Name
	doc.SetFont(fontFamily, "B", 24)
	doc.CellFormat(contentWidth, 10, tr(data.Contact.Name), "", 1, "C", false, 0, "")

	// Contact line
	doc.SetFont(fontFamily, "", 10)
	doc.CellFormat(contentWidth, 6, tr(contactLine(data.Contact)), "", 1, "C", false, 0, "")
	doc.Ln(4)

	y := doc.GetY()
	doc.SetDrawColor(200, 200, 200)
	doc.Line(margin, y, pageWidth-margin, y)
	doc.Ln(10)

	section(doc, tr, contentWidth, HeadingSummary, data.Summary)
	section(doc, tr, contentWidth, HeadingExperience, data.Experience)
	section(doc, tr, contentWidth, HeadingSkills, skillsLine(data.Skills))

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

func section(doc *fpdf.Fpdf, tr func(string) string, width float64, heading, body string) {
	doc.SetFont(fontFamily, "B", 14)
	doc.CellFormat(width, 8, tr(heading), "", 1, "L", false, 0, "")

	doc.SetFont(fontFamily, "", 11)
	doc.MultiCell(width, lineHeight, tr(body), "", "L", false)
	doc.Ln(10)
}

func contactLine(c models.UserInfo) string {
	return fmt.Sprintf("%s  |  %s  |  %s", c.Phone, c.Email, c.Location)
}

func skillsLine(skills []string) string {
	items := make([]string, len(skills))
	for i, skill := range skills {
		items[i] = "• " + skill
	}
	return strings.Join(items, "      ")
}

// ReadText extracts the plain text of a PDF file. Used to check exported
// files.
func ReadText(path string) (pages int, text string, err error) {
	f, r, err := lpdf.Open(path)
	if err != nil {
		return 0, "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return 0, "", fmt.Errorf("failed to extract text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return 0, "", fmt.Errorf("failed to read text: %w", err)
	}
	return r.NumPage(), buf.String(), nil
}
