package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khrees2412/cvexpress/internal/app"
	"github.com/khrees2412/cvexpress/internal/logger"
	"github.com/khrees2412/cvexpress/internal/pdf"
	"github.com/khrees2412/cvexpress/internal/resume"
	"github.com/khrees2412/cvexpress/pkg/models"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Render a resume JSON file as PDF",
	Long: `Render a resume document to <Name>_CV.pdf. The input is JSON with "contact",
"summary", "experience" and "skills" fields.`,
	Example: `  cvexpress pdf --in resume.json
  cvexpress pdf --in resume.json --out ~/curriculos --verify`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		outDir, _ := cmd.Flags().GetString("out")
		verify, _ := cmd.Flags().GetBool("verify")

		if in == "" {
			return fmt.Errorf("%w: --in is required", app.ErrInvalidArgument)
		}

		a, err := app.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		if outDir == "" {
			outDir = a.Config.OutputDir
		}

		data, err := readResumeFile(in)
		if err != nil {
			return err
		}

		path, err := a.Exporter.Export(data, outDir)
		if err != nil {
			return fmt.Errorf("export pdf: %w", err)
		}
		logger.Ctx(cmd.Context()).Info().Str("path", path).Msg("resume exported")
		cmd.Printf("%s %s\n", labelStyle.Render("Saved:"), path)

		if verify {
			pages, text, err := pdf.ReadText(path)
			if err != nil {
				return fmt.Errorf("verify pdf: %w", err)
			}
			if !strings.Contains(text, data.Contact.Name) {
				return fmt.Errorf("verify pdf: name %q not found in %s", data.Contact.Name, path)
			}
			cmd.Printf("%s %d page(s), %d characters of text\n", labelStyle.Render("Verified:"), pages, len(text))
		}
		return nil
	},
}

// readResumeFile loads a ResumeData document and normalizes it the same way
// the conversation does
func readResumeFile(path string) (models.ResumeData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.ResumeData{}, fmt.Errorf("read %s: %w", path, err)
	}

	var data models.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.ResumeData{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if strings.TrimSpace(data.Contact.Name) == "" {
		return models.ResumeData{}, fmt.Errorf("%w: contact.name is required", app.ErrInvalidArgument)
	}

	return resume.Assemble(data.Contact, models.GeneratedResume{
		Summary:    data.Summary,
		Experience: data.Experience,
		Skills:     data.Skills,
	}), nil
}

func init() {
	rootCmd.AddCommand(pdfCmd)

	pdfCmd.Flags().String("in", "", "Resume JSON file (required)")
	pdfCmd.Flags().String("out", "", "Output directory (default from config)")
	pdfCmd.Flags().Bool("verify", false, "Read the PDF back and check its text")
}
