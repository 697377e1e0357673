package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khrees2412/cvexpress/internal/app"
	"github.com/khrees2412/cvexpress/internal/matcher"
	"github.com/khrees2412/cvexpress/pkg/models"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for jobs",
	Long:  "Ask Gemini, grounded on Google Search, for three job postings for a role in a city",
	Example: `  cvexpress search --role vendedora --location "São Paulo"
  cvexpress search --role caixa --location Recife --experience "atendimento ao cliente"
  cvexpress search --role garçom --location Natal --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")
		location, _ := cmd.Flags().GetString("location")
		experience, _ := cmd.Flags().GetString("experience")
		asJSON, _ := cmd.Flags().GetBool("json")

		if role == "" || location == "" {
			return fmt.Errorf("%w: --role and --location are required", app.ErrInvalidArgument)
		}

		a, err := app.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		client, err := a.AI(cmd.Context())
		if err != nil {
			return err
		}

		if !asJSON {
			cmd.Printf("Searching for '%s' jobs in %s...\n", role, location)
		}

		result, err := client.FindJobs(cmd.Context(), role, location)
		if err != nil {
			return fmt.Errorf("search jobs: %w", err)
		}

		// Calculate match scores against the given profile
		matches := matcher.Rank(result.Jobs, matcher.Profile{
			Role:       role,
			Location:   location,
			Experience: experience,
		})

		if asJSON {
			return printSearchJSON(cmd, result, matches)
		}

		printSearch(cmd, result, matches, experience != "")
		return nil
	},
}

type scoredJob struct {
	models.Job
	MatchScore float64 `json:"match_score"`
}

func printSearchJSON(cmd *cobra.Command, result models.SearchResult, matches []matcher.Match) error {
	out := struct {
		Jobs     []scoredJob     `json:"jobs"`
		Sources  []models.Source `json:"sources"`
		Degraded bool            `json:"degraded,omitempty"`
	}{
		Jobs:     make([]scoredJob, len(matches)),
		Sources:  result.Sources,
		Degraded: result.Degraded,
	}
	for i, m := range matches {
		out.Jobs[i] = scoredJob{Job: m.Job, MatchScore: m.Score}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printSearch(cmd *cobra.Command, result models.SearchResult, matches []matcher.Match, showScore bool) {
	cmd.Println(titleStyle.Render(fmt.Sprintf("Found %d jobs", len(matches))))
	if result.Degraded {
		cmd.Println(warnStyle.Render("Could not read the search answer; showing generic postings."))
	}

	for i, m := range matches {
		cmd.Printf("\n%d. %s\n", i+1, m.Job.Title)
		cmd.Printf("   %s %s\n", labelStyle.Render("Company:"), m.Job.Company)
		cmd.Printf("   %s %s\n", labelStyle.Render("Description:"), valueStyle.Render(m.Job.Description))
		if showScore {
			cmd.Printf("   %s %.1f%%\n", labelStyle.Render("Match:"), m.Score*100)
		}
	}

	if len(result.Sources) > 0 {
		cmd.Println(titleStyle.Render("Sources"))
		for _, src := range result.Sources {
			cmd.Printf("  - %s %s\n", src.Label(), valueStyle.Render(src.URI))
		}
	}
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("role", "", "Role or area to search for (required)")
	searchCmd.Flags().String("location", "", "City and state (required)")
	searchCmd.Flags().String("experience", "", "Your experience, used to score the results")
	searchCmd.Flags().Bool("json", false, "Print the result as JSON")
}
