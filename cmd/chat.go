package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/khrees2412/cvexpress/internal/app"
	"github.com/khrees2412/cvexpress/internal/chat"
	"github.com/khrees2412/cvexpress/internal/logger"
	"github.com/khrees2412/cvexpress/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the resume assistant",
	Long: `Start the interactive conversation. The assistant collects your contact details
and experience, searches for three matching jobs and writes a resume for the
one you choose.

Type /reiniciar to start over or /sair to quit.`,
	Example: `  cvexpress chat
  cvexpress chat --out ~/curriculos`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = a.Config.OutputDir
		}

		// The observer renders messages while a turn is still waiting on Gemini.
		var view *tui.Presenter
		engine, err := a.NewEngine(cmd.Context(), chat.WithObserver(func(s chat.State) {
			if view != nil {
				view.Observe(s)
			}
		}))
		if err != nil {
			return err
		}
		view = tui.New(cmd.InOrStdin(), cmd.OutOrStdout(), engine, a.Exporter, tui.WithOutputDir(outDir))

		logger.Ctx(cmd.Context()).Debug().Str("output_dir", outDir).Msg("starting chat")
		if err := view.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().String("out", "", "Directory for the generated PDF (default from config)")
}
