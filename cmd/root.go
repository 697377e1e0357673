package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/khrees2412/cvexpress/internal/app"
	"github.com/khrees2412/cvexpress/internal/logger"
)

// application is set by the root pre-run hook and closed by Execute
var application *app.App

var rootCmd = &cobra.Command{
	Use:   "cvexpress",
	Short: "Meu Currículo Express: build a targeted resume by chatting",
	Long: `cvexpress is a terminal assistant that asks for your contact details and work
history in a short conversation, finds matching job postings with Gemini and
Google Search, and writes a resume focused on the posting you pick as a PDF.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize app with all dependencies
		a, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		application = a

		// Store app and logger in command context
		ctx := app.SetAppInContext(cmd.Context(), a)
		cmd.SetContext(logger.WithContext(ctx))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)

	// Cleanup: close app resources
	if application != nil {
		if cerr := application.Close(); cerr != nil {
			fmt.Fprintln(os.Stderr, cerr)
		}
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		stop()
		os.Exit(1)
	}
}
