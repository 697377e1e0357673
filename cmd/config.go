package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khrees2412/cvexpress/internal/app"
	"github.com/khrees2412/cvexpress/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.FromContext(cmd.Context())
		if err != nil {
			return err
		}
		cfg := a.Config

		cmd.Println(titleStyle.Render("Configuration"))
		rows := []struct {
			label string
			value string
		}{
			{"Config File:", config.GetConfigPath()},
			{"Gemini API Key:", config.MaskSecret(cfg.GeminiAPIKey)},
			{"Search Model:", cfg.SearchModel},
			{"Resume Model:", cfg.ResumeModel},
			{"Output Dir:", cfg.OutputDir},
			{"Greeting Delay:", cfg.GreetingDelay.String()},
			{"Prompt Delay:", cfg.PromptDelay.String()},
			{"Done Marker:", cfg.DoneMarker},
			{"Log Level:", cfg.LogLevel},
			{"Log Format:", cfg.LogFormat},
			{"Log File:", logFileLabel(cfg.LogFile)},
		}
		for _, row := range rows {
			cmd.Printf("%s %s\n", labelStyle.Render(row.label), valueStyle.Render(row.value))
		}
		return nil
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Update a configuration value",
	Args:  cobra.ExactArgs(2),
	Example: `  cvexpress config set gemini_api_key YOUR_KEY
  cvexpress config set output_dir ~/curriculos
  cvexpress config set log_level debug`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		if err := config.Set(key, value); err != nil {
			if errors.Is(err, config.ErrUnknownKey) {
				return fmt.Errorf("%w: %v (valid keys: %s)", app.ErrInvalidArgument, err, strings.Join(config.Keys(), ", "))
			}
			return fmt.Errorf("update config: %w", err)
		}

		shown := config.Get(key)
		if key == "gemini_api_key" {
			shown = config.MaskSecret(shown)
		}
		cmd.Printf("✓ Configuration updated: %s = %s\n", key, shown)
		return nil
	},
}

func logFileLabel(path string) string {
	if path == "" {
		return "(stderr)"
	}
	return path
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)
}
