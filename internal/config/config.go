package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	SearchModel  string `mapstructure:"search_model" validate:"required"`
	ResumeModel  string `mapstructure:"resume_model" validate:"required"`
	OutputDir    string `mapstructure:"output_dir" validate:"required"`
	// Conversation pacing
	GreetingDelay time.Duration `mapstructure:"greeting_delay" validate:"min=0"`
	PromptDelay   time.Duration `mapstructure:"prompt_delay" validate:"min=0"`
	DoneMarker    string        `mapstructure:"done_marker" validate:"required"`
	// Logging
	LogLevel  string `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=console json"`
	LogFile   string `mapstructure:"log_file"`
}

var AppConfig *Config

const (
	dirName   = ".cvexpress"
	fileName  = "config.yaml"
	envPrefix = "CVEXPRESS"
)

var defaults = map[string]any{
	"gemini_api_key": "",
	"search_model":   "gemini-2.5-flash",
	"resume_model":   "gemini-2.5-pro",
	"output_dir":     ".",
	"greeting_delay": "500ms",
	"prompt_delay":   "1s",
	"done_marker":    "só isso",
	"log_level":      "info",
	"log_format":     "console",
	"log_file":       "",
}

// Initialize loads or creates the configuration file in the home directory
func Initialize() error {
	cfg, err := Load(GetConfigPath())
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// Load reads the config file at path, creating it with defaults when it does
// not exist. Environment variables override the file.
func Load(path string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfig(path); err != nil {
			return nil, err
		}
	}

	viper.Reset()
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv("gemini_api_key", envPrefix+"_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind api key env: %w", err)
	}

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal into struct
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config values
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# cvexpress configuration

# Gemini API key (keep this file secure!)
# GEMINI_API_KEY or GOOGLE_API_KEY in the environment also work.
gemini_api_key: ""

# Models used for the job search and for writing the resume
search_model: gemini-2.5-flash
resume_model: gemini-2.5-pro

# Where generated PDFs are written
output_dir: "."

# Conversation
greeting_delay: 500ms
prompt_delay: 1s
done_marker: "só isso"

# Logging: trace, debug, info, warn, error, disabled
log_level: info
# console or json
log_format: console
# Empty logs to stderr
log_file: ""
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// ErrUnknownKey is returned by Set for keys that are not part of Config
var ErrUnknownKey = errors.New("unknown config key")

// Set validates a configuration value and persists it to the config file
func Set(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}

	old := viper.Get(key)
	viper.Set(key, value)

	cfg := &Config{}
	err := viper.Unmarshal(cfg)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		viper.Set(key, old)
		return err
	}
	return writeFileValue(viper.ConfigFileUsed(), key, value)
}

// writeFileValue updates one key of the YAML file at path, keeping every
// other line and comment as it is. Values that only come from the
// environment are never written.
func writeFileValue(path, key, value string) error {
	raw, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		doc = yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{{Kind: yaml.MappingNode}}}
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("failed to update config: %s is not a mapping", path)
	}

	found := false
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			root.Content[i+1].SetString(value)
			found = true
			break
		}
	}
	if !found {
		valueNode := &yaml.Node{}
		valueNode.SetString(value)
		root.Content = append(root.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, valueNode)
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, out, 0600)
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// Keys returns the known configuration keys
func Keys() []string {
	return []string{
		"gemini_api_key",
		"search_model",
		"resume_model",
		"output_dir",
		"greeting_delay",
		"prompt_delay",
		"done_marker",
		"log_level",
		"log_format",
		"log_file",
	}
}

// MaskSecret hides all but the last four characters of a secret
func MaskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return strings.Repeat("*", 8) + s[len(s)-4:]
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, dirName, fileName)
}
