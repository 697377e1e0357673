package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/khrees2412/cvexpress/internal/ai"
	"github.com/khrees2412/cvexpress/internal/chat"
	"github.com/khrees2412/cvexpress/internal/config"
	"github.com/khrees2412/cvexpress/internal/logger"
	"github.com/khrees2412/cvexpress/internal/pdf"
)

// App is the dependency container for the CLI application
type App struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Exporter *pdf.Exporter

	ai       *ai.Client
	closeLog func() error
}

// NewApp initializes and returns a new App instance
func NewApp(ctx context.Context) (*App, error) {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return New(config.AppConfig)
}

// New builds an App from an already loaded config
func New(cfg *config.Config) (*App, error) {
	closeLog, err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &App{
		Config:   cfg,
		Logger:   logger.Logger,
		Exporter: pdf.NewExporter(),
		closeLog: closeLog,
	}, nil
}

// AI returns the Gemini client, creating it on first use
func (a *App) AI(ctx context.Context) (*ai.Client, error) {
	if a.ai != nil {
		return a.ai, nil
	}
	if a.Config.GeminiAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := ai.NewClient(ctx, ai.Config{
		APIKey:      a.Config.GeminiAPIKey,
		SearchModel: a.Config.SearchModel,
		ResumeModel: a.Config.ResumeModel,
	}, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai client: %w", err)
	}
	a.ai = client
	return client, nil
}

// NewEngine creates a conversation engine backed by the AI client
func (a *App) NewEngine(ctx context.Context, opts ...chat.EngineOption) (*chat.Engine, error) {
	client, err := a.AI(ctx)
	if err != nil {
		return nil, err
	}
	return a.newEngine(client, client, opts...), nil
}

func (a *App) newEngine(finder chat.JobFinder, writer chat.ResumeWriter, opts ...chat.EngineOption) *chat.Engine {
	base := []chat.EngineOption{
		chat.WithLogger(a.Logger),
		chat.WithGreetingDelay(a.Config.GreetingDelay),
		chat.WithPromptDelay(a.Config.PromptDelay),
		chat.WithDoneMarker(a.Config.DoneMarker),
	}
	return chat.New(finder, writer, append(base, opts...)...)
}

// Close closes all resources
func (a *App) Close() error {
	if a.closeLog != nil {
		return a.closeLog()
	}
	return nil
}
