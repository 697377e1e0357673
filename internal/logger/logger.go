// Package logger sets up zerolog for the CLI. Logs go to stderr or a file so
// they never mix with the conversation on stdout.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger, replaced by Init
var Logger = zerolog.Nop()

// Config controls the log output
type Config struct {
	Level  string // trace, debug, info, warn, error, disabled
	Format string // console or json
	File   string // empty means stderr
}

// Init builds the global logger. The returned close function releases the log
// file, if any.
func Init(cfg Config) (func() error, error) {
	out := io.Writer(os.Stderr)
	closeFn := func() error { return nil }

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return closeFn, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return closeFn, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	Logger = New(out, cfg)
	log.Logger = Logger
	return closeFn, nil
}

// New creates a logger writing to w
func New(w io.Writer, cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	output := w
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.File != "",
		}
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Ctx returns the logger stored in ctx, or the global one
func Ctx(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &Logger
}

// WithContext stores the global logger in ctx
func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}
