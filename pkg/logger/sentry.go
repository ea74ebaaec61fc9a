package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level stored in Sentry; errors always create issues.
	MinLevel slog.Level
}

// NewWithSentry creates a JSON stdout logger that also forwards to Sentry.
// If DSN is empty, only stdout logging is enabled.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	return NewWithConfig(Config{Sentry: cfg}, extractors...)
}

// newSentryHandler initializes the Sentry SDK and returns its slog handler.
// Returns false when Sentry is not configured or fails to initialize; the
// failure is reported through fallback so logging keeps working.
func newSentryHandler(cfg SentryConfig, fallback slog.Handler) (slog.Handler, bool) {
	if cfg.DSN == "" {
		return nil, false
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(fallback).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return nil, false
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background()), true
}
