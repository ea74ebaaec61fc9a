package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats accepted by Config.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds logger configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	Sentry SentryConfig

	// Output defaults to os.Stdout.
	Output io.Writer
}

// New creates a JSON logger on stdout at info level with optional context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	return NewWithConfig(Config{}, extractors...)
}

// NewWithConfig creates a logger from cfg.
// If cfg.Sentry.DSN is set, records are also forwarded to Sentry; otherwise
// only the local output is used. Extractors apply to every destination.
func NewWithConfig(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	local := newOutputHandler(out, cfg.Format, ParseLevel(cfg.Level))

	handler := local
	if sentryHandler, ok := newSentryHandler(cfg.Sentry, local); ok {
		handler = newFanoutHandler(local, sentryHandler)
	}

	return slog.New(NewLogHandlerDecorator(handler, extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name (debug, info, warn, error) to slog.Level.
// Unknown or empty names yield slog.LevelInfo.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newOutputHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, FormatText) {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
