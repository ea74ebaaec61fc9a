// Package logger provides structured logging with context extraction and Sentry integration.
//
// It builds on log/slog. Loggers get request-scoped attributes from the
// context on every call and can also forward warnings and errors to Sentry.
//
// # Basic Usage
//
//	log := logger.New(sendsculpt.RequestIDExtractor())
//
//	ctx := sendsculpt.ContextWithRequestID(context.Background(), "abc-123")
//	log.InfoContext(ctx, "welcome email queued")
//	// {"level":"INFO","msg":"welcome email queued","request_id":"abc-123"}
//
// # Configuration
//
// Config carries env tags for caarlos0/env (LOG_LEVEL, LOG_FORMAT, SENTRY_DSN,
// SENTRY_ENVIRONMENT):
//
//	var cfg logger.Config
//	_ = env.Parse(&cfg)
//	log := logger.NewWithConfig(cfg)
//
// If SENTRY_DSN is empty or Sentry fails to initialize, the logger keeps
// writing to stdout only. The same code can run in development and production.
//
// # Context Extractors
//
// A ContextExtractor returns an attribute to add, or false to skip:
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// LogHandlerDecorator applies extractors to any slog.Handler. Decorating an
// already decorated handler merges the extractor lists, and an attribute key
// produced by more than one extractor is written once.
//
// Use NewNope as a default when logging is not configured.
package logger
