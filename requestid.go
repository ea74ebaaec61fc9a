package sendsculpt

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sendsculpt/pkg/logger"
)

// RequestIDHeader carries the correlation ID of every send request.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the context key for storing the request ID.
type requestIDKey struct{}

// ContextWithRequestID returns a context whose sends reuse id as X-Request-ID,
// preserving upstream tracing IDs instead of generating new ones.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

// RequestIDExtractor returns a ContextExtractor for logger.New.
// Adds "request_id" to log entries written with a send context.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := RequestIDFromContext(ctx); v != "" {
			return slog.String("request_id", v), true
		}
		return slog.Attr{}, false
	}
}

func newUUID() string {
	return uuid.NewString()
}
