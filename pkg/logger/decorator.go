package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator wraps a slog.Handler and adds context-extracted attributes to each record.
// Extractors run per record, so values set on the context after the logger was built are picked up.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewLogHandlerDecorator wraps next with the given extractors. Nil extractors are dropped.
// Wrapping another decorator merges the extractor lists instead of nesting.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	var merged []ContextExtractor
	if inner, ok := next.(*LogHandlerDecorator); ok {
		next = inner.next
		merged = append(merged, inner.extractors...)
	}
	for _, ex := range extractors {
		if ex != nil {
			merged = append(merged, ex)
		}
	}
	return &LogHandlerDecorator{next: next, extractors: merged}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle adds extracted attributes and delegates to the wrapped handler.
// When several extractors yield the same key, only the first is kept.
func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	seen := make(map[string]struct{}, len(h.extractors))
	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok {
			continue
		}
		if _, dup := seen[attr.Key]; dup {
			continue
		}
		seen[attr.Key] = struct{}{}
		rec.AddAttrs(attr)
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandlerDecorator{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{next: h.next.WithGroup(name), extractors: h.extractors}
}
