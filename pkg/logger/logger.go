package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ContextExtractor extracts a slog attribute from context. Extractors
// run on every log call so request-scoped values stay fresh.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// New creates a JSON-formatted logger writing to stdout, decorated with
// the given context extractors.
func New(extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(NewHandlerDecorator(h, extractors...))
}

// NewNope creates a no-op logger that discards all output. The engine
// uses it when no logger is configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type localeCtxKey struct{}

// WithLocale stores a locale on the context for LocaleExtractor to pick
// up, so every log line of a request carries the locale it was served
// in.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeCtxKey{}, locale)
}

// LocaleExtractor injects the locale previously stored with WithLocale
// as a "locale" attribute.
func LocaleExtractor(ctx context.Context) (slog.Attr, bool) {
	if locale, ok := ctx.Value(localeCtxKey{}).(string); ok && locale != "" {
		return slog.String("locale", locale), true
	}
	return slog.Attr{}, false
}

// HandlerDecorator wraps a slog.Handler and injects context-extracted
// attributes into every record before delegating.
type HandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewHandlerDecorator creates a decorated handler. Nil extractors are
// filtered out.
func NewHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &HandlerDecorator{next: next, extractors: clean}
}

func (h *HandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *HandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.extractors) == 0 {
		return h.next.Handle(ctx, rec)
	}

	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(attr)
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *HandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &HandlerDecorator{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *HandlerDecorator) WithGroup(name string) slog.Handler {
	return &HandlerDecorator{next: h.next.WithGroup(name), extractors: h.extractors}
}
