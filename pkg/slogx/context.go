package slogx

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// WithContext stores logger in ctx. Handlers and services pick it up with
// FromContext so every line carries the request's attributes.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default when there
// is none (startup code and tests).
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// WithOperator tags the contextual logger with the authenticated operator,
// so audit lines for role and user changes name who made them.
func WithOperator(ctx context.Context, subject string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String("operator", subject)))
}
