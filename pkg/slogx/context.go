package slogx

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request-scoped logger, or slog.Default when none is attached.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// With returns a ctx whose logger carries args in addition to its own attributes.
func With(ctx context.Context, args ...any) context.Context {
	return WithContext(ctx, FromContext(ctx).With(args...))
}

// WithOperator tags later log lines with the authenticated operator.
func WithOperator(ctx context.Context, subject string) context.Context {
	if subject == "" {
		return ctx
	}
	return With(ctx, slog.String("operator", subject))
}

// WithView tags later log lines with the team view session.
func WithView(ctx context.Context, viewID string) context.Context {
	return With(ctx, slog.String("view_id", viewID))
}
