package logger

import (
	"context"
	"log/slog"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// With returns a context whose logger carries the extra fields. Request
// middleware and the auth layer use it to stamp the trace id and acting
// user onto every line logged downstream of them.
func With(ctx context.Context, fields ...any) context.Context {
	if len(fields) == 0 {
		return ctx
	}
	l := From(ctx).With(fields...)
	return context.WithValue(ctx, loggerKey, l)
}

// From returns the request-scoped logger, falling back to the process-wide
// one when the context carries none.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
