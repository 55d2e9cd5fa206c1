package common

import "context"

type contextKey int

const correlationIDKey contextKey = iota

// WithCorrelationID stores the request correlation id in ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationID returns the correlation id stored in ctx, or "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey).(string)
	return id
}

// LoggerFor returns l tagged with the correlation id carried by ctx, if any.
func LoggerFor(ctx context.Context, l *Logger) *Logger {
	l = l.OrSilent()
	if id := CorrelationID(ctx); id != "" {
		return l.WithCorrelationId(id)
	}
	return l
}
