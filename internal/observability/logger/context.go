package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

var requestIDKey = contextKey{}

// WithRequestID stores the request correlation ID on the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the correlation ID, if any.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// FromContext returns the global logger annotated with the request ID when
// the context carries one.
func FromContext(ctx context.Context) *zap.Logger {
	log := zap.L()
	if ctx == nil {
		return log
	}
	if id, ok := RequestIDFromContext(ctx); ok && id != "" {
		log = log.With(zap.String("request_id", id))
	}
	return log
}
