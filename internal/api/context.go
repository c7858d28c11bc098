package api

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID attaches an id that is forwarded to providers as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
