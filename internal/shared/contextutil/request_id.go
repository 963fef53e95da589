package contextutil

import "context"

// unexported key type keeps the context value collision-safe
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID returns the request id carried by ctx, if any.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects a request id into ctx (also handy in tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}
