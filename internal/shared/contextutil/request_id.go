package contextutil

import "context"

// Unexported key type keeps context values collision-safe.
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID pulls the request id from the context; empty when the
// middleware never ran (background jobs, tests).
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects the id into the context (also handy in unit tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}
