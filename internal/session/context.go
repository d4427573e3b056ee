package session

import "context"

type contextKey struct{}

// WithSession stores the resolved session in the request context.
func WithSession(ctx context.Context, data *Data) context.Context {
	return context.WithValue(ctx, contextKey{}, data)
}

// FromContext retrieves the session placed by the auth middleware, or
// nil when the request is unauthenticated.
func FromContext(ctx context.Context) *Data {
	data, _ := ctx.Value(contextKey{}).(*Data)
	return data
}
