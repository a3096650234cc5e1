package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header carries the request identifier between the browser, the console and the backend.
const Header = "X-Request-ID"

type ctxKey struct{}

// New returns a fresh request identifier.
func New() string {
	return uuid.NewString()
}

// WithID stores id in ctx.
func WithID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request identifier stored in ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}
