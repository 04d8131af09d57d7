// Package correlation carries the request correlation ID across package boundaries,
// from the inbound HTTP request to outbound backend calls and emitted events.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header carrying the correlation ID
const Header = "X-Correlation-ID"

type contextKey struct{}

// WithID returns a copy of ctx carrying id
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the correlation ID stored in ctx, or an empty string
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// NewID generates a fresh correlation ID
func NewID() string {
	return uuid.New().String()
}
