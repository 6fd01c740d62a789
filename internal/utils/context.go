// Package utils provides general-purpose helpers shared by the composer, the
// engine client and the preview server: context keys, invocation IDs, JSON
// response writing and HTTP client construction.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// InvocationIDCtxKey is the key used to store the build invocation ID in the
// context.
var InvocationIDCtxKey = contextKey("invocationID")

// WithInvocationID returns a copy of ctx carrying id.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, InvocationIDCtxKey, id)
}

// GetInvocationIDFromContext retrieves the invocation ID from the context.
// ok is false when the value is missing or not a string.
func GetInvocationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(InvocationIDCtxKey).(string)
	return id, ok
}
