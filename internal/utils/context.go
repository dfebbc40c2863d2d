// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, bearer token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-api-hub/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key used to store the authenticated [models.Caller]
// in the context.
var CallerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying caller.
func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// CallerFromContext retrieves the authenticated caller from the context.
//
// Returns the caller and an ok flag:
//   - ok == true:  an authenticated caller is attached
//   - ok == false: the request is anonymous (guest)
func CallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.Caller)
	return caller, ok
}

// CallerIDFromContext returns the user id of the attached caller, or
// [models.Guest] when the request is anonymous.
func CallerIDFromContext(ctx context.Context) int64 {
	caller, ok := CallerFromContext(ctx)
	if !ok {
		return models.Guest
	}
	return caller.UserID
}
