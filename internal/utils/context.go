// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, principal token
// generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-inventory-hub/models"
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

var (
	// PrincipalCtxKey stores the authenticated [models.Principal].
	PrincipalCtxKey = contextKey("principal")

	// AuthorizationCtxKey stores the [models.AuthorizationContext] resolved
	// for inventory scoped routes.
	AuthorizationCtxKey = contextKey("authorization")
)

// WithPrincipal returns a copy of ctx carrying principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, principal)
}

// GetPrincipalFromContext retrieves the principal stored by the auth
// middleware. ok is false when it is missing or has an unexpected type.
func GetPrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	principal, ok := ctx.Value(PrincipalCtxKey).(models.Principal)
	return principal, ok
}

// WithAuthorization returns a copy of ctx carrying authz.
func WithAuthorization(ctx context.Context, authz models.AuthorizationContext) context.Context {
	return context.WithValue(ctx, AuthorizationCtxKey, authz)
}

// GetAuthorizationFromContext retrieves the authorization context computed
// once per request by the inventory middleware.
func GetAuthorizationFromContext(ctx context.Context) (models.AuthorizationContext, bool) {
	authz, ok := ctx.Value(AuthorizationCtxKey).(models.AuthorizationContext)
	return authz, ok
}
