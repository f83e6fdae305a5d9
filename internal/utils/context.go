// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/sparxrahulpawar/tsxChat/models"
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

// IdentityCtxKey is the key used to store the authenticated user's
// [models.Identity] in the context.
var IdentityCtxKey = contextKey("identity")

// TokenCtxKey is the key used to store the raw bearer token of an
// authenticated request.
var TokenCtxKey = contextKey("token")

// ClientMetadataCtxKey is the key used to store the [models.ClientMetadata]
// of the request's origin.
var ClientMetadataCtxKey = contextKey("clientMetadata")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext retrieves the authenticated user's identity.
//
// Returns ok == false when the request did not pass the auth middleware.
//
// Example usage:
//
//	identity, ok := utils.IdentityFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// WithToken returns a copy of ctx carrying the raw bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// TokenFromContext retrieves the raw bearer token stored by the auth
// middleware.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}

// WithClientMetadata returns a copy of ctx carrying the request origin.
func WithClientMetadata(ctx context.Context, meta models.ClientMetadata) context.Context {
	return context.WithValue(ctx, ClientMetadataCtxKey, meta)
}

// ClientMetadataFromContext retrieves the request origin. A missing value
// yields an empty [models.ClientMetadata].
func ClientMetadataFromContext(ctx context.Context) models.ClientMetadata {
	meta, _ := ctx.Value(ClientMetadataCtxKey).(models.ClientMetadata)
	return meta
}
