package auth

import "context"

// contextKey is a private type so claims stored here cannot collide with
// values set by other packages.
type contextKey struct{}

var claimsContextKey contextKey

// ContextWithClaims returns a copy of ctx carrying the given claims.
// The JWT middleware attaches validated claims this way.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext retrieves JWT claims from the request context.
// Returns nil if no claims are present.
//
// This should only be called in handler code that runs after the JWTAuth
// middleware has processed the request. In routes without that middleware
// it always returns nil.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	if !ok {
		return nil
	}
	return claims
}
