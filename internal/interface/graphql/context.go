package graphql

import (
	"context"

	"github.com/akmalhzn/portfolio-api/pkg/helpers"
)

type ctxKey int

const claimsKey ctxKey = iota

// WithClaims stores verified token claims on the request context so resolvers
// can gate admin operations.
func WithClaims(ctx context.Context, claims *helpers.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFrom returns the claims attached by WithClaims, or nil for anonymous
// requests.
func ClaimsFrom(ctx context.Context) *helpers.Claims {
	claims, _ := ctx.Value(claimsKey).(*helpers.Claims)
	return claims
}
