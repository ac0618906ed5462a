package httpx

import (
	"context"

	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
)

// principalKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type principalKey struct{}

// WithPrincipal returns a child context that carries the given principal.
func WithPrincipal(ctx context.Context, p domainauth.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the verified principal from context and a
// boolean indicating presence. Absence means the authentication gate has not
// run on this request.
func PrincipalFromContext(ctx context.Context) (domainauth.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domainauth.Principal)
	return p, ok
}
