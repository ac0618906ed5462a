package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
	"github.com/savelife/savelife-api/internal/domain/model"
	"github.com/savelife/savelife-api/internal/ports"
)

// Middleware wraps an http.Handler with a gate or cross-cutting concern.
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares so they execute strictly left to right: the
// first argument sees the request first, and the first gate to deny writes
// its response and stops the chain. Ordering is part of the contract; later
// gates depend on context state established by earlier ones.
func Chain(mws ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}

// RoleSource resolves the persisted role for a principal. The lookup happens
// on every gated request; role claims inside the token are never consulted.
type RoleSource interface {
	LookupRole(ctx context.Context, email string) (domainauth.Role, error)
}

// RequireAuth returns the authentication gate. It extracts and verifies the
// bearer token, attaches the principal to the request context, and rejects
// with 401 otherwise. It never consults the role store.
func RequireAuth(codec ports.TokenCodec) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "missing_authorization",
					Err:     errors.New("authorization header is required"),
				})
				return
			}

			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "invalid_authorization",
					Err:     errors.New("authorization header must be of the form 'Bearer <token>'"),
				})
				return
			}

			claims, err := codec.Verify(strings.TrimSpace(token))
			if err != nil {
				// Malformed, expired, and bad-signature failures are all the
				// same to the client.
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "invalid_token",
					Err:     errors.New("token is invalid or expired"),
				})
				return
			}

			ctx := WithPrincipal(r.Context(), domainauth.Principal{Email: model.NormalizeEmail(claims.Email)})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns an authorization gate that admits only principals whose
// stored role equals required. The role is re-read from the store per request
// so promotion and demotion take effect immediately. An unknown principal is
// a non-match (403); a store failure is a failed request (500), never an
// authorization outcome.
func RequireRole(roles RoleSource, required domainauth.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				// Precondition: RequireAuth runs earlier in the chain.
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "missing_authorization",
					Err:     errors.New("authentication is required"),
				})
				return
			}

			role, err := roles.LookupRole(r.Context(), principal.Email)
			if err != nil {
				WriteError(w, ErrorParams{
					Code:    http.StatusInternalServerError,
					ErrCode: "upstream_failure",
					Err:     errors.New("could not verify permissions"),
				})
				return
			}
			if role != required {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "forbidden",
					Err:     errors.New("insufficient permissions"),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSelf returns an authorization gate that admits a principal only when
// the named path value matches its own email. Routes wanting self-or-admin
// layer a separate admin gate in front.
func RequireSelf(pathParam string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				WriteError(w, ErrorParams{
					Code:    http.StatusUnauthorized,
					ErrCode: "missing_authorization",
					Err:     errors.New("authentication is required"),
				})
				return
			}

			target := model.NormalizeEmail(r.PathValue(pathParam))
			if target == "" || target != principal.Email {
				WriteError(w, ErrorParams{
					Code:    http.StatusForbidden,
					ErrCode: "forbidden",
					Err:     errors.New("you may only access your own resource"),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
