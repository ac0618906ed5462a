// Package service contains the application's use-case orchestration. Services
// validate input, call the stores and adapters through their ports, and
// translate data-layer sentinels into application errors.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/savelife/savelife-api/internal/data"
	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
	apperrors "github.com/savelife/savelife-api/internal/errors"
	"github.com/savelife/savelife-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Codec ports.TokenCodec
	Roles ports.RoleStore
}

// AuthService issues bearer tokens and resolves the persisted role for a
// verified principal. Roles are looked up fresh on every call; nothing about
// authorization is cached in the token.
type AuthService struct {
	codec ports.TokenCodec
	roles ports.RoleStore
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{codec: opts.Codec, roles: opts.Roles}
}

// IssueToken signs a bearer token for the given identity. The email is
// normalized before issuance so it matches role-store lookups later.
func (s *AuthService) IssueToken(email, name string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", apperrors.ValidationField("email", "email is required")
	}
	if !strings.Contains(email, "@") {
		return "", apperrors.ValidationField("email", "email is not valid")
	}

	token, err := s.codec.Issue(domainauth.TokenClaims{Email: email, Name: strings.TrimSpace(name)})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to issue token.")
	}
	return token, nil
}

// VerifyToken checks a bearer token and returns its claims. All verification
// failures collapse into a single unauthenticated error so callers cannot
// distinguish why a credential was rejected.
func (s *AuthService) VerifyToken(token string) (domainauth.TokenClaims, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return domainauth.TokenClaims{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthenticated, "Invalid or expired token.")
	}
	return claims, nil
}

// LookupRole returns the persisted role for the given email. An unknown email
// yields RoleNone with no error; a store failure is reported as an upstream
// error and never as an authorization outcome.
func (s *AuthService) LookupRole(ctx context.Context, email string) (domainauth.Role, error) {
	user, err := s.roles.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return domainauth.RoleNone, nil
		}
		return domainauth.RoleNone, apperrors.Upstream(err, "Failed to look up role.")
	}
	return user.Role, nil
}
