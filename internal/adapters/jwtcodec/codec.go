// Package jwtcodec issues and verifies the HMAC-signed bearer tokens that
// authenticate API requests. Tokens carry identity only; role checks always
// go back to the user store.
package jwtcodec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/savelife/savelife-api/internal/domain/auth"
)

var (
	// ErrTokenMalformed indicates the token could not be parsed or is
	// missing required claims.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenExpired indicates a well-formed token whose lifetime ended.
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidSignature indicates the signature does not match the
	// configured secret.
	ErrInvalidSignature = errors.New("invalid token signature")
)

// Codec signs and verifies tokens with a shared HMAC-SHA256 secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New returns a Codec using the given signing secret and token lifetime.
func New(secret string, ttl time.Duration) *Codec {
	return NewWithClock(secret, ttl, time.Now)
}

// NewWithClock returns a Codec with an injectable clock for tests.
func NewWithClock(secret string, ttl time.Duration, now func() time.Time) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl, now: now}
}

// Issue signs a token for the given claims. The expiry is the codec's
// configured lifetime from now; any ExpiresAt on the input is ignored.
func (c *Codec) Issue(claims auth.TokenClaims) (string, error) {
	if claims.Email == "" {
		return "", fmt.Errorf("issue token: email is required")
	}

	issuedAt := c.now()
	mapClaims := jwt.MapClaims{
		"email": claims.Email,
		"iat":   issuedAt.Unix(),
		"exp":   issuedAt.Add(c.ttl).Unix(),
	}
	if claims.Name != "" {
		mapClaims["name"] = claims.Name
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token, returning its claims.
// Errors are one of ErrTokenMalformed, ErrTokenExpired, or
// ErrInvalidSignature.
func (c *Codec) Verify(tokenString string) (auth.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return auth.TokenClaims{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return auth.TokenClaims{}, ErrInvalidSignature
		default:
			return auth.TokenClaims{}, ErrTokenMalformed
		}
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return auth.TokenClaims{}, ErrTokenMalformed
	}

	email, _ := mapClaims["email"].(string)
	if email == "" {
		return auth.TokenClaims{}, ErrTokenMalformed
	}

	claims := auth.TokenClaims{Email: email}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}
