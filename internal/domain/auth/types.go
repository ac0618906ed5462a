package auth

// Package auth contains domain-level types for identity and authorization.
// It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application's authorization role.
// The zero value RoleNone means "no role assigned"; there is no
// absent-field convention.
type Role string

const (
	RoleNone      Role = ""
	RoleDonor     Role = "donor"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether the role is a known value (including RoleNone).
func (r Role) Valid() bool {
	switch r {
	case RoleNone, RoleDonor, RoleVolunteer, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string and reports whether it is a known,
// assignable role. RoleNone is not assignable through the API.
func ParseRole(value string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(value)))
	switch r {
	case RoleDonor, RoleVolunteer, RoleAdmin:
		return r, true
	default:
		return RoleNone, false
	}
}

// TokenClaims is the identity payload carried by a bearer token.
// Claims are caller-supplied at issuance; the codec only guarantees that
// Email round-trips and that IssuedAt/ExpiresAt are stamped.
type TokenClaims struct {
	Email     string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal is the verified identity attached to a request context after
// the authentication gate succeeds. The role is deliberately absent: it is
// re-read from the role store by the authorization gates so that promotion
// and demotion take effect immediately, not at token expiry.
type Principal struct {
	Email string
}
