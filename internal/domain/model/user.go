package model

import (
	"errors"
	"strings"
	"time"

	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
)

const maxUserNameLen = 255

// User represents a registered account. Email is the stable identity the
// authorization layer keys on; Role is mutated only via explicit
// role-assignment operations.
type User struct {
	ID         string          `json:"id"                    db:"id"`
	Email      string          `json:"email"                 db:"email"`
	Name       string          `json:"name"                  db:"name"`
	BloodGroup string          `json:"blood_group,omitempty" db:"blood_group"`
	District   string          `json:"district,omitempty"    db:"district"`
	Upazila    string          `json:"upazila,omitempty"     db:"upazila"`
	Role       domainauth.Role `json:"role"                  db:"role"`
	CreatedAt  time.Time       `json:"created_at"            db:"created_at"`
}

// CreateUserRequest represents parameters for self-registration.
type CreateUserRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	BloodGroup string `json:"blood_group,omitempty"`
	District   string `json:"district,omitempty"`
	Upazila    string `json:"upazila,omitempty"`
}

// Validate checks the request for required fields and obvious bad input.
func (r *CreateUserRequest) Validate() error {
	email := strings.TrimSpace(r.Email)
	if email == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(email, "@") {
		return errors.New("email is not valid")
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) > maxUserNameLen {
		return errors.New("name is too long")
	}
	return nil
}

// Normalize trims whitespace and lowercases the email so identity
// comparisons are stable across issuance, verification, and lookup.
func (r *CreateUserRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	r.BloodGroup = strings.TrimSpace(r.BloodGroup)
	r.District = strings.TrimSpace(r.District)
	r.Upazila = strings.TrimSpace(r.Upazila)
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
