package config

import "time"

// defaultTokenTTL is the token validity window used when none is configured.
// Deployments override this via AUTH_TOKEN_TTL (e.g. "3h", "9h").
const defaultTokenTTL = 3 * time.Hour

// AuthConfig groups token issuance and verification configuration.
// The signing secret and validity window are deployment configuration,
// never compiled-in constants.
type AuthConfig struct {
	// TokenSecret is the HMAC signing key for identity tokens.
	TokenSecret string `env:"TOKEN_SECRET,required"`

	// TokenTTL is the validity window for issued tokens.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"3h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.TokenTTL <= 0 {
		a.TokenTTL = defaultTokenTTL
	}
}
