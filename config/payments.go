package config

import "strings"

// PaymentsConfig contains payment-processor configuration.
type PaymentsConfig struct {
	// StripeAPIKey is the secret API key for the Stripe account.
	// When empty, funding payment-intent creation is disabled.
	StripeAPIKey string `env:"STRIPE_API_KEY" envDefault:""`

	// Currency is the ISO 4217 currency code used for funding contributions.
	Currency string `env:"PAYMENTS_CURRENCY" envDefault:"usd"`
}

// Sanitize applies guardrails to payments configuration values.
func (p *PaymentsConfig) Sanitize() {
	p.Currency = strings.ToLower(strings.TrimSpace(p.Currency))
	if p.Currency == "" {
		p.Currency = "usd"
	}
}
