// Package payments integrates with Stripe for funding payment intents.
package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

// StripeIntents creates payment intents through the Stripe API.
type StripeIntents struct {
	api      *client.API
	currency string
}

// NewStripeIntents returns a Stripe-backed payment intent creator.
func NewStripeIntents(apiKey, currency string) *StripeIntents {
	api := &client.API{}
	api.Init(apiKey, nil)
	return &StripeIntents{api: api, currency: currency}
}

// CreateIntent creates a card payment intent for the given amount and
// returns its client secret. The currency falls back to the configured
// default when empty.
func (s *StripeIntents) CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error) {
	if currency == "" {
		currency = s.currency
	}

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
