package model

import (
	"errors"
	"time"
)

// Funding represents a recorded monetary contribution.
type Funding struct {
	ID          string    `json:"id"           db:"id"`
	Email       string    `json:"email"        db:"email"`
	Name        string    `json:"name"         db:"name"`
	AmountCents int64     `json:"amount_cents" db:"amount_cents"`
	Currency    string    `json:"currency"     db:"currency"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// CreateFundingRequest represents parameters to record a contribution.
// The contributor email is taken from the authenticated principal.
type CreateFundingRequest struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
}

// Validate checks that the contribution amount is positive.
func (r *CreateFundingRequest) Validate() error {
	if r.AmountCents <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

// PaymentIntentRequest represents parameters for creating a payment intent.
type PaymentIntentRequest struct {
	AmountCents int64 `json:"amount_cents"`
}

// PaymentIntentResponse carries the processor's client secret back to the caller.
type PaymentIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}
