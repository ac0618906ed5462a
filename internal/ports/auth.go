package ports

// Package ports defines interfaces (hexagonal ports) for behavior provided
// by adapters. Implementations live in internal/adapters and internal/data;
// orchestration in internal/service.

import (
	"context"

	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
	"github.com/savelife/savelife-api/internal/domain/model"
)

// TokenCodec signs and verifies identity claims as compact bearer tokens.
type TokenCodec interface {
	// Issue encodes the claims plus an expiry (now + configured TTL) into a
	// signed token. Claims are caller-supplied and not validated for shape.
	Issue(claims domainauth.TokenClaims) (string, error)

	// Verify checks the signature and expiry and returns the decoded claims.
	// Failures are distinguishable sentinel errors (malformed, expired,
	// invalid signature) but are all treated as unauthenticated by callers.
	Verify(token string) (domainauth.TokenClaims, error)
}

// RoleStore looks up a principal's persisted role by its stable identifier.
// This is the only store operation the authorization gates depend on; roles
// are re-read on every gated request rather than trusted from token claims.
type RoleStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// PaymentIntents creates payment intents with the payment processor.
type PaymentIntents interface {
	// CreateIntent registers an intent for the given amount and currency and
	// returns the processor's client secret.
	CreateIntent(ctx context.Context, amountCents int64, currency string) (string, error)
}
