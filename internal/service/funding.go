package service

import (
	"context"
	"errors"

	"github.com/savelife/savelife-api/internal/domain/model"
	apperrors "github.com/savelife/savelife-api/internal/errors"
	"github.com/savelife/savelife-api/internal/ports"
)

// FundingServiceOptions groups dependencies for FundingService.
type FundingServiceOptions struct {
	Fundings ports.FundingStore
	Intents  ports.PaymentIntents
	Currency string
}

// FundingService records contributions and brokers payment intents with the
// payment processor.
type FundingService struct {
	fundings ports.FundingStore
	intents  ports.PaymentIntents
	currency string
}

// NewFundingService constructs a new FundingService.
func NewFundingService(opts FundingServiceOptions) *FundingService {
	return &FundingService{
		fundings: opts.Fundings,
		intents:  opts.Intents,
		currency: opts.Currency,
	}
}

// Record stores a completed contribution for the authenticated user.
func (s *FundingService) Record(ctx context.Context, req *model.CreateFundingRequest, email string) (*model.Funding, error) {
	funding, err := s.fundings.Create(ctx, req, email, s.currency)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	return funding, nil
}

// List returns contributions, newest first.
func (s *FundingService) List(ctx context.Context, limit, offset int) ([]*model.Funding, error) {
	fundings, err := s.fundings.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.Upstream(err, "Failed to list fundings.")
	}
	return fundings, nil
}

// CreatePaymentIntent registers an intent with the payment processor and
// returns its client secret.
func (s *FundingService) CreatePaymentIntent(ctx context.Context, req *model.PaymentIntentRequest) (*model.PaymentIntentResponse, error) {
	if req == nil || req.AmountCents <= 0 {
		return nil, apperrors.ValidationField("amount_cents", "amount must be positive")
	}
	if s.intents == nil {
		return nil, apperrors.Upstream(errors.New("no payment processor configured"), "Payments are not available.")
	}

	secret, err := s.intents.CreateIntent(ctx, req.AmountCents, s.currency)
	if err != nil {
		return nil, apperrors.Upstream(err, "Failed to create payment intent.")
	}
	return &model.PaymentIntentResponse{ClientSecret: secret}, nil
}
