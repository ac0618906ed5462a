package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/savelife/savelife-api/internal/data"
	"github.com/savelife/savelife-api/internal/domain/model"
	apperrors "github.com/savelife/savelife-api/internal/errors"
	"github.com/savelife/savelife-api/internal/ports"
)

// DonationServiceOptions groups dependencies for DonationService.
type DonationServiceOptions struct {
	Requests ports.DonationRequestStore
}

// DonationService orchestrates the donation-request lifecycle.
type DonationService struct {
	requests ports.DonationRequestStore
}

// NewDonationService constructs a new DonationService.
func NewDonationService(opts DonationServiceOptions) *DonationService {
	return &DonationService{requests: opts.Requests}
}

// Create records a new donation request for the authenticated requester.
func (s *DonationService) Create(
	ctx context.Context,
	req *model.CreateDonationRequestRequest,
	requesterEmail string,
) (*model.DonationRequest, error) {
	dr, err := s.requests.Create(ctx, req, requesterEmail)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, err.Error())
	}
	return dr, nil
}

// List returns donation requests matching the given filters, newest first.
func (s *DonationService) List(
	ctx context.Context,
	opts model.DonationRequestsListOptions,
) ([]*model.DonationRequest, error) {
	requests, err := s.requests.List(ctx, opts)
	if err != nil {
		return nil, apperrors.Upstream(err, "Failed to list donation requests.")
	}
	return requests, nil
}

// Get returns a donation request by ID.
func (s *DonationService) Get(ctx context.Context, id string) (*model.DonationRequest, error) {
	dr, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrDonationRequestNotFound) {
			return nil, apperrors.NotFound("Donation request not found.")
		}
		return nil, apperrors.Upstream(err, "Failed to get donation request.")
	}
	return dr, nil
}

// SetStatus moves a donation request through its lifecycle. Transitions out
// of done or canceled are rejected.
func (s *DonationService) SetStatus(
	ctx context.Context,
	id string,
	status model.DonationRequestStatus,
) (*model.DonationRequest, error) {
	if !status.Valid() {
		return nil, apperrors.ValidationField("status", "status is not valid")
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, apperrors.ValidationField("status",
			fmt.Sprintf("cannot move request from %s to %s", current.Status, status))
	}

	dr, err := s.requests.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, data.ErrDonationRequestNotFound) {
			return nil, apperrors.NotFound("Donation request not found.")
		}
		return nil, apperrors.Upstream(err, "Failed to update donation request.")
	}
	return dr, nil
}
