package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savelife/savelife-api/internal/data"
	"github.com/savelife/savelife-api/internal/domain/model"
	apperrors "github.com/savelife/savelife-api/internal/errors"
)

// fakeDonationStore is an in-memory DonationRequestStore.
type fakeDonationStore struct {
	requests map[string]*model.DonationRequest
	nextID   int
}

func newFakeDonationStore() *fakeDonationStore {
	return &fakeDonationStore{requests: make(map[string]*model.DonationRequest)}
}

func (f *fakeDonationStore) Create(_ context.Context, req *model.CreateDonationRequestRequest, requesterEmail string) (*model.DonationRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	f.nextID++
	dr := &model.DonationRequest{
		ID:             string(rune('a' + f.nextID)),
		RequesterEmail: model.NormalizeEmail(requesterEmail),
		RecipientName:  req.RecipientName,
		BloodGroup:     req.BloodGroup,
		District:       req.District,
		Hospital:       req.Hospital,
		Date:           req.Date,
		Status:         model.DonationStatusPending,
	}
	f.requests[dr.ID] = dr
	return dr, nil
}

func (f *fakeDonationStore) List(_ context.Context, _ model.DonationRequestsListOptions) ([]*model.DonationRequest, error) {
	out := make([]*model.DonationRequest, 0, len(f.requests))
	for _, dr := range f.requests {
		out = append(out, dr)
	}
	return out, nil
}

func (f *fakeDonationStore) GetByID(_ context.Context, id string) (*model.DonationRequest, error) {
	dr, ok := f.requests[id]
	if !ok {
		return nil, data.ErrDonationRequestNotFound
	}
	return dr, nil
}

func (f *fakeDonationStore) SetStatus(_ context.Context, id string, status model.DonationRequestStatus) (*model.DonationRequest, error) {
	dr, ok := f.requests[id]
	if !ok {
		return nil, data.ErrDonationRequestNotFound
	}
	dr.Status = status
	return dr, nil
}

func validDonationRequest() *model.CreateDonationRequestRequest {
	return &model.CreateDonationRequestRequest{
		RecipientName: "Recipient",
		BloodGroup:    "A+",
		District:      "Dhaka",
		Hospital:      "General Hospital",
		Date:          "2026-09-01",
	}
}

func TestDonationService_Create(t *testing.T) {
	svc := NewDonationService(DonationServiceOptions{Requests: newFakeDonationStore()})

	dr, err := svc.Create(context.Background(), validDonationRequest(), "Requester@Example.com")
	require.NoError(t, err)
	assert.Equal(t, "requester@example.com", dr.RequesterEmail)
	assert.Equal(t, model.DonationStatusPending, dr.Status)
}

func TestDonationService_Create_Invalid(t *testing.T) {
	svc := NewDonationService(DonationServiceOptions{Requests: newFakeDonationStore()})

	req := validDonationRequest()
	req.BloodGroup = ""
	_, err := svc.Create(context.Background(), req, "requester@example.com")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDonationService_Get_NotFound(t *testing.T) {
	svc := NewDonationService(DonationServiceOptions{Requests: newFakeDonationStore()})

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDonationService_SetStatus_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := newFakeDonationStore()
	svc := NewDonationService(DonationServiceOptions{Requests: store})

	dr, err := svc.Create(ctx, validDonationRequest(), "requester@example.com")
	require.NoError(t, err)

	// pending -> inprogress -> done
	updated, err := svc.SetStatus(ctx, dr.ID, model.DonationStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.DonationStatusInProgress, updated.Status)

	updated, err = svc.SetStatus(ctx, dr.ID, model.DonationStatusDone)
	require.NoError(t, err)
	assert.Equal(t, model.DonationStatusDone, updated.Status)

	// done is terminal
	_, err = svc.SetStatus(ctx, dr.ID, model.DonationStatusPending)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDonationService_SetStatus_InvalidStatus(t *testing.T) {
	svc := NewDonationService(DonationServiceOptions{Requests: newFakeDonationStore()})

	_, err := svc.SetStatus(context.Background(), "any", model.DonationRequestStatus("bogus"))
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDonationService_SetStatus_NotFound(t *testing.T) {
	svc := NewDonationService(DonationServiceOptions{Requests: newFakeDonationStore()})

	_, err := svc.SetStatus(context.Background(), "missing", model.DonationStatusInProgress)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
