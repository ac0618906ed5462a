package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savelife/savelife-api/internal/domain/model"
	"github.com/savelife/savelife-api/internal/testutil"
)

func newDonationRequest(bloodGroup, district string) *model.CreateDonationRequestRequest {
	return &model.CreateDonationRequestRequest{
		RequesterName: "Requester",
		RecipientName: "Recipient",
		BloodGroup:    bloodGroup,
		District:      district,
		Hospital:      "General Hospital",
		Date:          "2026-09-01",
	}
}

func TestDonationRequestRepo_Create_Get_SetStatus(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewDonationRequestRepo(db)

		dr, err := repo.Create(ctx, newDonationRequest("A+", "Dhaka"), "Requester@Example.com")
		require.NoError(t, err)
		require.NotEmpty(t, dr.ID)
		assert.Equal(t, "requester@example.com", dr.RequesterEmail)
		assert.Equal(t, model.DonationStatusPending, dr.Status)

		got, err := repo.GetByID(ctx, dr.ID)
		require.NoError(t, err)
		assert.Equal(t, dr.ID, got.ID)

		updated, err := repo.SetStatus(ctx, dr.ID, model.DonationStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, model.DonationStatusInProgress, updated.Status)
	})
}

func TestDonationRequestRepo_GetByID_NotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewDonationRequestRepo(db)
		_, err := repo.GetByID(context.Background(), "no-such-id")
		assert.ErrorIs(t, err, ErrDonationRequestNotFound)
	})
}

func TestDonationRequestRepo_List_Filters(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewDonationRequestRepo(db)

		aPlus, err := repo.Create(ctx, newDonationRequest("A+", "Dhaka"), "one@example.com")
		require.NoError(t, err)
		bMinus, err := repo.Create(ctx, newDonationRequest("B-", "Chittagong"), "two@example.com")
		require.NoError(t, err)

		_, err = repo.SetStatus(ctx, bMinus.ID, model.DonationStatusInProgress)
		require.NoError(t, err)

		// no filters returns everything
		all, err := repo.List(ctx, model.DonationRequestsListOptions{})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		// blood group filter
		byGroup, err := repo.List(ctx, model.DonationRequestsListOptions{
			BloodGroup: testutil.StringPtr("A+"),
		})
		require.NoError(t, err)
		require.Len(t, byGroup, 1)
		assert.Equal(t, aPlus.ID, byGroup[0].ID)

		// district filter
		byDistrict, err := repo.List(ctx, model.DonationRequestsListOptions{
			District: testutil.StringPtr("Chittagong"),
		})
		require.NoError(t, err)
		require.Len(t, byDistrict, 1)
		assert.Equal(t, bMinus.ID, byDistrict[0].ID)

		// status filter
		pending := model.DonationStatusPending
		byStatus, err := repo.List(ctx, model.DonationRequestsListOptions{Status: &pending})
		require.NoError(t, err)
		require.Len(t, byStatus, 1)
		assert.Equal(t, aPlus.ID, byStatus[0].ID)

		// combined filters
		inProgress := model.DonationStatusInProgress
		combined, err := repo.List(ctx, model.DonationRequestsListOptions{
			BloodGroup: testutil.StringPtr("B-"),
			District:   testutil.StringPtr("Chittagong"),
			Status:     &inProgress,
		})
		require.NoError(t, err)
		require.Len(t, combined, 1)
		assert.Equal(t, bMinus.ID, combined[0].ID)
	})
}

func TestDonationRequestRepo_Create_Validation(t *testing.T) {
	repo := NewDonationRequestRepo(nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, nil, "a@example.com")
	assert.Error(t, err)

	missingGroup := newDonationRequest("", "Dhaka")
	_, err = repo.Create(ctx, missingGroup, "a@example.com")
	assert.Error(t, err)

	_, err = repo.Create(ctx, newDonationRequest("A+", "Dhaka"), "")
	assert.Error(t, err)
}
