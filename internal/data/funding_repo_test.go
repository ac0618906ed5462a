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

func TestFundingRepo_Create_List(t *testing.T) {
	testutil.SkipIfNoTestDB(t)

	testutil.WithTestDB(t, func(db *sql.DB) {
		ctx := context.Background()
		repo := NewFundingRepo(db)

		f, err := repo.Create(ctx, &model.CreateFundingRequest{
			Name:        "Generous Donor",
			AmountCents: 2500,
		}, "Donor@Example.com", "usd")
		require.NoError(t, err)
		require.NotEmpty(t, f.ID)
		assert.Equal(t, "donor@example.com", f.Email)
		assert.Equal(t, int64(2500), f.AmountCents)
		assert.Equal(t, "usd", f.Currency)

		lst, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		require.Len(t, lst, 1)
		assert.Equal(t, f.ID, lst[0].ID)
	})
}

func TestFundingRepo_Create_Validation(t *testing.T) {
	repo := NewFundingRepo(nil)
	ctx := context.Background()

	_, err := repo.Create(ctx, nil, "a@example.com", "usd")
	assert.Error(t, err)

	_, err = repo.Create(ctx, &model.CreateFundingRequest{AmountCents: 0}, "a@example.com", "usd")
	assert.Error(t, err)

	_, err = repo.Create(ctx, &model.CreateFundingRequest{AmountCents: -100}, "a@example.com", "usd")
	assert.Error(t, err)

	_, err = repo.Create(ctx, &model.CreateFundingRequest{AmountCents: 100}, "", "usd")
	assert.Error(t, err)
}
