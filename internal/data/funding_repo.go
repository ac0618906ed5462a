package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/savelife/savelife-api/internal/data/pgxutil"
	"github.com/savelife/savelife-api/internal/domain/model"
)

// FundingRepo provides database operations for funding contributions.
type FundingRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewFundingRepo creates a new FundingRepo with real time provider.
func NewFundingRepo(db *sql.DB) *FundingRepo {
	return &FundingRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewFundingRepoWithTimeProvider creates a new FundingRepo with a custom time provider (useful for tests).
func NewFundingRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *FundingRepo {
	return &FundingRepo{DB: db, timeProvider: tp}
}

// Create records a contribution by the given user.
func (r *FundingRepo) Create(
	ctx context.Context,
	req *model.CreateFundingRequest,
	email, currency string,
) (*model.Funding, error) {
	if req == nil {
		return nil, errors.New("create funding request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errors.New("contributor email is required")
	}

	var out model.Funding
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO fundings (
				id, email, name, amount_cents, currency, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6
			) RETURNING id, email, name, amount_cents, currency, created_at
		`,
			uuid.NewString(),
			model.NormalizeEmail(email),
			req.Name,
			req.AmountCents,
			currency,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Funding])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create funding: %w", err)
	}
	return &out, nil
}

// List retrieves contributions with pagination, newest first.
func (r *FundingRepo) List(ctx context.Context, limit, offset int) ([]*model.Funding, error) {
	if limit <= 0 {
		limit = 50
	}
	offset = max(offset, 0)

	var rowsOut []model.Funding
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, fundingListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Funding])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list fundings: %w", err)
	}

	res := make([]*model.Funding, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

const fundingListQuery = `
	SELECT id, email, name, amount_cents, currency, created_at
	FROM fundings
	ORDER BY created_at DESC
	LIMIT $1 OFFSET $2`
