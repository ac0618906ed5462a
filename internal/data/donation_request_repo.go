package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/savelife/savelife-api/internal/data/database"
	"github.com/savelife/savelife-api/internal/data/pgxutil"
	"github.com/savelife/savelife-api/internal/domain/model"
)

// ErrDonationRequestNotFound is returned when a donation request is not found.
var ErrDonationRequestNotFound = errors.New("donation request not found")

// DonationRequestRepo provides database operations for donation requests.
type DonationRequestRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewDonationRequestRepo creates a new DonationRequestRepo with real time provider.
func NewDonationRequestRepo(db *sql.DB) *DonationRequestRepo {
	return &DonationRequestRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewDonationRequestRepoWithTimeProvider creates a new DonationRequestRepo with a custom time provider (useful for tests).
func NewDonationRequestRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *DonationRequestRepo {
	return &DonationRequestRepo{DB: db, timeProvider: tp}
}

// Create inserts a new donation request in the pending state.
func (r *DonationRequestRepo) Create(
	ctx context.Context,
	req *model.CreateDonationRequestRequest,
	requesterEmail string,
) (*model.DonationRequest, error) {
	if req == nil {
		return nil, errors.New("create donation request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if requesterEmail == "" {
		return nil, errors.New("requester email is required")
	}

	var out model.DonationRequest
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO donation_requests (
				id, requester_email, requester_name, recipient_name, blood_group,
				district, upazila, hospital, address, date, time, message, status, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
			) RETURNING `+donationRequestColumns,
			uuid.NewString(),
			model.NormalizeEmail(requesterEmail),
			req.RequesterName,
			req.RecipientName,
			req.BloodGroup,
			req.District,
			req.Upazila,
			req.Hospital,
			req.Address,
			req.Date,
			req.Time,
			req.Message,
			model.DonationStatusPending,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DonationRequest])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create donation request: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a donation request by ID.
func (r *DonationRequestRepo) GetByID(ctx context.Context, id string) (*model.DonationRequest, error) {
	var out model.DonationRequest
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+donationRequestColumns+` FROM donation_requests WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DonationRequest])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDonationRequestNotFound
		}
		return nil, fmt.Errorf("failed to get donation request: %w", err)
	}
	return &out, nil
}

// List retrieves donation requests with optional filters, newest first.
func (r *DonationRequestRepo) List(
	ctx context.Context,
	opts model.DonationRequestsListOptions,
) ([]*model.DonationRequest, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := max(opts.Offset, 0)

	query, args := database.BuildListQuery(r.buildListOptions(opts, limit, offset))

	var rowsOut []model.DonationRequest
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.DonationRequest])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list donation requests: %w", err)
	}

	res := make([]*model.DonationRequest, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// SetStatus updates a donation request's status and returns the updated record.
// Lifecycle transition rules are enforced by the service layer.
func (r *DonationRequestRepo) SetStatus(
	ctx context.Context,
	id string,
	status model.DonationRequestStatus,
) (*model.DonationRequest, error) {
	var out model.DonationRequest
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`UPDATE donation_requests SET status = $1 WHERE id = $2 RETURNING `+donationRequestColumns,
			status, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.DonationRequest])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDonationRequestNotFound
		}
		return nil, fmt.Errorf("failed to set donation request status: %w", err)
	}
	return &out, nil
}

const donationRequestColumns = `id, requester_email, requester_name, recipient_name, blood_group,
	district, upazila, hospital, address, date, time, message, status, created_at`

func donationRequestColumnList() []string {
	return []string{
		"id",
		"requester_email",
		"requester_name",
		"recipient_name",
		"blood_group",
		"district",
		"upazila",
		"hospital",
		"address",
		"date",
		"time",
		"message",
		"status",
		"created_at",
	}
}

func (r *DonationRequestRepo) buildListOptions(
	opts model.DonationRequestsListOptions,
	limit, offset int,
) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithColumns(donationRequestColumnList()...),
		database.WithLimit(limit),
		database.WithOffset(offset),
	}

	if opts.BloodGroup != nil && *opts.BloodGroup != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("blood_group", database.Equal, *opts.BloodGroup),
		))
	}
	if opts.District != nil && *opts.District != "" {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("district", database.Equal, *opts.District),
		))
	}
	if opts.Status != nil && opts.Status.Valid() {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("status", database.Equal, string(*opts.Status)),
		))
	}

	queryOpts = append(queryOpts, database.WithOrderBy("created_at", "DESC"))
	return database.NewListQueryOptions("donation_requests", queryOpts...)
}
