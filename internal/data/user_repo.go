package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/savelife/savelife-api/internal/data/pgxutil"
	domainauth "github.com/savelife/savelife-api/internal/domain/auth"
	"github.com/savelife/savelife-api/internal/domain/model"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserEmailExists is returned when attempting to register a duplicate email.
	ErrUserEmailExists = errors.New("user email already exists")
)

// UserRepo provides database operations for user accounts. Its FindByEmail
// is the role-store lookup the authorization gates re-read on every request.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

// Create inserts a new user with the given role.
func (r *UserRepo) Create(ctx context.Context, req *model.CreateUserRequest, role domainauth.Role) (*model.User, error) {
	if req == nil {
		return nil, errors.New("create user request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (
				id, email, name, blood_group, district, upazila, role, created_at
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8
			) RETURNING id, email, name, blood_group, district, upazila, role, created_at
		`,
			uuid.NewString(),
			req.Email,
			req.Name,
			req.BloodGroup,
			req.District,
			req.Upazila,
			role,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, ErrUserEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &out, nil
}

// FindByEmail retrieves a user by normalized email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, userGetByEmailQuery, model.NormalizeEmail(email))
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &out, nil
}

// List retrieves users with pagination, newest first.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*model.User, error) {
	if limit <= 0 {
		limit = 50
	}
	offset = max(offset, 0)

	var rowsOut []model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, userListQuery, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	res := make([]*model.User, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// SetRole updates a user's role by ID and returns the updated record.
func (r *UserRepo) SetRole(ctx context.Context, id string, role domainauth.Role) (*model.User, error) {
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE users SET role = $1 WHERE id = $2
			RETURNING id, email, name, blood_group, district, upazila, role, created_at
		`, role, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to set user role: %w", err)
	}
	return &out, nil
}

// Delete removes a user by ID.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

const (
	userGetByEmailQuery = `
		SELECT id, email, name, blood_group, district, upazila, role, created_at
		FROM users
		WHERE email = $1`

	userListQuery = `
		SELECT id, email, name, blood_group, district, upazila, role, created_at
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
)
