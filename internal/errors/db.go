package errors

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// reKeyField extracts the field name from a unique violation detail:
// "Key (field)=(value) already exists.".
var reKeyField = regexp.MustCompile(`Key \(([^)]+)\)=`)

// MapDBError maps database errors to AppError instances:
// pgx.ErrNoRows → NotFound, unique violation → Conflict, foreign key →
// Validation, check/not-null violations → Validation, context errors →
// Timeout/Canceled, everything else unrecognized → Upstream.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Code: ErrCodeTimeout, Message: "Request timed out. Please try again.", Cause: err}
	}
	if errors.Is(err, context.Canceled) {
		return &AppError{Code: ErrCodeCanceled, Message: "Request was canceled.", Cause: err}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return &AppError{Code: ErrCodeNotFound, Message: "Resource not found", Cause: err}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return mapPgError(pgErr)
	}

	// The store erred in a way we cannot classify; surface it as a failed
	// request rather than guessing an authorization-relevant outcome.
	return &AppError{Code: ErrCodeUpstream, Message: "A storage error occurred. Please try again.", Cause: err}
}

func mapPgError(pgErr *pgconn.PgError) error {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return mapUniqueViolation(pgErr)
	case pgerrcode.ForeignKeyViolation:
		return &AppError{
			Code:    ErrCodeValidation,
			Message: "Cannot complete operation because a referenced item does not exist.",
			Cause:   pgErr,
		}
	case pgerrcode.NotNullViolation:
		return &AppError{Code: ErrCodeValidation, Message: "Required field is missing.", Field: pgErr.ColumnName, Cause: pgErr}
	case pgerrcode.CheckViolation:
		return &AppError{Code: ErrCodeValidation, Message: "Invalid data. Please check your input.", Cause: pgErr}
	default:
		return &AppError{Code: ErrCodeUpstream, Message: "A database error occurred. Please try again.", Cause: pgErr}
	}
}

func mapUniqueViolation(pgErr *pgconn.PgError) error {
	field := pgErr.ColumnName
	if field == "" && pgErr.Detail != "" {
		if m := reKeyField.FindStringSubmatch(pgErr.Detail); len(m) == 2 {
			field = m[1]
		}
	}
	if field == "" {
		// Constraint names follow "table_field_key".
		if parts := strings.Split(pgErr.ConstraintName, "_"); len(parts) == 3 {
			field = parts[1]
		}
	}
	return &AppError{
		Code:    ErrCodeConflict,
		Message: "This value already exists.",
		Field:   field,
		Cause:   pgErr,
	}
}
