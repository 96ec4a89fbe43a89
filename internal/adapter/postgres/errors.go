package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// pgCodeErrors maps SQLSTATE codes to the domain errors services branch on.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation: the referenced subject or user is gone
	"23514": domain.ErrValidation,    // check_violation
	"23502": domain.ErrValidation,    // not_null_violation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected between two passes for one user
	"55P03": domain.ErrConflict,      // lock_not_available
}

// MapError converts pgx/pgconn errors to domain errors, prefixed with the
// entity and id. Context cancellation passes through unmapped.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	var target error
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		target = err
	case errors.Is(err, pgx.ErrNoRows):
		target = domain.ErrNotFound
	case errors.As(err, &pgErr) && pgCodeErrors[pgErr.Code] != nil:
		target = pgCodeErrors[pgErr.Code]
	default:
		target = err
	}
	return fmt.Errorf("%s %s: %w", entity, id, target)
}
