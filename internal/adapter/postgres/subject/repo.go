// Package subject implements the Subject repository using PostgreSQL.
package subject

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Repo provides subject persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new subject repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{"id", "user_id", "name", "exam_date", "created_at", "updated_at"}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a subject by primary key with user_id filter.
// Returns domain.ErrNotFound if the subject does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error) {
	query := postgres.Builder().
		Select(columns...).
		From("subjects").
		Where(squirrel.Eq{"id": subjectID, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get subject: %w", err)
	}

	s, err := scanSubject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "subject", subjectID)
	}
	return s, nil
}

// List returns all subjects of a user ordered by exam date (nearest first,
// no exam last), then name. Returns an empty slice when there are none.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error) {
	query := postgres.Builder().
		Select(columns...).
		From("subjects").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("exam_date ASC NULLS LAST", "name ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list subjects: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	subjects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Subject, error) {
		return scanSubject(row)
	})
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	if subjects == nil {
		subjects = []*domain.Subject{}
	}
	return subjects, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new subject.
// Returns domain.ErrAlreadyExists if the user already has a subject with that name.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, s *domain.Subject) (*domain.Subject, error) {
	query := postgres.Builder().
		Insert("subjects").
		Columns("user_id", "name", "exam_date").
		Values(userID, s.Name, s.ExamDate).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create subject: %w", err)
	}

	created, err := scanSubject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "subject", uuid.Nil)
	}
	return created, nil
}

// Update applies a partial update.
// Returns domain.ErrNotFound if the subject does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error) {
	query := postgres.Builder().
		Update("subjects").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": subjectID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	if params.Name != nil {
		query = query.Set("name", *params.Name)
	}
	switch {
	case params.ClearExamDate:
		query = query.Set("exam_date", nil)
	case params.ExamDate != nil:
		query = query.Set("exam_date", *params.ExamDate)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update subject: %w", err)
	}

	updated, err := scanSubject(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "subject", subjectID)
	}
	return updated, nil
}

// Delete removes a subject. Its topics stay and lose their subject.
// Returns domain.ErrNotFound if the subject does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, subjectID uuid.UUID) error {
	query := postgres.Builder().
		Delete("subjects").
		Where(squirrel.Eq{"id": subjectID, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete subject: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "subject", subjectID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subject %s: %w", subjectID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanSubject(row pgx.Row) (*domain.Subject, error) {
	var s domain.Subject
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.ExamDate, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
