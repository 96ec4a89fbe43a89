// Package topic implements the Topic repository using PostgreSQL.
// Filtered reads and partial updates are built with squirrel; scheduling
// writes are sent as a single pgx batch (see repo_schedule.go).
package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new topic repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var topicColumns = []string{
	"t.id", "t.user_id", "t.subject_id", "t.name", "t.status", "t.difficulty",
	"t.priority_score", "t.last_reviewed", "t.next_review_date", "t.repetition_level",
	"t.completion_percent", "t.scheduled_date", "t.rescheduled",
	"t.last_snapshot_percent", "t.last_studied_at", "t.created_at", "t.updated_at",
}

var subjectColumns = []string{
	"s.id", "s.user_id", "s.name", "s.exam_date", "s.created_at", "s.updated_at",
}

const returningTopic = `RETURNING
    id, user_id, subject_id, name, status, difficulty,
    priority_score, last_reviewed, next_review_date, repetition_level,
    completion_percent, scheduled_date, rescheduled,
    last_snapshot_percent, last_studied_at, created_at, updated_at`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key with user_id filter. The subject,
// if any, is joined in.
// Returns domain.ErrNotFound if the topic does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error) {
	query := postgres.Builder().
		Select(topicColumns...).
		Columns(subjectColumns...).
		From("topics t").
		LeftJoin("subjects s ON s.id = t.subject_id").
		Where(squirrel.Eq{"t.id": topicID, "t.user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get topic: %w", err)
	}

	t, err := scanTopic(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...), true)
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}
	return t, nil
}

// List returns the topics of a user narrowed by filter.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.TopicFilter) ([]*domain.Topic, error) {
	query := postgres.Builder().
		Select(topicColumns...).
		From("topics t").
		Where(squirrel.Eq{"t.user_id": userID})

	if filter.WithSubject {
		query = query.
			Columns(subjectColumns...).
			LeftJoin("subjects s ON s.id = t.subject_id")
	}
	if filter.ExcludeCompleted {
		query = query.Where(squirrel.NotEq{"t.status": string(domain.TopicStatusCompleted)})
	}
	if filter.ScheduledFrom != nil {
		query = query.Where(squirrel.GtOrEq{"t.scheduled_date": *filter.ScheduledFrom})
	}
	if filter.ScheduledTo != nil {
		query = query.Where(squirrel.Lt{"t.scheduled_date": *filter.ScheduledTo})
	}
	if filter.SubjectID != nil {
		query = query.Where(squirrel.Eq{"t.subject_id": *filter.SubjectID})
	}

	switch filter.OrderBy {
	case domain.OrderByScheduledDate:
		query = query.OrderBy("t.scheduled_date ASC NULLS LAST", "t.created_at", "t.id")
	case domain.OrderByPriority:
		query = query.OrderBy("t.priority_score DESC", "t.created_at", "t.id")
	default:
		query = query.OrderBy("t.created_at", "t.id")
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	topics, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Topic, error) {
		return scanTopic(row, filter.WithSubject)
	})
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	if topics == nil {
		topics = []*domain.Topic{}
	}
	return topics, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new topic and returns the persisted domain.Topic.
// Returns domain.ErrNotFound if the referenced subject does not exist.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, topic *domain.Topic) (*domain.Topic, error) {
	query := postgres.Builder().
		Insert("topics").
		Columns(
			"user_id", "subject_id", "name", "status", "difficulty",
			"completion_percent", "repetition_level", "last_reviewed", "next_review_date",
		).
		Values(
			userID, topic.SubjectID, topic.Name, string(topic.Status), string(topic.Difficulty),
			topic.CompletionPercent, topic.RepetitionLevel, topic.LastReviewed, topic.NextReviewDate,
		).
		Suffix(returningTopic)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create topic: %w", err)
	}

	created, err := scanTopic(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...), false)
	if err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}
	return created, nil
}

// Update applies a partial update of user-editable fields.
// Returns domain.ErrNotFound if the topic does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error) {
	query := postgres.Builder().
		Update("topics").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": topicID, "user_id": userID}).
		Suffix(returningTopic)

	if params.Name != nil {
		query = query.Set("name", *params.Name)
	}
	switch {
	case params.ClearSubject:
		query = query.Set("subject_id", nil)
	case params.SubjectID != nil:
		query = query.Set("subject_id", *params.SubjectID)
	}
	if params.Status != nil {
		query = query.Set("status", string(*params.Status))
	}
	if params.Difficulty != nil {
		query = query.Set("difficulty", string(*params.Difficulty))
	}
	if params.CompletionPercent != nil {
		query = query.Set("completion_percent", *params.CompletionPercent)
	}
	if params.LastReviewed != nil {
		query = query.Set("last_reviewed", *params.LastReviewed)
	}
	if params.NextReviewDate != nil {
		query = query.Set("next_review_date", *params.NextReviewDate)
	}
	if params.RepetitionLevel != nil {
		query = query.Set("repetition_level", *params.RepetitionLevel)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update topic: %w", err)
	}

	updated, err := scanTopic(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...), false)
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}
	return updated, nil
}

// Delete removes a topic and its schedule history.
// Returns domain.ErrNotFound if the topic does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, topicID uuid.UUID) error {
	query := postgres.Builder().
		Delete("topics").
		Where(squirrel.Eq{"id": topicID, "user_id": userID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete topic: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "topic", topicID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

type subjectRow struct {
	id        *uuid.UUID
	userID    *uuid.UUID
	name      *string
	examDate  *time.Time
	createdAt *time.Time
	updatedAt *time.Time
}

func (s subjectRow) toDomain() *domain.Subject {
	if s.id == nil {
		return nil
	}
	subject := &domain.Subject{ID: *s.id, ExamDate: s.examDate}
	if s.userID != nil {
		subject.UserID = *s.userID
	}
	if s.name != nil {
		subject.Name = *s.name
	}
	if s.createdAt != nil {
		subject.CreatedAt = *s.createdAt
	}
	if s.updatedAt != nil {
		subject.UpdatedAt = *s.updatedAt
	}
	return subject
}

func scanTopic(row pgx.Row, withSubject bool) (*domain.Topic, error) {
	var (
		t                  domain.Topic
		status, difficulty string
		s                  subjectRow
	)

	dest := []any{
		&t.ID, &t.UserID, &t.SubjectID, &t.Name, &status, &difficulty,
		&t.PriorityScore, &t.LastReviewed, &t.NextReviewDate, &t.RepetitionLevel,
		&t.CompletionPercent, &t.ScheduledDate, &t.Rescheduled,
		&t.LastSnapshotPercent, &t.LastStudiedAt, &t.CreatedAt, &t.UpdatedAt,
	}
	if withSubject {
		dest = append(dest, &s.id, &s.userID, &s.name, &s.examDate, &s.createdAt, &s.updatedAt)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	t.Status = domain.TopicStatus(status)
	t.Difficulty = domain.Difficulty(difficulty)
	if withSubject {
		t.Subject = s.toDomain()
	}
	return &t, nil
}
