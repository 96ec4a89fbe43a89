// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/studyplan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const userColumns = `
    id, email, name, timezone,
    daily_study_goal, topics_per_day, topic_priority_weight, review_frequency, reminder_time,
    credits, last_schedule_check, email_notifications_enabled, created_at, updated_at`

const getUserByIDSQL = `SELECT` + userColumns + ` FROM users WHERE id = $1`

const lockUserSQL = `SELECT id FROM users WHERE id = $1 FOR UPDATE`

const createUserSQL = `
INSERT INTO users (
    id, email, name, timezone,
    daily_study_goal, topics_per_day, topic_priority_weight, review_frequency, reminder_time)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING` + userColumns

const updatePreferencesSQL = `
UPDATE users SET
    timezone              = $2,
    daily_study_goal      = $3,
    topics_per_day        = $4,
    topic_priority_weight = $5,
    review_frequency      = $6,
    reminder_time         = $7,
    updated_at            = now()
WHERE id = $1
RETURNING` + userColumns

const updateNameSQL = `
UPDATE users SET name = $2, updated_at = now()
WHERE id = $1
RETURNING` + userColumns

const setEmailNotificationsSQL = `
UPDATE users SET email_notifications_enabled = $2, updated_at = now()
WHERE id = $1
RETURNING` + userColumns

const claimScheduleCheckSQL = `
UPDATE users
SET last_schedule_check = $2
WHERE id = $1
  AND (last_schedule_check IS NULL OR last_schedule_check < $3)`

const addCreditsSQL = `
UPDATE users SET credits = credits + $2, updated_at = now()
WHERE id = $1
RETURNING credits`

const listUserIDsSQL = `SELECT id FROM users ORDER BY created_at, id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// ListIDs returns the ids of all users in creation order.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listUserIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("list user ids: %w", err)
	}
	return ids, nil
}

// LockForUpdate takes a row lock on the user until the surrounding
// transaction ends. It must be called inside RunInTx.
func (r *Repo) LockForUpdate(ctx context.Context, id uuid.UUID) error {
	if !postgres.InTx(ctx) {
		return fmt.Errorf("lock user %s: %w", id, postgres.ErrNoTx)
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var locked uuid.UUID
	if err := q.QueryRow(ctx, lockUserSQL, id).Scan(&locked); err != nil {
		return postgres.MapError(err, "user", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user. Zero-valued preferences fall back to the defaults.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	tz := u.Timezone
	if tz == "" {
		tz = "UTC"
	}
	prefs := withDefaults(u.Preferences)

	created, err := scanUser(q.QueryRow(ctx, createUserSQL,
		id, u.Email, u.Name, tz,
		string(prefs.DailyStudyGoal), prefs.TopicsPerDay, string(prefs.TopicPriorityWeight),
		string(prefs.ReviewFrequency), prefs.ReminderTime,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return created, nil
}

// UpdatePreferences replaces the study preferences and timezone of a user.
func (r *Repo) UpdatePreferences(ctx context.Context, id uuid.UUID, timezone string, prefs domain.Preferences) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	prefs = withDefaults(prefs)
	u, err := scanUser(q.QueryRow(ctx, updatePreferencesSQL,
		id, timezone,
		string(prefs.DailyStudyGoal), prefs.TopicsPerDay, string(prefs.TopicPriorityWeight),
		string(prefs.ReviewFrequency), prefs.ReminderTime,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// UpdateName sets the display name of a user.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateNameSQL, id, name))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// SetEmailNotifications turns reminder emails on or off for a user.
func (r *Repo) SetEmailNotifications(ctx context.Context, id uuid.UUID, enabled bool) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, setEmailNotificationsSQL, id, enabled))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// ClaimScheduleCheck marks the daily maintenance pass as done at now, unless
// it already ran at or after dayStart. It reports whether this call won the
// claim. Inside a transaction the row stays locked until commit, so a
// concurrent claimer waits and then sees the new value.
func (r *Repo) ClaimScheduleCheck(ctx context.Context, id uuid.UUID, now, dayStart time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, claimScheduleCheckSQL, id, now, dayStart)
	if err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return tag.RowsAffected() == 1, nil
}

// AddCredits atomically adds delta (which may be negative) to the user's
// credits and returns the new balance. Credits have no floor.
func (r *Repo) AddCredits(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var credits int
	if err := q.QueryRow(ctx, addCreditsSQL, id, delta).Scan(&credits); err != nil {
		return 0, postgres.MapError(err, "user", id)
	}
	return credits, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func withDefaults(p domain.Preferences) domain.Preferences {
	def := domain.DefaultPreferences()
	if p.DailyStudyGoal == "" {
		p.DailyStudyGoal = def.DailyStudyGoal
	}
	if p.TopicPriorityWeight == "" {
		p.TopicPriorityWeight = def.TopicPriorityWeight
	}
	if p.ReviewFrequency == "" {
		p.ReviewFrequency = def.ReviewFrequency
	}
	if p.ReminderTime == "" {
		p.ReminderTime = def.ReminderTime
	}
	return p
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u            domain.User
		goal, weight string
		frequency    string
		topicsPerDay pgtype.Int4
		lastCheck    pgtype.Timestamptz
	)

	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Timezone,
		&goal, &topicsPerDay, &weight, &frequency, &u.Preferences.ReminderTime,
		&u.Credits, &lastCheck, &u.EmailNotificationsEnabled, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Preferences.DailyStudyGoal = domain.DailyStudyGoal(goal)
	u.Preferences.TopicPriorityWeight = domain.PriorityWeight(weight)
	u.Preferences.ReviewFrequency = domain.ReviewFrequency(frequency)
	if topicsPerDay.Valid {
		n := int(topicsPerDay.Int32)
		u.Preferences.TopicsPerDay = &n
	}
	if lastCheck.Valid {
		t := lastCheck.Time
		u.LastScheduleCheck = &t
	}
	return &u, nil
}
