package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default preferences in UTC and email
// notifications on.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		Email:       "student-" + suffix + "@example.com",
		Name:        "Student " + suffix,
		Timezone:    "UTC",
		Preferences: domain.DefaultPreferences(),
		CreatedAt:   now,
		UpdatedAt:   now,

		EmailNotificationsEnabled: true,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, timezone, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.Timezone, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedSubject creates a subject for userID. examDate may be nil.
func SeedSubject(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, examDate *time.Time) domain.Subject {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	subject := domain.Subject{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Subject " + uniqueSuffix(),
		ExamDate:  examDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO subjects (id, user_id, name, exam_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		subject.ID, subject.UserID, subject.Name, subject.ExamDate, subject.CreatedAt, subject.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubject: %v", err)
	}

	return subject
}

// SeedTopic creates a new medium topic. subjectID may be nil.
// createdAt orders topics; pass increasing values when order matters.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, subjectID *uuid.UUID, completion int, createdAt time.Time) domain.Topic {
	t.Helper()
	ctx := context.Background()

	createdAt = createdAt.UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:                uuid.New(),
		UserID:            userID,
		SubjectID:         subjectID,
		Name:              "Topic " + uniqueSuffix(),
		Status:            domain.TopicStatusNew,
		Difficulty:        domain.DifficultyMedium,
		CompletionPercent: completion,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO topics (id, user_id, subject_id, name, status, difficulty, completion_percent, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		topic.ID, topic.UserID, topic.SubjectID, topic.Name, string(topic.Status), string(topic.Difficulty),
		topic.CompletionPercent, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return topic
}
