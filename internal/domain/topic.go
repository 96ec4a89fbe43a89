package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a trackable unit of study content owned by a user.
type Topic struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	SubjectID           *uuid.UUID
	Subject             *Subject // populated by joined reads only
	Name                string
	Status              TopicStatus
	Difficulty          Difficulty
	PriorityScore       float64
	LastReviewed        *time.Time
	NextReviewDate      *time.Time
	RepetitionLevel     int
	CompletionPercent   int
	ScheduledDate       *time.Time
	Rescheduled         bool
	ScheduleHistory     []ScheduleHistoryEntry
	LastSnapshotPercent *int
	LastStudiedAt       *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsCompleted reports whether the topic has left the study backlog.
func (t *Topic) IsCompleted() bool {
	return t.Status == TopicStatusCompleted
}

// IsScheduledOn reports whether the topic is scheduled exactly at day and
// has not been moved there by a missed-day reschedule.
func (t *Topic) IsScheduledOn(day time.Time) bool {
	return t.ScheduledDate != nil && t.ScheduledDate.Equal(day) && !t.Rescheduled
}

// ScheduleHistoryEntry is one append-only record of a scheduling decision.
type ScheduleHistoryEntry struct {
	Date      time.Time
	Action    ScheduleAction
	Reason    string
	Timestamp time.Time
}

// TopicUpdateParams holds a partial update of user-editable topic fields.
// Nil fields are left unchanged.
type TopicUpdateParams struct {
	Name              *string
	SubjectID         *uuid.UUID
	ClearSubject      bool
	Status            *TopicStatus
	Difficulty        *Difficulty
	CompletionPercent *int
	LastReviewed      *time.Time
	NextReviewDate    *time.Time
	RepetitionLevel   *int
}
