package domain

import (
	"time"

	"github.com/google/uuid"
)

// Schedule history reasons written by the planner.
const (
	ReasonAutoSchedule      = "auto-schedule"
	ReasonStudiedOnSchedule = "studied-on-schedule"
	ReasonMissedOnSchedule  = "missed-on-schedule"
)

// ScheduleUpdate is one topic's scheduling write. All updates of a pass are
// applied together in a single batch.
type ScheduleUpdate struct {
	TopicID             uuid.UUID
	ScheduledDate       time.Time
	Rescheduled         bool
	LastSnapshotPercent *int
	LastStudiedAt       *time.Time
	History             ScheduleHistoryEntry
}

// PriorityUpdate carries a recomputed priority score for one topic.
type PriorityUpdate struct {
	TopicID uuid.UUID
	Score   float64
}
