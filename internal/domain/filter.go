package domain

import (
	"time"

	"github.com/google/uuid"
)

// TopicFilter narrows topic list reads. Zero value means all topics of the user.
type TopicFilter struct {
	ExcludeCompleted bool
	ScheduledFrom    *time.Time // inclusive
	ScheduledTo      *time.Time // exclusive
	SubjectID        *uuid.UUID
	WithSubject      bool
	OrderBy          TopicOrder
	Limit            int
}

// TopicOrder selects the ordering of topic list reads.
type TopicOrder int

const (
	// OrderByCreated keeps insertion order (created_at, id).
	OrderByCreated TopicOrder = iota
	// OrderByScheduledDate sorts ascending by scheduled date, then creation.
	OrderByScheduledDate
	// OrderByPriority sorts by priority score, highest first.
	OrderByPriority
)
