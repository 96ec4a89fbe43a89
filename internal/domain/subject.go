package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subject groups topics and optionally carries an exam deadline.
type Subject struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	ExamDate  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubjectUpdateParams holds a partial subject update.
type SubjectUpdateParams struct {
	Name          *string
	ExamDate      *time.Time
	ClearExamDate bool
}
