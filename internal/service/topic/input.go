package topic

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

const maxNameLength = 200

// CreateTopicInput holds the parameters for creating a topic.
// Status and Difficulty default to new and medium.
type CreateTopicInput struct {
	Name       string
	SubjectID  *uuid.UUID
	Status     domain.TopicStatus
	Difficulty domain.Difficulty
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	if i.SubjectID != nil && *i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "invalid"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Difficulty != "" && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListTopicsInput narrows ListTopics.
type ListTopicsInput struct {
	SubjectID        *uuid.UUID
	ExcludeCompleted bool
}

// UpdateTopicInput holds the parameters for updating a topic.
// Nil fields are left unchanged.
type UpdateTopicInput struct {
	TopicID           uuid.UUID
	Name              *string
	SubjectID         *uuid.UUID
	ClearSubject      bool
	Status            *domain.TopicStatus
	Difficulty        *domain.Difficulty
	CompletionPercent *int
}

func (i UpdateTopicInput) empty() bool {
	return i.Name == nil && i.SubjectID == nil && !i.ClearSubject &&
		i.Status == nil && i.Difficulty == nil && i.CompletionPercent == nil
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate() error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.empty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.ClearSubject && i.SubjectID != nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "cannot set and clear at once"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if i.Difficulty != nil && !i.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "invalid value"})
	}
	if i.CompletionPercent != nil && (*i.CompletionPercent < 0 || *i.CompletionPercent > 100) {
		errs = append(errs, domain.FieldError{Field: "completion_percent", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = domain.CleanName(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}
