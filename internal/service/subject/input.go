package subject

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// CreateSubjectInput holds the parameters for creating a subject.
type CreateSubjectInput struct {
	Name     string
	ExamDate *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateSubjectInput) Validate() error {
	var errs []domain.FieldError
	errs = validateName(errs, i.Name)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateSubjectInput holds the parameters for updating a subject.
type UpdateSubjectInput struct {
	SubjectID     uuid.UUID
	Name          *string
	ExamDate      *time.Time
	ClearExamDate bool
}

// Validate checks all fields and collects all errors.
func (i UpdateSubjectInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	if i.Name == nil && i.ExamDate == nil && !i.ClearExamDate {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.ExamDate != nil && i.ClearExamDate {
		errs = append(errs, domain.FieldError{Field: "exam_date", Message: "cannot set and clear at once"})
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
	if len(name) > 100 {
		return append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}
