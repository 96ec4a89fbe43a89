package subject

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// CreateSubject creates a subject for the authenticated user.
func (s *Service) CreateSubject(ctx context.Context, input CreateSubjectInput) (*domain.Subject, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.subjects.Create(ctx, userID, &domain.Subject{
		Name:     domain.CleanName(input.Name),
		ExamDate: input.ExamDate,
	})
	if err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}

	s.log.InfoContext(ctx, "subject created",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", created.ID.String()),
	)

	return created, nil
}

// ListSubjects returns the user's subjects, nearest exam first.
func (s *Service) ListSubjects(ctx context.Context) ([]*domain.Subject, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	subjects, err := s.subjects.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// UpdateSubject renames a subject or changes its exam date. Exam date
// changes trigger a priority refresh for the user's topics.
func (s *Service) UpdateSubject(ctx context.Context, input UpdateSubjectInput) (*domain.Subject, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.SubjectUpdateParams{
		ExamDate:      input.ExamDate,
		ClearExamDate: input.ClearExamDate,
	}
	if input.Name != nil {
		trimmed := domain.CleanName(*input.Name)
		params.Name = &trimmed
	}

	updated, err := s.subjects.Update(ctx, userID, input.SubjectID, params)
	if err != nil {
		return nil, fmt.Errorf("update subject: %w", err)
	}

	if input.ExamDate != nil || input.ClearExamDate {
		s.refreshPriorities(ctx, userID)
	}

	s.log.InfoContext(ctx, "subject updated",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", input.SubjectID.String()),
	)

	return updated, nil
}

// DeleteSubject deletes a subject. Its topics are kept without a subject.
func (s *Service) DeleteSubject(ctx context.Context, subjectID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if subjectID == uuid.Nil {
		return domain.NewValidationError("subject_id", "required")
	}

	if err := s.subjects.Delete(ctx, userID, subjectID); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}

	s.refreshPriorities(ctx, userID)

	s.log.InfoContext(ctx, "subject deleted",
		slog.String("user_id", userID.String()),
		slog.String("subject_id", subjectID.String()),
	)

	return nil
}
