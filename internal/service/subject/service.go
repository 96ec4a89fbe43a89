// Package subject manages subjects and their exam dates.
package subject

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

type subjectRepo interface {
	Create(ctx context.Context, userID uuid.UUID, s *domain.Subject) (*domain.Subject, error)
	GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Subject, error)
	Update(ctx context.Context, userID, subjectID uuid.UUID, params domain.SubjectUpdateParams) (*domain.Subject, error)
	Delete(ctx context.Context, userID, subjectID uuid.UUID) error
}

// priorityRefresher recomputes topic priority scores after exam dates change.
type priorityRefresher interface {
	UpdatePriorityScores(ctx context.Context, userID uuid.UUID) error
}

// Service provides subject management operations.
type Service struct {
	subjects   subjectRepo
	priorities priorityRefresher
	log        *slog.Logger
}

// NewService creates a new Subject service.
func NewService(log *slog.Logger, subjects subjectRepo, priorities priorityRefresher) *Service {
	return &Service{
		subjects:   subjects,
		priorities: priorities,
		log:        log.With("service", "subject"),
	}
}

// refreshPriorities is best effort: the subject change is already committed.
func (s *Service) refreshPriorities(ctx context.Context, userID uuid.UUID) {
	if err := s.priorities.UpdatePriorityScores(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "refresh priorities failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}
