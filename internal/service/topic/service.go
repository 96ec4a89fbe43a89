package topic

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

type topicRepo interface {
	Create(ctx context.Context, userID uuid.UUID, topic *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, userID, topicID uuid.UUID) (*domain.Topic, error)
	Update(ctx context.Context, userID, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
	Delete(ctx context.Context, userID, topicID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.TopicFilter) ([]*domain.Topic, error)
	ListHistory(ctx context.Context, userID, topicID uuid.UUID) ([]domain.ScheduleHistoryEntry, error)
}

type subjectRepo interface {
	GetByID(ctx context.Context, userID, subjectID uuid.UUID) (*domain.Subject, error)
}

// reviewScheduler computes spaced-repetition review dates.
type reviewScheduler interface {
	CalculateNextReviewDate(difficulty domain.Difficulty, lastReviewed *time.Time, repetitionLevel int) time.Time
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides topic management operations.
type Service struct {
	topics   topicRepo
	subjects subjectRepo
	reviews  reviewScheduler
	tx       txManager
	log      *slog.Logger
	clock    func() time.Time
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	subjects subjectRepo,
	reviews reviewScheduler,
	tx txManager,
) *Service {
	return &Service{
		topics:   topics,
		subjects: subjects,
		reviews:  reviews,
		tx:       tx,
		log:      log.With("service", "topic"),
		clock:    time.Now,
	}
}

// checkSubject verifies that the subject exists and belongs to the user.
func (s *Service) checkSubject(ctx context.Context, userID uuid.UUID, subjectID *uuid.UUID) error {
	if subjectID == nil {
		return nil
	}
	_, err := s.subjects.GetByID(ctx, userID, *subjectID)
	return err
}
