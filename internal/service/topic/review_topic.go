package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// ReviewTopic records a completed review: the topic becomes revised, its
// repetition level goes up by one and the next review date is recomputed
// from now at the new level.
func (s *Service) ReviewTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	var reviewed *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.topics.GetByID(txCtx, userID, topicID)
		if err != nil {
			return fmt.Errorf("get topic: %w", err)
		}

		now := s.clock()
		level := current.RepetitionLevel + 1
		next := s.reviews.CalculateNextReviewDate(current.Difficulty, &now, level)
		status := domain.TopicStatusRevised

		reviewed, err = s.topics.Update(txCtx, userID, topicID, domain.TopicUpdateParams{
			Status:          &status,
			LastReviewed:    &now,
			NextReviewDate:  &next,
			RepetitionLevel: &level,
		})
		if err != nil {
			return fmt.Errorf("update topic: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic reviewed",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topicID.String()),
		slog.Int("repetition_level", reviewed.RepetitionLevel),
	)

	return reviewed, nil
}
