package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// UpdateTopic updates an existing topic for the authenticated user.
// Moving a topic to revised stamps the review time and restarts the review
// interval at the first level; the stored repetition level is untouched.
// ReviewTopic is the path that climbs the interval ladder.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.TopicUpdateParams{
		SubjectID:         input.SubjectID,
		ClearSubject:      input.ClearSubject,
		Status:            input.Status,
		Difficulty:        input.Difficulty,
		CompletionPercent: input.CompletionPercent,
	}
	if input.Name != nil {
		trimmed := domain.CleanName(*input.Name)
		params.Name = &trimmed
	}

	var updated *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.topics.GetByID(txCtx, userID, input.TopicID)
		if err != nil {
			return fmt.Errorf("get topic: %w", err)
		}

		if err := s.checkSubject(txCtx, userID, input.SubjectID); err != nil {
			return fmt.Errorf("get subject: %w", err)
		}

		if input.Status != nil && *input.Status == domain.TopicStatusRevised {
			difficulty := current.Difficulty
			if input.Difficulty != nil {
				difficulty = *input.Difficulty
			}
			now := s.clock()
			next := s.reviews.CalculateNextReviewDate(difficulty, &now, 0)
			params.LastReviewed = &now
			params.NextReviewDate = &next
		}

		updated, err = s.topics.Update(txCtx, userID, input.TopicID, params)
		if err != nil {
			return fmt.Errorf("update topic: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", input.TopicID.String()),
	)

	return updated, nil
}
