package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// GetTopic returns a single topic with its schedule history.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.topics.GetByID(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	history, err := s.topics.ListHistory(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("list schedule history: %w", err)
	}
	topic.ScheduleHistory = history

	return topic, nil
}
