package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// CreateTopic creates a new topic for the authenticated user.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.TopicStatusNew
	}
	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}

	if err := s.checkSubject(ctx, userID, input.SubjectID); err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}

	topic, err := s.topics.Create(ctx, userID, &domain.Topic{
		SubjectID:  input.SubjectID,
		Name:       domain.CleanName(input.Name),
		Status:     status,
		Difficulty: difficulty,
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("user_id", userID.String()),
		slog.String("topic_id", topic.ID.String()),
		slog.String("name", topic.Name),
	)

	return topic, nil
}
