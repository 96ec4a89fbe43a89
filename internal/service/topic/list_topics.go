package topic

import (
	"context"
	"fmt"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// ListTopics returns the user's topics with their subjects, oldest first.
func (s *Service) ListTopics(ctx context.Context, input ListTopicsInput) ([]*domain.Topic, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	topics, err := s.topics.List(ctx, userID, domain.TopicFilter{
		SubjectID:        input.SubjectID,
		ExcludeCompleted: input.ExcludeCompleted,
		WithSubject:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}
