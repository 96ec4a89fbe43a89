package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/schedule/planner"
)

// UpdatePriorityScores recomputes and persists the priority score of every
// topic the user owns.
func (s *Service) UpdatePriorityScores(ctx context.Context, userID uuid.UUID) error {
	p, err := s.loadPass(ctx, userID)
	if err != nil {
		return fmt.Errorf("schedule.UpdatePriorityScores: %w", err)
	}
	if p == nil {
		return nil
	}
	if err := s.updatePriorities(ctx, p); err != nil {
		return fmt.Errorf("schedule.UpdatePriorityScores: %w", err)
	}
	return nil
}

// GetPriorityTopics refreshes priority scores and returns the highest ranked
// topics. The list size follows the user's daily study goal. This ranking is
// independent of the day planner.
func (s *Service) GetPriorityTopics(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error) {
	p, err := s.loadPass(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("schedule.GetPriorityTopics: %w", err)
	}
	if p == nil {
		return []*domain.Topic{}, nil
	}
	if err := s.updatePriorities(ctx, p); err != nil {
		return nil, fmt.Errorf("schedule.GetPriorityTopics: %w", err)
	}

	topics, err := s.topics.List(ctx, p.user.ID, domain.TopicFilter{
		WithSubject: true,
		OrderBy:     domain.OrderByPriority,
		Limit:       planner.LegacyTopicLimit(&p.user.Preferences),
	})
	if err != nil {
		return nil, fmt.Errorf("schedule.GetPriorityTopics: list: %w", err)
	}
	return topics, nil
}

func (s *Service) updatePriorities(ctx context.Context, p *pass) error {
	topics, err := s.topics.List(ctx, p.user.ID, domain.TopicFilter{WithSubject: true})
	if err != nil {
		return fmt.Errorf("list topics: %w", err)
	}
	if len(topics) == 0 {
		return nil
	}

	updates := make([]domain.PriorityUpdate, len(topics))
	for i, t := range topics {
		updates[i] = domain.PriorityUpdate{
			TopicID: t.ID,
			Score:   planner.PriorityScore(t, t.Subject, &p.user.Preferences, p.now),
		}
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.topics.UpdatePriorityScores(ctx, p.user.ID, updates)
	})
	if err != nil {
		return fmt.Errorf("update priority scores: %w", err)
	}

	s.log.DebugContext(ctx, "priority scores updated",
		slog.String("user_id", p.user.ID.String()),
		slog.Int("topics", len(updates)),
	)
	return nil
}
