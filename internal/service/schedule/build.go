package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/schedule/planner"
)

// BuildSchedule allocates the user's open topics over horizonDays days
// starting at the day containing start and persists new assignments.
// Topics already sitting on their allocated day are not rewritten.
func (s *Service) BuildSchedule(ctx context.Context, userID uuid.UUID, start time.Time, horizonDays int) ([]planner.DaySlot, error) {
	p, err := s.loadPass(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("schedule.BuildSchedule: %w", err)
	}
	if p == nil {
		return nil, nil
	}

	slots, err := s.build(ctx, p, start, horizonDays)
	if err != nil {
		return nil, fmt.Errorf("schedule.BuildSchedule: %w", err)
	}
	return slots, nil
}

func (s *Service) build(ctx context.Context, p *pass, start time.Time, horizonDays int) ([]planner.DaySlot, error) {
	if horizonDays <= 0 {
		return nil, nil
	}

	var (
		slots   []planner.DaySlot
		updates []domain.ScheduleUpdate
		open    int
	)
	capacity := planner.DailyCapacity(&p.user.Preferences)

	// The user row lock serializes builds and maintenance of one user
	// across processes.
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.LockForUpdate(ctx, p.user.ID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		topics, err := s.topics.List(ctx, p.user.ID, domain.TopicFilter{
			ExcludeCompleted: true,
			WithSubject:      true,
		})
		if err != nil {
			return fmt.Errorf("list open topics: %w", err)
		}
		open = len(topics)

		slots = planner.Allocate(topics, start, horizonDays, capacity, p.loc)
		updates = planner.PlanUpdates(slots, p.now)
		if len(updates) == 0 {
			return nil
		}
		if err := s.topics.ApplyScheduleUpdates(ctx, p.user.ID, updates); err != nil {
			return fmt.Errorf("apply schedule updates: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "schedule built",
		slog.String("user_id", p.user.ID.String()),
		slog.Int("topics", open),
		slog.Int("capacity", capacity),
		slog.Int("updated", len(updates)),
	)
	return slots, nil
}
