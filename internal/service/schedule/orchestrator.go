package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/schedule/planner"
)

// ScheduleDay is one calendar day of the full schedule.
type ScheduleDay struct {
	Date   string // YYYY-MM-DD in the user's timezone
	Topics []*domain.Topic
}

// FullSchedule lists upcoming days in ascending date order. Days without
// topics are omitted.
type FullSchedule struct {
	Days []ScheduleDay
}

// ByDate returns the schedule keyed by calendar date.
func (f FullSchedule) ByDate() map[string][]*domain.Topic {
	m := make(map[string][]*domain.Topic, len(f.Days))
	for _, d := range f.Days {
		m[d.Date] = d.Topics
	}
	return m
}

// refreshResult is what one serialized refresh yields.
type refreshResult struct {
	pass  *pass
	today []*domain.Topic
}

// GetStudySchedule runs the daily maintenance pass if it has not run yet
// today, refreshes the rolling horizon and returns today's topics.
// An unknown user gets an empty plan.
func (s *Service) GetStudySchedule(ctx context.Context, userID uuid.UUID) ([]*domain.Topic, error) {
	res, err := s.refresh(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("schedule.GetStudySchedule: %w", err)
	}
	if res.pass == nil {
		return []*domain.Topic{}, nil
	}
	return res.today, nil
}

// GetFullSchedule refreshes the schedule like GetStudySchedule and returns
// every topic scheduled within the full window, grouped by day.
func (s *Service) GetFullSchedule(ctx context.Context, userID uuid.UUID) (FullSchedule, error) {
	res, err := s.refresh(ctx, userID)
	if err != nil {
		return FullSchedule{}, fmt.Errorf("schedule.GetFullSchedule: %w", err)
	}
	p := res.pass
	if p == nil {
		return FullSchedule{}, nil
	}

	end := planner.AddDays(p.today, s.cfg.FullWindowDays, p.loc)
	topics, err := s.topics.List(ctx, p.user.ID, domain.TopicFilter{
		ScheduledFrom: &p.today,
		ScheduledTo:   &end,
		WithSubject:   true,
		OrderBy:       domain.OrderByScheduledDate,
	})
	if err != nil {
		return FullSchedule{}, fmt.Errorf("schedule.GetFullSchedule: list window: %w", err)
	}

	var full FullSchedule
	for _, t := range topics {
		key := planner.DateKey(*t.ScheduledDate, p.loc)
		if n := len(full.Days); n == 0 || full.Days[n-1].Date != key {
			full.Days = append(full.Days, ScheduleDay{Date: key})
		}
		last := &full.Days[len(full.Days)-1]
		last.Topics = append(last.Topics, t)
	}
	return full, nil
}

// refresh serializes maintenance and rebuild per user within the process.
// Concurrent callers for the same user share one execution. The shared pass
// ignores the cancellation of whichever caller started it; each caller stops
// waiting when its own ctx is done.
func (s *Service) refresh(ctx context.Context, userID uuid.UUID) (refreshResult, error) {
	passCtx := context.WithoutCancel(ctx)
	ch := s.flight.DoChan(userID.String(), func() (any, error) {
		return s.doRefresh(passCtx, userID)
	})

	select {
	case <-ctx.Done():
		return refreshResult{}, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return refreshResult{}, r.Err
		}
		return r.Val.(refreshResult), nil
	}
}

func (s *Service) doRefresh(ctx context.Context, userID uuid.UUID) (refreshResult, error) {
	p, err := s.loadPass(ctx, userID)
	if err != nil {
		return refreshResult{}, err
	}
	if p == nil {
		return refreshResult{}, nil
	}

	if p.user.NeedsScheduleCheck(p.today) {
		if err := s.maintain(ctx, p); err != nil {
			return refreshResult{}, fmt.Errorf("daily maintenance: %w", err)
		}
	}

	if _, err := s.build(ctx, p, p.today, s.cfg.HorizonDays); err != nil {
		return refreshResult{}, fmt.Errorf("build schedule: %w", err)
	}

	today, err := s.topics.List(ctx, p.user.ID, domain.TopicFilter{
		ScheduledFrom: &p.today,
		ScheduledTo:   &p.tomorrow,
		WithSubject:   true,
		OrderBy:       domain.OrderByScheduledDate,
	})
	if err != nil {
		return refreshResult{}, fmt.Errorf("list today: %w", err)
	}
	if today == nil {
		today = []*domain.Topic{}
	}
	return refreshResult{pass: p, today: today}, nil
}

// maintain runs yesterday's missed-topic check and snapshots progress. The
// claim on users.last_schedule_check makes it run at most once per calendar
// day across processes; it commits or rolls back together with the writes.
func (s *Service) maintain(ctx context.Context, p *pass) error {
	var (
		claimed  bool
		res      DetectionResult
		snapshot int
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		claimed, err = s.users.ClaimScheduleCheck(ctx, p.user.ID, p.now, p.today)
		if err != nil {
			return fmt.Errorf("claim schedule check: %w", err)
		}
		if !claimed {
			return nil
		}

		yesterday := planner.AddDays(p.today, -1, p.loc)
		res, err = s.detect(ctx, p, yesterday)
		if err != nil {
			return err
		}

		snapshot, err = s.topics.SnapshotProgress(ctx, p.user.ID)
		if err != nil {
			return fmt.Errorf("snapshot progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if !claimed {
		s.log.DebugContext(ctx, "daily maintenance already done",
			slog.String("user_id", p.user.ID.String()))
		return nil
	}

	now := p.now
	p.user.LastScheduleCheck = &now
	p.user.Credits += res.CreditDelta

	s.log.InfoContext(ctx, "daily maintenance done",
		slog.String("user_id", p.user.ID.String()),
		slog.Int("processed", res.Processed),
		slog.Int("credit_delta", res.CreditDelta),
		slog.Int("snapshotted", snapshot),
	)
	return nil
}
