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

// DetectionResult summarizes one missed-topic check.
type DetectionResult struct {
	Processed   int
	CreditDelta int
}

// DetectMissedTopics checks the topics scheduled on the calendar day
// containing checkDate. Studied topics earn a credit, missed topics move to
// the following day and cost one. Topic writes and the credit change are
// committed together.
func (s *Service) DetectMissedTopics(ctx context.Context, userID uuid.UUID, checkDate time.Time) (DetectionResult, error) {
	p, err := s.loadPass(ctx, userID)
	if err != nil {
		return DetectionResult{}, fmt.Errorf("schedule.DetectMissedTopics: %w", err)
	}
	if p == nil {
		return DetectionResult{}, nil
	}

	var res DetectionResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.LockForUpdate(ctx, p.user.ID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		var err error
		res, err = s.detect(ctx, p, planner.DayStart(checkDate, p.loc))
		return err
	})
	if err != nil {
		return DetectionResult{}, fmt.Errorf("schedule.DetectMissedTopics: %w", err)
	}
	return res, nil
}

// detect must run inside a transaction.
func (s *Service) detect(ctx context.Context, p *pass, checkDay time.Time) (DetectionResult, error) {
	nextDay := planner.AddDays(checkDay, 1, p.loc)

	topics, err := s.topics.List(ctx, p.user.ID, domain.TopicFilter{
		ScheduledFrom: &checkDay,
		ScheduledTo:   &nextDay,
		OrderBy:       domain.OrderByScheduledDate,
	})
	if err != nil {
		return DetectionResult{}, fmt.Errorf("list scheduled topics: %w", err)
	}

	r := planner.Reconcile(topics, checkDay, nextDay, p.now)
	if len(r.Updates) > 0 {
		if err := s.topics.ApplyScheduleUpdates(ctx, p.user.ID, r.Updates); err != nil {
			return DetectionResult{}, fmt.Errorf("apply reconciliation: %w", err)
		}
	}
	if r.CreditDelta != 0 {
		if _, err := s.users.AddCredits(ctx, p.user.ID, r.CreditDelta); err != nil {
			return DetectionResult{}, fmt.Errorf("add credits: %w", err)
		}
	}

	s.log.InfoContext(ctx, "missed topics checked",
		slog.String("user_id", p.user.ID.String()),
		slog.String("day", planner.DateKey(checkDay, p.loc)),
		slog.Int("processed", r.Processed),
		slog.Int("credit_delta", r.CreditDelta),
	)
	return DetectionResult{Processed: r.Processed, CreditDelta: r.CreditDelta}, nil
}
