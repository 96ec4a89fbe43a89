package planner

import (
	"time"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// Reconciliation is the outcome of checking one calendar day's assignments.
type Reconciliation struct {
	Updates     []domain.ScheduleUpdate
	Processed   int
	CreditDelta int
}

// Reconcile decides for every topic scheduled within [checkDay, nextDay)
// whether it was studied or missed. A topic counts as studied when its
// completion grew since the last snapshot or it is completed; it keeps its
// date and earns a credit. A missed topic moves to nextDay and costs a credit.
func Reconcile(topics []*domain.Topic, checkDay, nextDay, now time.Time) Reconciliation {
	var r Reconciliation
	for _, t := range topics {
		if t.ScheduledDate == nil || t.ScheduledDate.Before(checkDay) || !t.ScheduledDate.Before(nextDay) {
			continue
		}
		r.Processed++

		curr := t.CompletionPercent
		prev := curr
		if t.LastSnapshotPercent != nil {
			prev = *t.LastSnapshotPercent
		}

		if curr > prev || t.IsCompleted() {
			studiedAt := now
			r.Updates = append(r.Updates, domain.ScheduleUpdate{
				TopicID:             t.ID,
				ScheduledDate:       *t.ScheduledDate,
				Rescheduled:         false,
				LastSnapshotPercent: &curr,
				LastStudiedAt:       &studiedAt,
				History: domain.ScheduleHistoryEntry{
					Date:      checkDay,
					Action:    domain.ScheduleActionCompleted,
					Reason:    domain.ReasonStudiedOnSchedule,
					Timestamp: now,
				},
			})
			r.CreditDelta++
			continue
		}

		r.Updates = append(r.Updates, domain.ScheduleUpdate{
			TopicID:             t.ID,
			ScheduledDate:       nextDay,
			Rescheduled:         true,
			LastSnapshotPercent: &curr,
			History: domain.ScheduleHistoryEntry{
				Date:      nextDay,
				Action:    domain.ScheduleActionRescheduled,
				Reason:    domain.ReasonMissedOnSchedule,
				Timestamp: now,
			},
		})
		r.CreditDelta--
	}
	return r
}
