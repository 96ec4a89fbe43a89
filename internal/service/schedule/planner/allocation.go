package planner

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// noExamDays ranks subjects without an exam date behind every real deadline.
const noExamDays = 5 * 365

// DaySlot is one calendar day of a schedule and the topics assigned to it.
type DaySlot struct {
	Date     time.Time // start of the local day, UTC
	Capacity int
	Topics   []*domain.Topic
}

// bucket is an owned allocation queue for one subject. head marks the next
// unassigned topic.
type bucket struct {
	subjectID     uuid.UUID
	daysUntilExam int
	hasExam       bool
	queue         []*domain.Topic
	head          int
}

func (b *bucket) drained() bool { return b.head >= len(b.queue) }

func (b *bucket) pop() *domain.Topic {
	t := b.queue[b.head]
	b.queue[b.head] = nil
	b.head++
	return t
}

// eligible reports whether the bucket may feed the day dayOffset days after
// the horizon start: its exam must not be strictly before that day.
func (b *bucket) eligible(dayOffset int) bool {
	if b.drained() {
		return false
	}
	return !b.hasExam || b.daysUntilExam >= dayOffset
}

// Allocate distributes backlog topics over horizonDays consecutive days
// starting at the day containing start. Subjects with the nearest exam are
// served first, least-progressed topics first within a subject. Every day
// holds at most capacity topics, unused capacity is not carried over, and
// no topic lands after its subject's exam day.
func Allocate(topics []*domain.Topic, start time.Time, horizonDays, capacity int, loc *time.Location) []DaySlot {
	if horizonDays <= 0 {
		return nil
	}
	capacity = max(capacity, 0)
	startDay := DayStart(start, loc)

	buckets := groupBySubject(topics, startDay, loc)
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].daysUntilExam < buckets[j].daysUntilExam
	})

	slots := make([]DaySlot, horizonDays)
	for i := range slots {
		slot := &slots[i]
		slot.Date = AddDays(startDay, i, loc)
		slot.Capacity = capacity

		for len(slot.Topics) < capacity {
			b := firstEligible(buckets, i)
			if b == nil {
				break
			}
			slot.Topics = append(slot.Topics, b.pop())
		}
	}
	return slots
}

func firstEligible(buckets []*bucket, dayOffset int) *bucket {
	for _, b := range buckets {
		if b.eligible(dayOffset) {
			return b
		}
	}
	return nil
}

// groupBySubject builds one bucket per subject in order of first appearance.
// Orphan topics share the bucket keyed by uuid.Nil. Completed and duplicate
// topics are dropped.
func groupBySubject(topics []*domain.Topic, startDay time.Time, loc *time.Location) []*bucket {
	var buckets []*bucket
	index := make(map[uuid.UUID]*bucket)
	seen := make(map[uuid.UUID]struct{}, len(topics))

	for _, t := range topics {
		if t == nil || t.IsCompleted() {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}

		key := uuid.Nil
		if t.SubjectID != nil {
			key = *t.SubjectID
		}
		b, ok := index[key]
		if !ok {
			b = &bucket{subjectID: key, daysUntilExam: noExamDays}
			index[key] = b
			buckets = append(buckets, b)
		}
		if !b.hasExam && t.Subject != nil && t.Subject.ExamDate != nil {
			b.hasExam = true
			b.daysUntilExam = DaysBetween(startDay, *t.Subject.ExamDate, loc)
		}
		b.queue = append(b.queue, t)
	}

	for _, b := range buckets {
		sort.SliceStable(b.queue, func(i, j int) bool {
			return b.queue[i].CompletionPercent < b.queue[j].CompletionPercent
		})
	}
	return buckets
}

// PlanUpdates converts allocated slots into schedule writes. Topics already
// scheduled on their slot day and not flagged as rescheduled produce no
// write, so repeated builds do not grow the history.
func PlanUpdates(slots []DaySlot, now time.Time) []domain.ScheduleUpdate {
	var updates []domain.ScheduleUpdate
	for _, slot := range slots {
		for _, t := range slot.Topics {
			if t.IsScheduledOn(slot.Date) {
				continue
			}
			updates = append(updates, domain.ScheduleUpdate{
				TopicID:       t.ID,
				ScheduledDate: slot.Date,
				Rescheduled:   false,
				History: domain.ScheduleHistoryEntry{
					Date:      slot.Date,
					Action:    domain.ScheduleActionScheduled,
					Reason:    domain.ReasonAutoSchedule,
					Timestamp: now,
				},
			})
		}
	}
	return updates
}
