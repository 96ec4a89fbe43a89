package schedule

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// memStore is an in-memory userRepo, topicRepo and txManager. Transactions
// snapshot the whole store and restore it when fn fails.
type memStore struct {
	txMu     sync.Mutex // one transaction at a time, like a held user row lock
	mu       sync.Mutex
	users    map[uuid.UUID]*domain.User
	subjects map[uuid.UUID]*domain.Subject
	topics   []*domain.Topic

	claims      int
	creditCalls int
	applyCalls  int

	failApply   error
	failCredits error
	failList    error

	// onList runs before every List call, outside the store lock.
	onList func(ctx context.Context) error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uuid.UUID]*domain.User),
		subjects: make(map[uuid.UUID]*domain.Subject),
	}
}

func (m *memStore) addUser(u *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
}

func (m *memStore) addSubject(s *domain.Subject) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subjects[s.ID] = s
}

func (m *memStore) addTopic(t *domain.Topic) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.topics = append(m.topics, t)
}

func (m *memStore) user(id uuid.UUID) domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.users[id]
}

func (m *memStore) topic(id uuid.UUID) domain.Topic {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.topics {
		if t.ID == id {
			return copyTopic(t)
		}
	}
	panic("topic not found")
}

func copyTopic(t *domain.Topic) domain.Topic {
	c := *t
	c.ScheduleHistory = append([]domain.ScheduleHistoryEntry(nil), t.ScheduleHistory...)
	return c
}

// ---------------------------------------------------------------------------
// userRepo
// ---------------------------------------------------------------------------

func (m *memStore) GetByID(_ context.Context, userID uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (m *memStore) LockForUpdate(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[userID]; !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (m *memStore) ClaimScheduleCheck(_ context.Context, userID uuid.UUID, now, dayStart time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok || !u.NeedsScheduleCheck(dayStart) {
		return false, nil
	}
	m.claims++
	u.LastScheduleCheck = &now
	return true, nil
}

func (m *memStore) AddCredits(_ context.Context, userID uuid.UUID, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCredits != nil {
		return 0, m.failCredits
	}
	m.creditCalls++
	u := m.users[userID]
	u.Credits += delta
	return u.Credits, nil
}

// ---------------------------------------------------------------------------
// topicRepo
// ---------------------------------------------------------------------------

func (m *memStore) List(ctx context.Context, userID uuid.UUID, f domain.TopicFilter) ([]*domain.Topic, error) {
	if m.onList != nil {
		if err := m.onList(ctx); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failList != nil {
		return nil, m.failList
	}

	var out []*domain.Topic
	for _, t := range m.topics {
		if t.UserID != userID {
			continue
		}
		if f.ExcludeCompleted && t.IsCompleted() {
			continue
		}
		if f.ScheduledFrom != nil && (t.ScheduledDate == nil || t.ScheduledDate.Before(*f.ScheduledFrom)) {
			continue
		}
		if f.ScheduledTo != nil && (t.ScheduledDate == nil || !t.ScheduledDate.Before(*f.ScheduledTo)) {
			continue
		}
		if f.SubjectID != nil && (t.SubjectID == nil || *t.SubjectID != *f.SubjectID) {
			continue
		}
		c := copyTopic(t)
		c.Subject = nil
		if f.WithSubject && t.SubjectID != nil {
			if s, ok := m.subjects[*t.SubjectID]; ok {
				sc := *s
				c.Subject = &sc
			}
		}
		out = append(out, &c)
	}

	switch f.OrderBy {
	case domain.OrderByScheduledDate:
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i].ScheduledDate, out[j].ScheduledDate
			if a == nil || b == nil {
				return a != nil
			}
			return a.Before(*b)
		})
	case domain.OrderByPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriorityScore > out[j].PriorityScore
		})
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *memStore) ApplyScheduleUpdates(_ context.Context, userID uuid.UUID, updates []domain.ScheduleUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failApply != nil {
		return m.failApply
	}
	m.applyCalls++
	for _, u := range updates {
		t := m.find(userID, u.TopicID)
		if t == nil {
			return domain.ErrNotFound
		}
		d := u.ScheduledDate
		t.ScheduledDate = &d
		t.Rescheduled = u.Rescheduled
		if u.LastSnapshotPercent != nil {
			v := *u.LastSnapshotPercent
			t.LastSnapshotPercent = &v
		}
		if u.LastStudiedAt != nil {
			v := *u.LastStudiedAt
			t.LastStudiedAt = &v
		}
		t.ScheduleHistory = append(t.ScheduleHistory, u.History)
	}
	return nil
}

func (m *memStore) UpdatePriorityScores(_ context.Context, userID uuid.UUID, updates []domain.PriorityUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range updates {
		if t := m.find(userID, u.TopicID); t != nil {
			t.PriorityScore = u.Score
		}
	}
	return nil
}

func (m *memStore) SnapshotProgress(_ context.Context, userID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.topics {
		if t.UserID == userID {
			v := t.CompletionPercent
			t.LastSnapshotPercent = &v
			n++
		}
	}
	return n, nil
}

func (m *memStore) find(userID, topicID uuid.UUID) *domain.Topic {
	for _, t := range m.topics {
		if t.ID == topicID && t.UserID == userID {
			return t
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// txManager
// ---------------------------------------------------------------------------

type memSnapshot struct {
	users  map[uuid.UUID]domain.User
	topics []domain.Topic
}

func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	snap := memSnapshot{users: make(map[uuid.UUID]domain.User, len(m.users))}
	for id, u := range m.users {
		snap.users[id] = *u
	}
	for _, t := range m.topics {
		snap.topics = append(snap.topics, copyTopic(t))
	}
	m.mu.Unlock()

	err := fn(ctx)
	if err == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for id, u := range snap.users {
		*m.users[id] = u
	}
	for i := range snap.topics {
		*m.topics[i] = snap.topics[i]
	}
	return err
}

var errStorage = errors.New("storage unavailable")
