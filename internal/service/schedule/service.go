package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/internal/service/schedule/planner"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	LockForUpdate(ctx context.Context, userID uuid.UUID) error
	ClaimScheduleCheck(ctx context.Context, userID uuid.UUID, now, dayStart time.Time) (bool, error)
	AddCredits(ctx context.Context, userID uuid.UUID, delta int) (int, error)
}

type topicRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.TopicFilter) ([]*domain.Topic, error)
	ApplyScheduleUpdates(ctx context.Context, userID uuid.UUID, updates []domain.ScheduleUpdate) error
	UpdatePriorityScores(ctx context.Context, userID uuid.UUID, updates []domain.PriorityUpdate) error
	SnapshotProgress(ctx context.Context, userID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the planner windows.
type Config struct {
	HorizonDays    int
	FullWindowDays int
}

// DefaultConfig returns a 14-day build horizon and a 30-day full schedule window.
func DefaultConfig() Config {
	return Config{HorizonDays: 14, FullWindowDays: 30}
}

// Service builds, reconciles and serves study schedules.
type Service struct {
	users  userRepo
	topics topicRepo
	tx     txManager
	log    *slog.Logger
	cfg    Config
	clock  func() time.Time
	flight singleflight.Group
}

// NewService creates a new schedule service.
func NewService(
	log *slog.Logger,
	users userRepo,
	topics topicRepo,
	tx txManager,
	cfg Config,
) *Service {
	def := DefaultConfig()
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = def.HorizonDays
	}
	if cfg.FullWindowDays <= 0 {
		cfg.FullWindowDays = def.FullWindowDays
	}
	return &Service{
		users:  users,
		topics: topics,
		tx:     tx,
		log:    log.With("service", "schedule"),
		cfg:    cfg,
		clock:  time.Now,
	}
}

// pass is the user state loaded once and threaded through one scheduling pass.
type pass struct {
	user     *domain.User
	loc      *time.Location
	now      time.Time
	today    time.Time
	tomorrow time.Time
}

// loadPass loads the user. A missing user yields a nil pass and no error.
func (s *Service) loadPass(ctx context.Context, userID uuid.UUID) (*pass, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	now := s.clock()
	loc := planner.ParseTimezone(user.Timezone)
	today := planner.DayStart(now, loc)
	return &pass{
		user:     user,
		loc:      loc,
		now:      now,
		today:    today,
		tomorrow: planner.AddDays(today, 1, loc),
	}, nil
}

// CalculateNextReviewDate returns when a topic should next be reviewed.
func (s *Service) CalculateNextReviewDate(difficulty domain.Difficulty, lastReviewed *time.Time, repetitionLevel int) time.Time {
	return planner.NextReviewDate(difficulty, lastReviewed, repetitionLevel, s.clock())
}
