package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePreferences(ctx context.Context, id uuid.UUID, timezone string, prefs domain.Preferences) (*domain.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.User, error)
	SetEmailNotifications(ctx context.Context, id uuid.UUID, enabled bool) (*domain.User, error)
}

// priorityRefresher recomputes topic priority scores after preferences change.
type priorityRefresher interface {
	UpdatePriorityScores(ctx context.Context, userID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile and study preference operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	priorities priorityRefresher
	tx         txManager
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	priorities priorityRefresher,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		users:      users,
		priorities: priorities,
		tx:         tx,
	}
}
