package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// GetPreferences returns the authenticated user's study preferences.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetPreferences(ctx context.Context) (*domain.Preferences, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetPreferences: %w", err)
	}

	prefs := user.Preferences
	return &prefs, nil
}

// UpdatePreferences applies a partial update to the authenticated user's
// study preferences and timezone.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) UpdatePreferences(ctx context.Context, input UpdatePreferencesInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		timezone, prefs := applyPreferenceChanges(current, input)

		updated, err = s.users.UpdatePreferences(txCtx, userID, timezone, prefs)
		if err != nil {
			return fmt.Errorf("update preferences: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdatePreferences: %w", err)
	}

	if input.affectsPriority() {
		if err := s.priorities.UpdatePriorityScores(ctx, userID); err != nil {
			s.log.WarnContext(ctx, "refresh priorities failed",
				slog.String("user_id", userID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	s.log.InfoContext(ctx, "preferences updated",
		slog.String("user_id", userID.String()))

	return updated, nil
}

// applyPreferenceChanges merges the input changes into the current values.
func applyPreferenceChanges(current *domain.User, input UpdatePreferencesInput) (string, domain.Preferences) {
	timezone := current.Timezone
	prefs := current.Preferences

	if input.DailyStudyGoal != nil {
		prefs.DailyStudyGoal = *input.DailyStudyGoal
	}
	if input.ClearTopicsPerDay {
		prefs.TopicsPerDay = nil
	}
	if input.TopicsPerDay != nil {
		n := *input.TopicsPerDay
		prefs.TopicsPerDay = &n
	}
	if input.TopicPriorityWeight != nil {
		prefs.TopicPriorityWeight = *input.TopicPriorityWeight
	}
	if input.ReviewFrequency != nil {
		prefs.ReviewFrequency = *input.ReviewFrequency
	}
	if input.ReminderTime != nil {
		prefs.ReminderTime = *input.ReminderTime
	}
	if input.Timezone != nil {
		timezone = *input.Timezone
	}

	return timezone, prefs
}
