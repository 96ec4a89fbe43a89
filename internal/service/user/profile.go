package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/studyplan-backend/internal/domain"
	"github.com/heartmarshall/studyplan-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile, including credits
// and the time of the last schedule check.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile sets the authenticated user's display name. Surrounding
// whitespace is dropped and inner runs collapse to one space.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.UpdateName(ctx, userID, domain.CleanName(input.Name))
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))
	return user, nil
}

// UpdateEmailSettings turns reminder emails on or off for the authenticated user.
func (s *Service) UpdateEmailSettings(ctx context.Context, input UpdateEmailSettingsInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.SetEmailNotifications(ctx, userID, *input.Enabled)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateEmailSettings: %w", err)
	}

	s.log.InfoContext(ctx, "email settings updated",
		slog.String("user_id", userID.String()),
		slog.Bool("enabled", *input.Enabled),
	)
	return user, nil
}
