package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/pkg/ctxutil"
)

// EnableNotifications opts the authenticated user in to push messages sent
// to token.
func (s *Service) EnableNotifications(ctx context.Context, token string) (*domain.User, error) {
	if err := validatePushToken(token); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.UpdateNotifications(ctx, userID, true, &token)
	if err != nil {
		return nil, fmt.Errorf("user.EnableNotifications: %w", err)
	}

	s.log.InfoContext(ctx, "notifications enabled", slog.String("user_id", userID.String()))
	return user, nil
}

// DisableNotifications opts the authenticated user out and forgets the push token.
func (s *Service) DisableNotifications(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.UpdateNotifications(ctx, userID, false, nil)
	if err != nil {
		return nil, fmt.Errorf("user.DisableNotifications: %w", err)
	}

	s.log.InfoContext(ctx, "notifications disabled", slog.String("user_id", userID.String()))
	return user, nil
}

// UpdatePushToken replaces the device token after the platform rotated it.
// Returns ErrConflict while notifications are disabled.
func (s *Service) UpdatePushToken(ctx context.Context, token string) (*domain.User, error) {
	if err := validatePushToken(token); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdatePushToken: %w", err)
	}
	if !user.NotificationsEnabled {
		return nil, fmt.Errorf("user.UpdatePushToken: notifications disabled: %w", domain.ErrConflict)
	}
	if user.PushToken != nil && *user.PushToken == token {
		return user, nil
	}

	user, err = s.users.UpdateNotifications(ctx, userID, true, &token)
	if err != nil {
		return nil, fmt.Errorf("user.UpdatePushToken: %w", err)
	}

	s.log.DebugContext(ctx, "push token rotated", slog.String("user_id", userID.String()))
	return user, nil
}
