package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/thoas/go-funk"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/pkg/ctxutil"
)

// Profile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Profile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Profile: %w", err)
	}

	return user, nil
}

// UpdateProfile replaces the authenticated user's name and photo URL.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.UpdateProfile(ctx, userID, strings.TrimSpace(input.Name), input.PhotoURL)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))

	return user, nil
}

// PhotoURLs maps each creator id to its profile photo URL. Ids that are not
// user ids, unknown users and users without a photo are left out.
func (s *Service) PhotoURLs(ctx context.Context, creatorIDs []string) (map[string]string, error) {
	var ids []uuid.UUID
	for _, raw := range funk.UniqString(creatorIDs) {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}

	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("user.PhotoURLs: %w", err)
	}
	for _, u := range users {
		if u.PhotoURL != nil && *u.PhotoURL != "" {
			out[u.ID.String()] = *u.PhotoURL
		}
	}
	return out, nil
}
