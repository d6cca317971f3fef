package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/eventorias-backend/internal/auth"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// SignIn authenticates with email and password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.SignIn get user: %w", err)
	}

	// Google-only accounts have no password.
	if user.PasswordHash == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in", slog.String("user_id", user.ID.String()))
	return result, nil
}

// SignInWithGoogle verifies a Google ID token and signs the owner in. The
// account is found by Google id, else linked by email, else created.
func (s *Service) SignInWithGoogle(ctx context.Context, input GoogleSignInInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.google == nil {
		return nil, fmt.Errorf("auth.SignInWithGoogle: google sign-in disabled: %w", domain.ErrUnauthorized)
	}

	identity, err := s.google.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, fmt.Errorf("auth.SignInWithGoogle verify: %w", err)
	}

	user, err := s.users.GetByGoogleID(ctx, identity.Subject)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		user, err = s.linkOrCreateGoogleUser(ctx, identity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("auth.SignInWithGoogle get user: %w", err)
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.SignInWithGoogle: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in via google", slog.String("user_id", user.ID.String()))
	return result, nil
}

func (s *Service) linkOrCreateGoogleUser(ctx context.Context, identity *auth.GoogleIdentity) (*domain.User, error) {
	email := normalizeEmail(identity.Email)

	var user *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.users.GetByEmail(txCtx, email)
		switch {
		case err == nil:
			linked, err := s.users.LinkGoogle(txCtx, existing.ID, identity.Subject)
			if err != nil {
				return fmt.Errorf("link google: %w", err)
			}
			if linked.Name == "" && identity.Name != nil {
				photo := linked.PhotoURL
				if photo == nil {
					photo = identity.PictureURL
				}
				if linked, err = s.users.UpdateProfile(txCtx, linked.ID, *identity.Name, photo); err != nil {
					return fmt.Errorf("update profile: %w", err)
				}
			}
			user = linked
			s.log.InfoContext(txCtx, "google linked to existing account", slog.String("user_id", linked.ID.String()))
			return nil

		case errors.Is(err, domain.ErrNotFound):
			now := time.Now().UTC()
			created, err := s.users.Create(txCtx, &domain.User{
				ID:        uuid.New(),
				Email:     email,
				Name:      derefOrEmpty(identity.Name),
				PhotoURL:  identity.PictureURL,
				GoogleID:  &identity.Subject,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			user = created
			return nil

		default:
			return fmt.Errorf("get user by email: %w", err)
		}
	})
	if err == nil {
		return user, nil
	}

	// A concurrent sign-in with the same account won the race.
	if errors.Is(err, domain.ErrAlreadyExists) {
		if user, retryErr := s.users.GetByGoogleID(ctx, identity.Subject); retryErr == nil {
			return user, nil
		}
		return nil, domain.ErrAlreadyExists
	}
	return nil, fmt.Errorf("auth.SignInWithGoogle register: %w", err)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
