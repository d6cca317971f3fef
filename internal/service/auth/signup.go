package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// SignUp creates an email/password account with no profile.
// Returns ErrAlreadyExists if the email is taken.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.createAccount(ctx, input.Email, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", user.ID.String()))
	return result, nil
}

// Register creates an account and then its profile: the optional photo is
// uploaded and name, email and photo URL are saved. A profile failure is
// returned as an error; the account itself is kept.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.createAccount(ctx, input.Email, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	var photoURL *string
	if input.Photo != nil {
		url, err := s.blobs.Upload(ctx, domain.NewUserPhotoKey(), *input.Photo)
		if err != nil {
			s.log.WarnContext(ctx, "profile photo upload failed",
				slog.String("user_id", user.ID.String()),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("auth.Register photo: %w: %w", domain.ErrUploadFailed, err)
		}
		photoURL = &url
	}

	user, err = s.users.UpdateProfile(ctx, user.ID, input.Name, photoURL)
	if err != nil {
		return nil, fmt.Errorf("auth.Register profile: %w", err)
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.Bool("photo", photoURL != nil))
	return result, nil
}

func (s *Service) createAccount(ctx context.Context, email, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	hashStr := string(hash)

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: &hashStr,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.ErrAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
