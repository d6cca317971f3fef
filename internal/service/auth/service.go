package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/eventorias-backend/internal/auth"
	"github.com/heartmarshall/eventorias-backend/internal/config"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

//go:generate moq -out user_repo_mock_test.go -pkg auth . userRepo
//go:generate moq -out blob_store_mock_test.go -pkg auth . blobStore
//go:generate moq -out tx_manager_mock_test.go -pkg auth . txManager
//go:generate moq -out google_verifier_mock_test.go -pkg auth . googleVerifier
//go:generate moq -out token_manager_mock_test.go -pkg auth . tokenManager

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name string, photoURL *string) (*domain.User, error)
	LinkGoogle(ctx context.Context, id uuid.UUID, googleID string) (*domain.User, error)
}

type blobStore interface {
	Upload(ctx context.Context, key string, f domain.File) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type googleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleIdentity, error)
}

type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements account creation and sign-in.
type Service struct {
	log    *slog.Logger
	users  userRepo
	blobs  blobStore
	tx     txManager
	google googleVerifier
	tokens tokenManager
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance. google may be nil when
// Google sign-in is not configured.
func NewService(
	logger *slog.Logger,
	users userRepo,
	blobs blobStore,
	tx txManager,
	google googleVerifier,
	tokens tokenManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		blobs:  blobs,
		tx:     tx,
		google: google,
		tokens: tokens,
		cfg:    cfg,
	}
}

// AuthResult is returned by every sign-in operation.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}

// ValidateToken returns the user the access token was issued to.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	id, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	return id, nil
}

func (s *Service) issue(user *domain.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: token, User: user}, nil
}
