package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	SignUp(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error)
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
	SignInWithGoogle(ctx context.Context, input auth.GoogleSignInInput) (*auth.AuthResult, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc            authService
	log            *slog.Logger
	maxUploadBytes int64
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger, maxUploadBytes int64) *AuthHandler {
	return &AuthHandler{
		svc:            svc,
		log:            logger.With("handler", "auth"),
		maxUploadBytes: maxUploadBytes,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleRequest struct {
	IDToken string `json:"idToken"`
}

type authResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	Name                 string    `json:"name"`
	PhotoURL             *string   `json:"photoUrl,omitempty"`
	NotificationsEnabled bool      `json:"notificationsEnabled"`
	PushToken            *string   `json:"pushToken,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// SignUp handles POST /auth/signup. The account is created without a profile.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SignUp(r.Context(), auth.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Register handles POST /auth/register (multipart: name, email, password, photo).
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r, h.maxUploadBytes) {
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	photo, closePhoto, err := formFile(r, "photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid photo")
		return
	}
	defer closePhoto()

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		Photo:    photo,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SignIn(r.Context(), auth.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Google handles POST /auth/google with an ID token obtained on the client.
func (h *AuthHandler) Google(w http.ResponseWriter, r *http.Request) {
	var req googleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SignInWithGoogle(r.Context(), auth.GoogleSignInInput{IDToken: req.IDToken})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken: result.AccessToken,
		User:        toUserResponse(result.User),
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                   u.ID.String(),
		Email:                u.Email,
		Name:                 u.Name,
		PhotoURL:             u.PhotoURL,
		NotificationsEnabled: u.NotificationsEnabled,
		PushToken:            u.PushToken,
		CreatedAt:            u.CreatedAt,
	}
}
