package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/service/user"
)

type userService interface {
	Profile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	EnableNotifications(ctx context.Context, token string) (*domain.User, error)
	DisableNotifications(ctx context.Context) (*domain.User, error)
	UpdatePushToken(ctx context.Context, token string) (*domain.User, error)
}

// ProfileHandler serves the authenticated user's profile and push settings.
type ProfileHandler struct {
	svc userService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc userService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type updateProfileRequest struct {
	Name     string  `json:"name"`
	PhotoURL *string `json:"photoUrl"`
}

type notificationsRequest struct {
	Enabled bool   `json:"enabled"`
	Token   string `json:"token"`
}

type pushTokenRequest struct {
	Token string `json:"token"`
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Profile(r.Context())
	h.respond(w, r, u, err)
}

// Update handles PUT /profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	h.respond(w, r, u, err)
}

// Notifications handles PUT /profile/notifications.
func (h *ProfileHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	var req notificationsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var (
		u   *domain.User
		err error
	)
	if req.Enabled {
		u, err = h.svc.EnableNotifications(r.Context(), req.Token)
	} else {
		u, err = h.svc.DisableNotifications(r.Context())
	}
	h.respond(w, r, u, err)
}

// PushToken handles PUT /profile/push-token.
func (h *ProfileHandler) PushToken(w http.ResponseWriter, r *http.Request) {
	var req pushTokenRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	u, err := h.svc.UpdatePushToken(r.Context(), req.Token)
	h.respond(w, r, u, err)
}

func (h *ProfileHandler) respond(w http.ResponseWriter, r *http.Request, u *domain.User, err error) {
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}
