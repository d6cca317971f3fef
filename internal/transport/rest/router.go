package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/eventorias-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter. Blobs is
// optional and only set for the in-memory blob driver.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Events  *EventHandler
	Profile *ProfileHandler
	Blobs   *BlobHandler
}

// RouterOptions carries the cross-cutting middleware. Loaders wraps the
// event list and detail.
type RouterOptions struct {
	Global  []middleware.Middleware
	Loaders middleware.Middleware
}

// NewRouter registers every route on a ServeMux and wraps it in the global
// middleware chain.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	loaders := middleware.Chain(opts.Loaders)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /auth/signup", h.Auth.SignUp)
	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/google", h.Auth.Google)

	mux.Handle("GET /events", loaders(http.HandlerFunc(h.Events.List)))
	mux.Handle("GET /events/{id}", loaders(http.HandlerFunc(h.Events.Get)))
	mux.HandleFunc("POST /events", h.Events.Create)
	mux.HandleFunc("GET /events/stream", h.Events.Stream)
	mux.HandleFunc("GET /events.ics", h.Events.Calendar)

	mux.HandleFunc("GET /profile", h.Profile.Get)
	mux.HandleFunc("PUT /profile", h.Profile.Update)
	mux.HandleFunc("PUT /profile/notifications", h.Profile.Notifications)
	mux.HandleFunc("PUT /profile/push-token", h.Profile.PushToken)

	if h.Blobs != nil {
		mux.HandleFunc("GET /blobs/{key...}", h.Blobs.Get)
	}

	return middleware.Chain(opts.Global...)(mux)
}
