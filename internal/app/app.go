package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/eventorias-backend/internal/adapter/provider/google"
	"github.com/heartmarshall/eventorias-backend/internal/adapter/provider/nominatim"
	"github.com/heartmarshall/eventorias-backend/internal/adapter/provider/staticmap"
	"github.com/heartmarshall/eventorias-backend/internal/auth"
	"github.com/heartmarshall/eventorias-backend/internal/config"
	authsvc "github.com/heartmarshall/eventorias-backend/internal/service/auth"
	"github.com/heartmarshall/eventorias-backend/internal/service/event"
	"github.com/heartmarshall/eventorias-backend/internal/service/user"
	"github.com/heartmarshall/eventorias-backend/internal/transport/dataloader"
	"github.com/heartmarshall/eventorias-backend/internal/transport/middleware"
	"github.com/heartmarshall/eventorias-backend/internal/transport/rest"
)

// Run is the server entry point: it loads configuration, wires every
// component and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("store", cfg.Store.Driver),
		slog.String("blob", cfg.Blob.Driver),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// App is the wired server.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	events  *event.Service
	handler http.Handler
	closers []func()
}

type googleVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.GoogleIdentity, error)
}

// New opens the configured store and blob backends and builds the services
// and HTTP handler on top of them.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{cfg: cfg, log: logger}

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, st.close)

	bl, err := openBlobs(cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	var verifier googleVerifier
	if cfg.Auth.GoogleEnabled() {
		verifier = google.NewVerifier(cfg.Auth.GoogleClientID, logger)
	} else {
		logger.Info("google sign-in disabled")
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, st.users, bl.store, st.tx, verifier, jwt, cfg.Auth)
	userService := user.NewService(logger, st.users)
	a.events = event.NewService(logger, st.events, bl.store, nominatim.NewProvider(cfg.Geocoder, logger), cfg.Events)

	health := append(st.health, bl.health...)
	a.handler = rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(BuildVersion(), health...),
		Auth:    rest.NewAuthHandler(authService, logger, cfg.Server.MaxUploadBytes),
		Events:  rest.NewEventHandler(a.events, staticmap.NewBuilder(cfg.Maps), logger, cfg.Server.MaxUploadBytes),
		Profile: rest.NewProfileHandler(userService, logger),
		Blobs:   bl.handler,
	}, rest.RouterOptions{
		Global: []middleware.Middleware{
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(authService),
		},
		Loaders: dataloader.Middleware(userService),
	})

	return a, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Serve runs the event mirror and the HTTP server until ctx is cancelled,
// then shuts the server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.events.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("event sync: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Close releases the store connections.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
