package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/eventorias-backend/internal/adapter/blob/s3"
	"github.com/heartmarshall/eventorias-backend/internal/adapter/memory"
	"github.com/heartmarshall/eventorias-backend/internal/adapter/mongo"
	"github.com/heartmarshall/eventorias-backend/internal/adapter/postgres"
	pgevent "github.com/heartmarshall/eventorias-backend/internal/adapter/postgres/event"
	pguser "github.com/heartmarshall/eventorias-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/eventorias-backend/internal/config"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/feed"
	"github.com/heartmarshall/eventorias-backend/internal/transport/rest"
)

const closeTimeout = 5 * time.Second

type eventStore interface {
	NewID() string
	Set(ctx context.Context, e domain.Event) error
	List(ctx context.Context) ([]domain.Event, error)
	Subscribe(ctx context.Context) (*feed.Feed, error)
}

type userStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name string, photoURL *string) (*domain.User, error)
	LinkGoogle(ctx context.Context, id uuid.UUID, googleID string) (*domain.User, error)
	UpdateNotifications(ctx context.Context, id uuid.UUID, enabled bool, token *string) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type blobStore interface {
	Upload(ctx context.Context, key string, f domain.File) (string, error)
}

type stores struct {
	events eventStore
	users  userStore
	tx     txManager
	health []rest.Component
	close  func()
}

func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		events := memory.NewEventStore()
		return &stores{
			events: events,
			users:  memory.NewUserRepo(),
			tx:     &memory.TxManager{},
			health: []rest.Component{{Name: "store", Pinger: events}},
			close:  func() {},
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to postgres: %w", err)
		}
		return &stores{
			events: pgevent.New(pool, logger),
			users:  pguser.New(pool),
			tx:     postgres.NewTxManager(pool),
			health: []rest.Component{{Name: "store", Pinger: pool}},
			close:  pool.Close,
		}, nil

	case config.DriverMongo:
		client, err := mongo.Connect(ctx, cfg.Mongo, logger)
		if err != nil {
			return nil, fmt.Errorf("connect to mongo: %w", err)
		}
		closeClient := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
			defer cancel()
			if err := client.Close(closeCtx); err != nil {
				logger.Warn("close mongo client", slog.String("error", err.Error()))
			}
		}
		if err := client.EnsureIndexes(ctx); err != nil {
			closeClient()
			return nil, fmt.Errorf("ensure mongo indexes: %w", err)
		}
		return &stores{
			events: mongo.NewEventStore(client),
			users:  mongo.NewUserRepo(client),
			tx:     mongo.NewTxManager(client),
			health: []rest.Component{{Name: "store", Pinger: client}},
			close:  closeClient,
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

type blobs struct {
	store   blobStore
	handler *rest.BlobHandler
	health  []rest.Component
}

func openBlobs(cfg *config.Config, logger *slog.Logger) (*blobs, error) {
	switch cfg.Blob.Driver {
	case config.DriverMemory:
		store := memory.NewBlobStore(memoryBlobBaseURL(cfg))
		return &blobs{store: store, handler: rest.NewBlobHandler(store)}, nil

	case config.DriverS3:
		store, err := s3.New(cfg.Blob, logger)
		if err != nil {
			return nil, fmt.Errorf("create s3 blob store: %w", err)
		}
		return &blobs{store: store, health: []rest.Component{{Name: "blob", Pinger: store}}}, nil
	}
	return nil, fmt.Errorf("unknown blob driver %q", cfg.Blob.Driver)
}

// memoryBlobBaseURL is where the in-process blob handler is reachable.
func memoryBlobBaseURL(cfg *config.Config) string {
	if cfg.Blob.PublicBaseURL != "" {
		return strings.TrimRight(cfg.Blob.PublicBaseURL, "/")
	}
	host := cfg.Server.Host
	if host == "" || host == "0.0.0.0" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d/blobs", host, cfg.Server.Port)
}
