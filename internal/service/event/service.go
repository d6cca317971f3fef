package event

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/heartmarshall/eventorias-backend/internal/config"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/feed"
)

// ErrUploadFailed is returned by CreateEvent when an image or attachment
// upload fails. The event is not written.
var ErrUploadFailed = domain.ErrUploadFailed

//go:generate moq -out event_store_mock_test.go -pkg event . eventStore
//go:generate moq -out blob_store_mock_test.go -pkg event . blobStore
//go:generate moq -out geocoder_mock_test.go -pkg event . geocoder

type eventStore interface {
	NewID() string
	Set(ctx context.Context, e domain.Event) error
	Subscribe(ctx context.Context) (*feed.Feed, error)
}

type blobStore interface {
	Upload(ctx context.Context, key string, f domain.File) (string, error)
}

type geocoder interface {
	Geocode(ctx context.Context, address string) *domain.Coordinates
}

// Service mirrors the remote event collection and creates new events.
//
// The current snapshot has a single writer (Run) and any number of readers.
type Service struct {
	log      *slog.Logger
	store    eventStore
	blobs    blobStore
	geocoder geocoder

	watchBuffer  int
	writeTimeout time.Duration
	now          func() time.Time

	current atomic.Pointer[[]domain.Event]

	mu       sync.Mutex
	watchers map[*watcher]struct{}
}

// NewService creates a new event service instance.
func NewService(
	logger *slog.Logger,
	store eventStore,
	blobs blobStore,
	geo geocoder,
	cfg config.EventsConfig,
) *Service {
	if cfg.WatchBuffer < 1 {
		cfg.WatchBuffer = 1
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 30 * time.Second
	}
	return &Service{
		log:          logger.With("service", "event"),
		store:        store,
		blobs:        blobs,
		geocoder:     geo,
		watchBuffer:  cfg.WatchBuffer,
		writeTimeout: cfg.WriteTimeout,
		now:          time.Now,
		watchers:     make(map[*watcher]struct{}),
	}
}
