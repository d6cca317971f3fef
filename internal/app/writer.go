package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/eventorias-backend/internal/adapter/provider/nominatim"
	"github.com/heartmarshall/eventorias-backend/internal/config"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/service/event"
)

// EventWriter is the event creation path for offline tools: the configured
// store, blob backend and geocoder behind an event service that is not
// mirroring the store.
type EventWriter struct {
	Service *event.Service
	store   eventStore
	close   func()
}

// OpenEventWriter connects to the configured backends.
func OpenEventWriter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*EventWriter, error) {
	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	bl, err := openBlobs(cfg, logger)
	if err != nil {
		st.close()
		return nil, err
	}
	if cfg.Store.Driver == config.DriverMemory || cfg.Blob.Driver == config.DriverMemory {
		logger.Warn("memory backends do not outlive this process",
			slog.String("store", cfg.Store.Driver),
			slog.String("blob", cfg.Blob.Driver),
		)
	}

	return &EventWriter{
		Service: event.NewService(logger, st.events, bl.store, nominatim.NewProvider(cfg.Geocoder, logger), cfg.Events),
		store:   st.events,
		close:   st.close,
	}, nil
}

// List returns the stored events.
func (w *EventWriter) List(ctx context.Context) ([]domain.Event, error) {
	return w.store.List(ctx)
}

// Close releases the store connection.
func (w *EventWriter) Close() { w.close() }
