package event

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/metrics"
	"github.com/heartmarshall/eventorias-backend/pkg/ctxutil"
)

// CreateEvent validates the draft, uploads the optional image and
// attachment, geocodes the address and hands the assembled event to the
// store. It returns as soon as the store has assigned an id; the write
// itself completes in the background and is reported on
// CreateResult.Persisted.
//
// Uploads and the geocode run concurrently. A failed upload aborts the
// creation with ErrUploadFailed; a failed geocode leaves the location empty.
func (s *Service) CreateEvent(ctx context.Context, input CreateEventInput) (*CreateResult, error) {
	if err := input.Validate(); err != nil {
		metrics.EventCreateFailures.WithLabelValues("validation").Inc()
		return nil, err
	}
	ev := input.draft()

	geoCtx, cancelGeo := context.WithCancel(ctx)
	defer cancelGeo()
	located := make(chan *domain.Coordinates, 1)
	address := ev.Address
	go func() {
		located <- s.geocoder.Geocode(geoCtx, address)
	}()

	g, gctx := errgroup.WithContext(ctx)
	if input.Image != nil {
		g.Go(func() error {
			url, err := s.upload(gctx, "image", domain.NewImageKey(), *input.Image)
			if err != nil {
				return err
			}
			ev.ImageURL = &url
			return nil
		})
	}
	if input.Attachment != nil {
		g.Go(func() error {
			url, err := s.upload(gctx, "attachment", domain.NewAttachmentKey(), *input.Attachment)
			if err != nil {
				return err
			}
			ev.AttachmentURL = &url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.EventCreateFailures.WithLabelValues("upload").Inc()
		return nil, fmt.Errorf("event.CreateEvent: %w", err)
	}

	select {
	case ev.Location = <-located:
	case <-ctx.Done():
		metrics.EventCreateFailures.WithLabelValues("cancelled").Inc()
		return nil, fmt.Errorf("event.CreateEvent: %w", ctx.Err())
	}

	ev.CreatorUID = ctxutil.CreatorUID(ctx)
	ev.CreatedAt = s.now().UTC()
	ev.ID = s.store.NewID()

	persisted := s.persist(ctx, ev)
	metrics.EventsCreated.Inc()

	s.log.InfoContext(ctx, "event created",
		slog.String("event_id", ev.ID),
		slog.String("creator_uid", ev.CreatorUID),
		slog.Bool("geocoded", ev.HasLocation()),
		slog.Bool("image", ev.ImageURL != nil),
		slog.Bool("attachment", ev.AttachmentURL != nil),
	)

	return &CreateResult{Event: ev.Clone(), Persisted: persisted}, nil
}

// CreateEventAsync runs CreateEvent on its own goroutine and reports the
// outcome to done exactly once.
func (s *Service) CreateEventAsync(ctx context.Context, input CreateEventInput, done func(*CreateResult, error)) {
	go func() {
		done(s.CreateEvent(ctx, input))
	}()
}

func (s *Service) upload(ctx context.Context, kind, key string, f domain.File) (string, error) {
	url, err := s.blobs.Upload(ctx, key, f)
	if err != nil {
		metrics.BlobUploads.WithLabelValues(kind, metrics.ResultError).Inc()
		s.log.WarnContext(ctx, "upload failed",
			slog.String("kind", kind),
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("%w: %s: %w", ErrUploadFailed, kind, err)
	}
	metrics.BlobUploads.WithLabelValues(kind, metrics.ResultOK).Inc()
	return url, nil
}

// persist writes ev on a goroutine detached from the request so the write
// outlives it. Failures are logged and sent on the returned channel.
func (s *Service) persist(ctx context.Context, ev domain.Event) <-chan error {
	out := make(chan error, 1)
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.writeTimeout)

	go func() {
		defer cancel()
		defer close(out)

		err := s.store.Set(wctx, ev)
		if err != nil {
			metrics.StoreWriteFailures.Inc()
			s.log.ErrorContext(wctx, "event write failed",
				slog.String("event_id", ev.ID),
				slog.String("error", err.Error()),
			)
			err = fmt.Errorf("event.persist %s: %w", ev.ID, err)
		}
		out <- err
	}()

	return out
}
