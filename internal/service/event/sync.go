package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/metrics"
)

// errFeedClosed is returned by Run when the store ends the subscription
// without reporting a cause.
var errFeedClosed = errors.New("event feed closed")

// watcher is one Watch subscription. done closes together with ch when the
// watcher is removed, which releases its context goroutine.
type watcher struct {
	ch   chan []domain.Event
	done chan struct{}
}

// drop removes w and closes its channels. The caller holds s.mu.
func (s *Service) drop(w *watcher) {
	if _, ok := s.watchers[w]; !ok {
		return
	}
	delete(s.watchers, w)
	close(w.ch)
	close(w.done)
}

// Run subscribes to the store and mirrors every snapshot until ctx is done
// (returns nil) or the subscription fails (returns the cause). Watchers are
// closed when Run returns.
func (s *Service) Run(ctx context.Context) error {
	f, err := s.store.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("event.Run subscribe: %w", err)
	}
	defer f.Close()
	defer s.closeWatchers()

	s.log.InfoContext(ctx, "event subscription started")

	for {
		select {
		case <-ctx.Done():
			s.log.InfoContext(ctx, "event subscription stopped")
			return nil
		case snapshot, ok := <-f.Snapshots():
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				if err := f.Err(); err != nil {
					return fmt.Errorf("event.Run: %w", err)
				}
				return errFeedClosed
			}
			s.publish(ctx, snapshot)
		}
	}
}

// publish replaces the current snapshot and fans it out. Slow watchers are
// dropped so the subscription never stalls.
func (s *Service) publish(ctx context.Context, snapshot []domain.Event) {
	if snapshot == nil {
		snapshot = []domain.Event{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current.Store(&snapshot)
	metrics.SnapshotsPublished.Inc()

	for w := range s.watchers {
		select {
		case w.ch <- snapshot:
		default:
			s.drop(w)
			metrics.WatchersEvicted.Inc()
			s.log.WarnContext(ctx, "snapshot watcher evicted", slog.Int("buffer", cap(w.ch)))
		}
	}

	s.log.DebugContext(ctx, "snapshot published", slog.Int("events", len(snapshot)))
}

// Current returns a copy of the latest snapshot, empty before the first one.
func (s *Service) Current() []domain.Event {
	p := s.current.Load()
	if p == nil {
		return []domain.Event{}
	}
	return domain.CloneEvents(*p)
}

// Find looks up an event by id in the current snapshot.
func (s *Service) Find(id string) (domain.Event, bool) {
	p := s.current.Load()
	if p == nil {
		return domain.Event{}, false
	}
	for _, e := range *p {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return domain.Event{}, false
}

// List returns the current snapshot sorted by date (newest first) and
// filtered by title.
func (s *Service) List(search string) []domain.Event {
	return domain.FilterAndSort(s.Current(), search)
}

// Watch streams snapshots. If a snapshot has already arrived it is sent
// first. The channel is closed when ctx ends, when Run stops, or when the
// reader falls more than the configured buffer behind. Received slices are
// shared and must not be modified.
func (s *Service) Watch(ctx context.Context) <-chan []domain.Event {
	w := &watcher{ch: make(chan []domain.Event, s.watchBuffer), done: make(chan struct{})}

	s.mu.Lock()
	if p := s.current.Load(); p != nil {
		w.ch <- *p
	}
	s.watchers[w] = struct{}{}
	s.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			s.unwatch(w)
		case <-w.done:
		}
	}()

	return w.ch
}

func (s *Service) unwatch(w *watcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drop(w)
}

func (s *Service) closeWatchers() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for w := range s.watchers {
		s.drop(w)
	}
}
