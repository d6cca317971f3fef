package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/feed"
)

// EventStore keeps events in insertion order and pushes a full snapshot to
// every subscriber after each change.
type EventStore struct {
	mu       sync.Mutex
	events   []domain.Event
	subs     map[*subscriber]struct{}
	writeErr error
}

// NewEventStore creates an empty store.
func NewEventStore() *EventStore {
	return &EventStore{subs: make(map[*subscriber]struct{})}
}

// NewID allocates an id for a new event.
func (s *EventStore) NewID() string {
	return uuid.NewString()
}

// Set inserts or replaces the event with e.ID.
func (s *EventStore) Set(ctx context.Context, e domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.writeErr != nil {
		return s.writeErr
	}

	replaced := false
	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = e.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		s.events = append(s.events, e.Clone())
	}

	s.broadcastLocked()
	return nil
}

// FailWrites makes every following Set return err. Pass nil to recover.
func (s *EventStore) FailWrites(err error) {
	s.mu.Lock()
	s.writeErr = err
	s.mu.Unlock()
}

// Deliver replaces the stored collection with snapshot and pushes it to
// subscribers, as if the backend had changed underneath.
func (s *EventStore) Deliver(snapshot []domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = domain.CloneEvents(snapshot)
	s.broadcastLocked()
}

// List returns a copy of the stored events.
func (s *EventStore) List(_ context.Context) ([]domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneEvents(s.events), nil
}

// Subscribe emits the current collection and then one snapshot per change.
func (s *EventStore) Subscribe(ctx context.Context) (*feed.Feed, error) {
	sub := newSubscriber()

	s.mu.Lock()
	sub.push(domain.CloneEvents(s.events))
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	return feed.Start(ctx, func(ctx context.Context, emit feed.EmitFunc) error {
		defer func() {
			s.mu.Lock()
			delete(s.subs, sub)
			s.mu.Unlock()
		}()
		return sub.run(ctx, emit)
	}), nil
}

// Ping always succeeds.
func (s *EventStore) Ping(context.Context) error { return nil }

func (s *EventStore) broadcastLocked() {
	for sub := range s.subs {
		sub.push(domain.CloneEvents(s.events))
	}
}

// subscriber queues snapshots without blocking the writer.
type subscriber struct {
	mu     sync.Mutex
	queue  [][]domain.Event
	signal chan struct{}
}

func newSubscriber() *subscriber {
	return &subscriber{signal: make(chan struct{}, 1)}
}

func (sub *subscriber) push(snapshot []domain.Event) {
	sub.mu.Lock()
	sub.queue = append(sub.queue, snapshot)
	sub.mu.Unlock()

	select {
	case sub.signal <- struct{}{}:
	default:
	}
}

func (sub *subscriber) run(ctx context.Context, emit feed.EmitFunc) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sub.signal:
		}

		sub.mu.Lock()
		pending := sub.queue
		sub.queue = nil
		sub.mu.Unlock()

		for _, snapshot := range pending {
			if err := emit(snapshot); err != nil {
				return err
			}
		}
	}
}
