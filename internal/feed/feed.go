// Package feed implements a cancellable stream of full event snapshots.
//
// Store drivers start a Feed with a producer function; the producer emits
// every snapshot it observes, in order, until its context is cancelled.
package feed

import (
	"context"
	"errors"
	"sync"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// EmitFunc delivers one snapshot to the consumer. It blocks until the
// snapshot is received or the feed is closed, in which case it returns
// the context error.
type EmitFunc func([]domain.Event) error

// ProducerFunc runs until ctx is done or it fails.
type ProducerFunc func(ctx context.Context, emit EmitFunc) error

// Feed is a subscription handle. The snapshot channel is closed once the
// producer returns.
type Feed struct {
	ch     chan []domain.Event
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// Start launches run on its own goroutine.
func Start(parent context.Context, run ProducerFunc) *Feed {
	ctx, cancel := context.WithCancel(parent)
	f := &Feed{
		ch:     make(chan []domain.Event),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	emit := func(snapshot []domain.Event) error {
		select {
		case f.ch <- snapshot:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	go func() {
		defer close(f.done)
		defer close(f.ch)
		err := run(ctx, emit)
		if err != nil && !errors.Is(err, context.Canceled) {
			f.mu.Lock()
			f.err = err
			f.mu.Unlock()
		}
	}()

	return f
}

// Snapshots yields every full snapshot in emission order.
func (f *Feed) Snapshots() <-chan []domain.Event {
	return f.ch
}

// Close stops the producer and waits for it to exit.
func (f *Feed) Close() error {
	f.cancel()
	<-f.done
	return f.Err()
}

// Err reports why the producer stopped. Cancellation is not an error.
func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
