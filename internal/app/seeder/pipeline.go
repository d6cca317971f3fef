// Package seeder publishes demo events from a YAML fixtures file through the
// regular event creation path.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/service/event"
)

//go:generate moq -out event_creator_mock_test.go -pkg seeder . eventCreator eventLister

type eventCreator interface {
	CreateEvent(ctx context.Context, input event.CreateEventInput) (*event.CreateResult, error)
}

type eventLister interface {
	List(ctx context.Context) ([]domain.Event, error)
}

// Result is the outcome of a run.
type Result struct {
	Created  int
	Skipped  int
	Failed   int
	Duration time.Duration
}

// Pipeline seeds fixtures that are not yet in the store. An event counts as
// present when one with the same title and date exists.
type Pipeline struct {
	log     *slog.Logger
	creator eventCreator
	lister  eventLister
	cfg     Config

	mu     sync.Mutex
	result Result
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, creator eventCreator, lister eventLister, cfg Config) *Pipeline {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &Pipeline{log: log, creator: creator, lister: lister, cfg: cfg}
}

// Result returns the counts after Run completes.
func (p *Pipeline) Result() Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// HasErrors reports whether any fixture failed.
func (p *Pipeline) HasErrors() bool {
	return p.Result().Failed > 0
}

// Run seeds fixtures. Individual failures are logged and counted; only a
// failure to read the existing events aborts the run.
func (p *Pipeline) Run(ctx context.Context, fixtures []Fixture) error {
	start := time.Now()

	existing, err := p.lister.List(ctx)
	if err != nil {
		return fmt.Errorf("list existing events: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, ev := range existing {
		seen[fixtureKey(ev.Title, ev.Date)] = true
	}

	dir := filepath.Dir(p.cfg.FixturesPath)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)

	for _, f := range fixtures {
		date, _ := domain.NormalizeDate(f.Date)
		key := fixtureKey(f.Title, date)
		if seen[key] {
			p.count(func(r *Result) { r.Skipped++ })
			p.log.Debug("fixture already present", slog.String("title", f.Title))
			continue
		}
		seen[key] = true

		g.Go(func() error {
			if err := p.seed(gctx, dir, f); err != nil {
				p.count(func(r *Result) { r.Failed++ })
				p.log.Warn("fixture failed",
					slog.String("title", f.Title),
					slog.String("error", err.Error()),
				)
				return nil
			}
			p.count(func(r *Result) { r.Created++ })
			return nil
		})
	}
	_ = g.Wait()

	p.count(func(r *Result) { r.Duration = time.Since(start) })
	res := p.Result()
	p.log.Info("seeding completed",
		slog.Int("created", res.Created),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
		slog.Bool("dry_run", p.cfg.DryRun),
		slog.Duration("duration", res.Duration),
	)
	return nil
}

func (p *Pipeline) seed(ctx context.Context, dir string, f Fixture) error {
	in, closeFiles, err := f.input(dir)
	if err != nil {
		return err
	}
	defer closeFiles()

	if p.cfg.DryRun {
		return in.Validate()
	}

	res, err := p.creator.CreateEvent(ctx, in)
	if err != nil {
		return err
	}

	if p.cfg.WaitPersist <= 0 {
		return nil
	}
	select {
	case err := <-res.Persisted:
		if err != nil {
			return fmt.Errorf("persist %s: %w", res.Event.ID, err)
		}
		p.log.Info("event seeded", slog.String("event_id", res.Event.ID), slog.String("title", res.Event.Title))
		return nil
	case <-time.After(p.cfg.WaitPersist):
		return fmt.Errorf("persist %s: not confirmed after %s", res.Event.ID, p.cfg.WaitPersist)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pipeline) count(fn func(r *Result)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.result)
}

func fixtureKey(title, date string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "|" + date
}
