// Package event implements the event collection using PostgreSQL.
//
// Live snapshots are driven by LISTEN/NOTIFY: a statement trigger on the
// events table notifies the events_changed channel and every notification
// causes the whole table to be re-read.
package event

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/eventorias-backend/internal/adapter/postgres"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/feed"
)

// NotifyChannel is the channel the events trigger notifies.
const NotifyChannel = "events_changed"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "title", "description", "date", "time", "address",
	"image_url", "attachment_url", "latitude", "longitude",
	"creator_uid", "created_at",
}

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New creates a new event repository.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Repo {
	return &Repo{pool: pool, log: logger.With("adapter", "postgres.event")}
}

// NewID allocates an id for a new event.
func (r *Repo) NewID() string {
	return uuid.NewString()
}

// Set writes the full event record, replacing any existing row with the same id.
func (r *Repo) Set(ctx context.Context, e domain.Event) error {
	var lat, lon *float64
	if e.Location != nil {
		lat, lon = &e.Location.Latitude, &e.Location.Longitude
	}

	query, args, err := psql.Insert("events").
		Columns(columns...).
		Values(e.ID, e.Title, e.Description, e.Date, e.Time, e.Address,
			e.ImageURL, e.AttachmentURL, lat, lon,
			e.CreatorUID, e.CreatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			date = EXCLUDED.date,
			time = EXCLUDED.time,
			address = EXCLUDED.address,
			image_url = EXCLUDED.image_url,
			attachment_url = EXCLUDED.attachment_url,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			creator_uid = EXCLUDED.creator_uid`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build event upsert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "event", e.ID)
	}
	return nil
}

// List returns every event in creation order.
func (r *Repo) List(ctx context.Context) ([]domain.Event, error) {
	return listEvents(ctx, postgres.QuerierFromCtx(ctx, r.pool))
}

// Subscribe holds one pooled connection for the lifetime of the feed,
// LISTENs on NotifyChannel, emits the current table and then a fresh copy
// after every notification.
func (r *Repo) Subscribe(ctx context.Context) (*feed.Feed, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire listener connection: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{NotifyChannel}.Sanitize()); err != nil {
		conn.Release()
		return nil, fmt.Errorf("listen %s: %w", NotifyChannel, err)
	}

	return feed.Start(ctx, func(ctx context.Context, emit feed.EmitFunc) error {
		defer r.release(conn)

		for {
			snapshot, err := listEvents(ctx, conn)
			if err != nil {
				return fmt.Errorf("load events snapshot: %w", err)
			}
			if err := emit(snapshot); err != nil {
				return err
			}

			if _, err := conn.Conn().WaitForNotification(ctx); err != nil {
				return fmt.Errorf("wait for %s: %w", NotifyChannel, err)
			}
		}
	}), nil
}

func (r *Repo) release(conn *pgxpool.Conn) {
	if !conn.Conn().IsClosed() {
		if _, err := conn.Exec(context.Background(), "UNLISTEN *"); err != nil {
			r.log.Warn("unlisten failed", slog.String("error", err.Error()))
		}
	}
	conn.Release()
}

func listEvents(ctx context.Context, q postgres.Querier) ([]domain.Event, error) {
	query, args, err := psql.Select(columns...).
		From("events").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build events select: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var (
			e        domain.Event
			lat, lon *float64
		)
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Address,
			&e.ImageURL, &e.AttachmentURL, &lat, &lon,
			&e.CreatorUID, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if lat != nil && lon != nil {
			e.Location = &domain.Coordinates{Latitude: *lat, Longitude: *lon}
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
