package testhelper

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SeedUser inserts a password-less user with a fresh email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	tag := uuid.NewString()[:8]
	photo := "https://cdn.test/user_photos/" + tag + ".jpg"
	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:        uuid.New(),
		Email:     "attendee-" + tag + "@example.com",
		Name:      "Attendee " + tag,
		PhotoURL:  &photo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name, photo_url, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		u.ID, u.Email, u.Name, u.PhotoURL, u.CreatedAt, u.UpdatedAt,
	); err != nil {
		t.Fatalf("testhelper: seed user: %v", err)
	}
	return u
}

// TruncateEvents empties the events table. Callers must not run in parallel.
func TruncateEvents(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `TRUNCATE events`); err != nil {
		t.Fatalf("testhelper: truncate events: %v", err)
	}
}
