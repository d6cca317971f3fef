// Package user implements the users collection using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/eventorias-backend/internal/adapter/postgres"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// uuid.UUID is an array type, so ids are bound through sq.Expr rather than
// sq.Eq, which would expand them into a list.

var columns = []string{
	"id", "email", "name", "photo_url", "password_hash", "google_id",
	"notifications_enabled", "push_token", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Expr("id = ?", id), id.String())
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Expr("lower(email) = lower(?)", email), email)
}

// GetByGoogleID returns the user linked to a Google account.
func (r *Repo) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"google_id": googleID}, googleID)
}

// GetByIDs returns the users with the given ids. Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	query, args, err := psql.Select(columns...).From("users").Where(sq.Expr("id = ANY(?)", ids)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build users select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	users, err := pgx.CollectRows(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("scan users: %w", err)
	}
	return users, nil
}

// Create inserts a new user and returns the persisted record.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := psql.Insert("users").
		Columns(columns...).
		Values(u.ID, strings.TrimSpace(u.Email), u.Name, u.PhotoURL, u.PasswordHash, u.GoogleID,
			u.NotificationsEnabled, u.PushToken, u.CreatedAt, u.UpdatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}
	return r.returning(ctx, query, args, u.ID.String())
}

// UpdateProfile sets the display name and photo.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, name string, photoURL *string) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{"name": name, "photo_url": photoURL})
}

// LinkGoogle attaches a Google account id to an existing user.
func (r *Repo) LinkGoogle(ctx context.Context, id uuid.UUID, googleID string) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{"google_id": googleID})
}

// UpdateNotifications sets the push opt-in flag and token together.
func (r *Repo) UpdateNotifications(ctx context.Context, id uuid.UUID, enabled bool, token *string) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{"notifications_enabled": enabled, "push_token": token})
}

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) (*domain.User, error) {
	set["updated_at"] = time.Now().UTC()
	query, args, err := psql.Update("users").
		SetMap(set).
		Where(sq.Expr("id = ?", id)).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user update: %w", err)
	}
	return r.returning(ctx, query, args, id.String())
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key string) (*domain.User, error) {
	query, args, err := psql.Select(columns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user select: %w", err)
	}
	return r.returning(ctx, query, args, key)
}

func (r *Repo) returning(ctx context.Context, query string, args []any, key string) (*domain.User, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	u, err := pgx.CollectExactlyOneRow(rows, scanUser)
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return &u, nil
}

func scanUser(row pgx.CollectableRow) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.PhotoURL, &u.PasswordHash, &u.GoogleID,
		&u.NotificationsEnabled, &u.PushToken, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}
