package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// UserRepo is an in-memory users collection.
type UserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

// NewUserRepo creates an empty repository.
func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[uuid.UUID]domain.User)}
}

func (r *UserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	return r.find(email, func(u domain.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserRepo) GetByGoogleID(_ context.Context, googleID string) (*domain.User, error) {
	return r.find(googleID, func(u domain.User) bool { return u.GoogleID != nil && *u.GoogleID == googleID })
}

func (r *UserRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *UserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, fmt.Errorf("user %s: %w", u.Email, domain.ErrAlreadyExists)
		}
	}
	if _, ok := r.users[u.ID]; ok {
		return nil, fmt.Errorf("user %s: %w", u.ID, domain.ErrAlreadyExists)
	}
	r.users[u.ID] = *u
	out := *u
	return &out, nil
}

func (r *UserRepo) UpdateProfile(_ context.Context, id uuid.UUID, name string, photoURL *string) (*domain.User, error) {
	return r.update(id, func(u *domain.User) {
		u.Name = name
		u.PhotoURL = photoURL
	})
}

func (r *UserRepo) LinkGoogle(_ context.Context, id uuid.UUID, googleID string) (*domain.User, error) {
	return r.update(id, func(u *domain.User) { u.GoogleID = &googleID })
}

func (r *UserRepo) UpdateNotifications(_ context.Context, id uuid.UUID, enabled bool, token *string) (*domain.User, error) {
	return r.update(id, func(u *domain.User) {
		u.NotificationsEnabled = enabled
		u.PushToken = token
	})
}

func (r *UserRepo) find(key string, match func(domain.User) bool) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", key, domain.ErrNotFound)
}

func (r *UserRepo) update(id uuid.UUID, apply func(u *domain.User)) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	apply(&u)
	u.UpdatedAt = time.Now().UTC()
	r.users[id] = u
	return &u, nil
}

// TxManager serialises callbacks. The memory repositories have no rollback.
type TxManager struct {
	mu sync.Mutex
}

// RunInTx runs fn while holding the manager lock.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
