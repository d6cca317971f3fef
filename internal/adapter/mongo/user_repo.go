package mongo

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thoas/go-funk"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

type userDocument struct {
	ID                   string    `bson:"_id"`
	Email                string    `bson:"email"`
	EmailLower           string    `bson:"email_lower"`
	Name                 string    `bson:"name"`
	PhotoURL             *string   `bson:"photo_url,omitempty"`
	PasswordHash         *string   `bson:"password_hash,omitempty"`
	GoogleID             *string   `bson:"google_id,omitempty"`
	NotificationsEnabled bool      `bson:"notifications_enabled"`
	PushToken            *string   `bson:"push_token,omitempty"`
	CreatedAt            time.Time `bson:"created_at"`
	UpdatedAt            time.Time `bson:"updated_at"`
}

func toUserDocument(u *domain.User) userDocument {
	email := strings.TrimSpace(u.Email)
	return userDocument{
		ID:                   u.ID.String(),
		Email:                email,
		EmailLower:           strings.ToLower(email),
		Name:                 u.Name,
		PhotoURL:             u.PhotoURL,
		PasswordHash:         u.PasswordHash,
		GoogleID:             u.GoogleID,
		NotificationsEnabled: u.NotificationsEnabled,
		PushToken:            u.PushToken,
		CreatedAt:            u.CreatedAt.UTC(),
		UpdatedAt:            u.UpdatedAt.UTC(),
	}
}

func (d userDocument) toDomain() (domain.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:                   id,
		Email:                d.Email,
		Name:                 d.Name,
		PhotoURL:             d.PhotoURL,
		PasswordHash:         d.PasswordHash,
		GoogleID:             d.GoogleID,
		NotificationsEnabled: d.NotificationsEnabled,
		PushToken:            d.PushToken,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}, nil
}

// UserRepo is the users collection.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepo creates a user repository on c.
func NewUserRepo(c *Client) *UserRepo {
	return &UserRepo{coll: c.db.Collection(usersCollection)}
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id.String()}, id.String())
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email_lower": strings.ToLower(strings.TrimSpace(email))}, email)
}

func (r *UserRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"google_id": googleID}, googleID)
}

// GetByIDs returns the users with the given ids. Unknown ids are skipped.
func (r *UserRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	keys := funk.Map(ids, func(id uuid.UUID) string { return id.String() }).([]string)

	cur, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": keys}})
	if err != nil {
		return nil, mapError(err, "users", "batch")
	}

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mapError(err, "users", "batch")
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		u, err := d.toDomain()
		if err != nil {
			return nil, mapError(err, "user", d.ID)
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	doc := toUserDocument(u)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, mapError(err, "user", u.Email)
	}

	created, err := doc.toDomain()
	if err != nil {
		return nil, mapError(err, "user", doc.ID)
	}
	return &created, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, name string, photoURL *string) (*domain.User, error) {
	return r.update(ctx, id, bson.M{"name": name, "photo_url": photoURL})
}

func (r *UserRepo) LinkGoogle(ctx context.Context, id uuid.UUID, googleID string) (*domain.User, error) {
	return r.update(ctx, id, bson.M{"google_id": googleID})
}

func (r *UserRepo) UpdateNotifications(ctx context.Context, id uuid.UUID, enabled bool, token *string) (*domain.User, error) {
	return r.update(ctx, id, bson.M{"notifications_enabled": enabled, "push_token": token})
}

func (r *UserRepo) findOne(ctx context.Context, filter bson.M, key string) (*domain.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapError(err, "user", key)
	}
	u, err := doc.toDomain()
	if err != nil {
		return nil, mapError(err, "user", key)
	}
	return &u, nil
}

func (r *UserRepo) update(ctx context.Context, id uuid.UUID, set bson.M) (*domain.User, error) {
	set["updated_at"] = time.Now().UTC()

	var doc userDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return nil, mapError(err, "user", id.String())
	}

	u, err := doc.toDomain()
	if err != nil {
		return nil, mapError(err, "user", id.String())
	}
	return &u, nil
}
