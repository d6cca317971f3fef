package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/feed"
)

type eventDocument struct {
	ID            string              `bson:"_id"`
	Title         string              `bson:"title"`
	Description   string              `bson:"description"`
	Date          string              `bson:"date"`
	Time          string              `bson:"time"`
	Address       string              `bson:"address"`
	ImageURL      *string             `bson:"image_url,omitempty"`
	AttachmentURL *string             `bson:"attachment_url,omitempty"`
	Location      *domain.Coordinates `bson:"location,omitempty"`
	CreatorUID    string              `bson:"creator_uid"`
	CreatedAt     time.Time           `bson:"created_at"`
}

func toEventDocument(e domain.Event) (eventDocument, error) {
	var doc eventDocument
	if err := copier.CopyWithOption(&doc, &e, copier.Option{DeepCopy: true}); err != nil {
		return eventDocument{}, fmt.Errorf("map event %s: %w", e.ID, err)
	}
	doc.CreatedAt = e.CreatedAt.UTC()
	return doc, nil
}

func (d eventDocument) toDomain() (domain.Event, error) {
	var e domain.Event
	if err := copier.CopyWithOption(&e, &d, copier.Option{DeepCopy: true}); err != nil {
		return domain.Event{}, fmt.Errorf("map event %s: %w", d.ID, err)
	}
	e.CreatedAt = d.CreatedAt
	return e, nil
}

// EventStore is the events collection.
type EventStore struct {
	coll *mongo.Collection
	log  *slog.Logger
}

// NewEventStore creates an event store on c.
func NewEventStore(c *Client) *EventStore {
	return &EventStore{
		coll: c.db.Collection(eventsCollection),
		log:  c.log.With("collection", eventsCollection),
	}
}

// NewID allocates an ObjectID-shaped id for a new event.
func (s *EventStore) NewID() string {
	return primitive.NewObjectID().Hex()
}

// Set inserts or replaces the document with e.ID.
func (s *EventStore) Set(ctx context.Context, e domain.Event) error {
	doc, err := toEventDocument(e)
	if err != nil {
		return err
	}

	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	return mapError(err, "event", e.ID)
}

// List returns every event ordered by creation time.
func (s *EventStore) List(ctx context.Context) ([]domain.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}

	var docs []eventDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	events := make([]domain.Event, 0, len(docs))
	for _, d := range docs {
		e, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// Subscribe opens a change stream and emits the full collection once and
// again after every change. The stream is opened before the initial read so
// no write between the two is lost.
func (s *EventStore) Subscribe(ctx context.Context) (*feed.Feed, error) {
	stream, err := s.coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("watch events: %w", err)
	}

	return feed.Start(ctx, func(ctx context.Context, emit feed.EmitFunc) error {
		defer stream.Close(context.Background())

		if err := s.reload(ctx, emit); err != nil {
			return err
		}

		for stream.Next(ctx) {
			// A burst of buffered changes yields one reload.
			for stream.RemainingBatchLength() > 0 {
				if !stream.Next(ctx) {
					break
				}
			}
			if err := s.reload(ctx, emit); err != nil {
				return err
			}
		}
		if err := stream.Err(); err != nil {
			return fmt.Errorf("events change stream: %w", err)
		}
		return ctx.Err()
	}), nil
}

func (s *EventStore) reload(ctx context.Context, emit feed.EmitFunc) error {
	events, err := s.List(ctx)
	if err != nil {
		return err
	}
	s.log.DebugContext(ctx, "events reloaded", slog.Int("count", len(events)))
	return emit(events)
}
