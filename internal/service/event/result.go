package event

import "github.com/heartmarshall/eventorias-backend/internal/domain"

// CreateResult is returned once the new event has an id.
//
// Persisted receives exactly one value when the background write finishes:
// nil on success or the store error. Callers may ignore it.
type CreateResult struct {
	Event     domain.Event
	Persisted <-chan error
}
