package domain

import (
	"io"
	"time"
)

// Coordinates is a geocoded point. An event either has both components or none.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Event is a published event record as stored in the "events" collection.
type Event struct {
	ID            string
	Title         string
	Description   string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
	Address       string
	ImageURL      *string
	AttachmentURL *string
	Location      *Coordinates
	CreatorUID    string
	CreatedAt     time.Time
}

// HasLocation reports whether the event was geocoded.
func (e Event) HasLocation() bool {
	return e.Location != nil
}

// Clone returns a deep copy of the event so pointer fields are not shared.
func (e Event) Clone() Event {
	out := e
	if e.ImageURL != nil {
		v := *e.ImageURL
		out.ImageURL = &v
	}
	if e.AttachmentURL != nil {
		v := *e.AttachmentURL
		out.AttachmentURL = &v
	}
	if e.Location != nil {
		v := *e.Location
		out.Location = &v
	}
	return out
}

// CloneEvents deep-copies a snapshot. A nil snapshot yields an empty slice.
func CloneEvents(events []Event) []Event {
	out := make([]Event, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}

// File is an upload payload picked on the client.
type File struct {
	Name        string
	ContentType string
	Body        io.Reader
}
