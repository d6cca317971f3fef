package client

import (
	"context"
	"net/url"
	"time"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// EventView is an event as rendered by the API, with the creator avatar
// and, on detail reads, the static map URL.
type EventView struct {
	domain.Event
	CreatorPhotoURL string
	MapURL          string
}

// CreateEventRequest is the creation form.
type CreateEventRequest struct {
	Title       string
	Description string
	Date        string
	Time        string
	Address     string
	Image       *domain.File
	Attachment  *domain.File
}

type locationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type eventPayload struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Date            string           `json:"date"`
	Time            string           `json:"time"`
	Address         string           `json:"address"`
	ImageURL        *string          `json:"imageUrl"`
	AttachmentURL   *string          `json:"attachmentUrl"`
	Location        *locationPayload `json:"location"`
	CreatorUID      string           `json:"creatorUid"`
	CreatorPhotoURL string           `json:"creatorPhotoUrl"`
	MapURL          string           `json:"mapUrl"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type eventListPayload struct {
	Events []eventPayload `json:"events"`
}

func (p eventPayload) toView() EventView {
	ev := domain.Event{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		Date:          p.Date,
		Time:          p.Time,
		Address:       p.Address,
		ImageURL:      p.ImageURL,
		AttachmentURL: p.AttachmentURL,
		CreatorUID:    p.CreatorUID,
		CreatedAt:     p.CreatedAt,
	}
	if p.Location != nil {
		ev.Location = &domain.Coordinates{Latitude: p.Location.Latitude, Longitude: p.Location.Longitude}
	}
	return EventView{Event: ev, CreatorPhotoURL: p.CreatorPhotoURL, MapURL: p.MapURL}
}

func (p eventListPayload) toViews() []EventView {
	out := make([]EventView, len(p.Events))
	for i, e := range p.Events {
		out[i] = e.toView()
	}
	return out
}

// ListEvents returns the current events, newest first, filtered by title.
func (c *Client) ListEvents(ctx context.Context, search string) ([]EventView, error) {
	var out eventListPayload
	req := c.request(c.http.R()).SetContext(ctx).SetResult(&out)
	if search != "" {
		req.SetQueryParam("q", search)
	}
	resp, err := req.Get("/events")
	if err := checkResponse("list events", resp, err); err != nil {
		return nil, err
	}
	return out.toViews(), nil
}

// GetEvent returns one event with its map URL.
func (c *Client) GetEvent(ctx context.Context, id string) (*EventView, error) {
	var out eventPayload
	resp, err := c.request(c.http.R()).
		SetContext(ctx).
		SetResult(&out).
		Get("/events/" + url.PathEscape(id))
	if err := checkResponse("get event", resp, err); err != nil {
		return nil, err
	}
	v := out.toView()
	return &v, nil
}

// CreateEvent submits the creation form. With wait set the call returns
// only after the server confirmed the store write.
func (c *Client) CreateEvent(ctx context.Context, in CreateEventRequest, wait bool) (*domain.Event, error) {
	var out eventPayload
	req := c.request(c.http.R()).
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			"title":       in.Title,
			"description": in.Description,
			"date":        in.Date,
			"time":        in.Time,
			"address":     in.Address,
		}).
		SetResult(&out)
	if in.Image != nil {
		req.SetMultipartField("image", in.Image.Name, in.Image.ContentType, in.Image.Body)
	}
	if in.Attachment != nil {
		req.SetMultipartField("attachment", in.Attachment.Name, in.Attachment.ContentType, in.Attachment.Body)
	}
	if wait {
		req.SetQueryParam("wait", "true")
	}

	resp, err := req.Post("/events")
	if err := checkResponse("create event", resp, err); err != nil {
		return nil, err
	}
	v := out.toView()
	return &v.Event, nil
}
