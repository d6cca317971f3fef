package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/thoas/go-funk"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/service/event"
	"github.com/heartmarshall/eventorias-backend/internal/transport/dataloader"
)

type eventService interface {
	List(search string) []domain.Event
	Find(id string) (domain.Event, bool)
	Current() []domain.Event
	Watch(ctx context.Context) <-chan []domain.Event
	CreateEvent(ctx context.Context, input event.CreateEventInput) (*event.CreateResult, error)
}

type mapURLBuilder interface {
	URL(c *domain.Coordinates) string
}

// EventHandler serves the event list, detail, creation, live stream and
// calendar export.
type EventHandler struct {
	svc            eventService
	maps           mapURLBuilder
	log            *slog.Logger
	maxUploadBytes int64
	heartbeat      time.Duration
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, maps mapURLBuilder, logger *slog.Logger, maxUploadBytes int64) *EventHandler {
	return &EventHandler{
		svc:            svc,
		maps:           maps,
		log:            logger.With("handler", "event"),
		maxUploadBytes: maxUploadBytes,
		heartbeat:      15 * time.Second,
	}
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type eventResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	Address         string            `json:"address"`
	ImageURL        *string           `json:"imageUrl,omitempty"`
	AttachmentURL   *string           `json:"attachmentUrl,omitempty"`
	Location        *locationResponse `json:"location,omitempty"`
	CreatorUID      string            `json:"creatorUid,omitempty"`
	CreatorPhotoURL string            `json:"creatorPhotoUrl,omitempty"`
	MapURL          string            `json:"mapUrl,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

type eventListResponse struct {
	Events []eventResponse `json:"events"`
}

// List handles GET /events?q=. Events are sorted by date, newest first, and
// filtered by title.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	events := h.svc.List(r.URL.Query().Get("q"))
	photos := creatorPhotos(r.Context(), events)

	writeJSON(w, http.StatusOK, toEventList(events, photos))
}

// Get handles GET /events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	ev, ok := h.svc.Find(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	resp := toEventResponse(ev, creatorPhotos(r.Context(), []domain.Event{ev}))
	resp.MapURL = h.maps.URL(ev.Location)
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /events (multipart). It answers 201 once the event has
// an id. With ?wait=true it also waits for the store write.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !parseMultipart(w, r, h.maxUploadBytes) {
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	image, closeImage, err := formFile(r, "image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image")
		return
	}
	defer closeImage()

	attachment, closeAttachment, err := formFile(r, "attachment")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid attachment")
		return
	}
	defer closeAttachment()

	result, err := h.svc.CreateEvent(r.Context(), event.CreateEventInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		Address:     r.FormValue("address"),
		Image:       image,
		Attachment:  attachment,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait {
		select {
		case err := <-result.Persisted:
			if err != nil {
				respondError(h.log, w, r, err)
				return
			}
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Location", "/events/"+result.Event.ID)
	writeJSON(w, http.StatusCreated, toEventResponse(result.Event, nil))
}

// creatorPhotos resolves creator avatars through the request's loaders.
// Without loaders in the context the list is rendered without avatars.
func creatorPhotos(ctx context.Context, events []domain.Event) map[string]string {
	loaders := dataloader.FromContext(ctx)
	if loaders == nil || len(events) == 0 {
		return nil
	}
	uids := funk.UniqString(funk.Map(events, func(e domain.Event) string {
		return e.CreatorUID
	}).([]string))
	return loaders.CreatorPhotos(ctx, uids)
}

func toEventList(events []domain.Event, photos map[string]string) eventListResponse {
	out := make([]eventResponse, len(events))
	for i, e := range events {
		out[i] = toEventResponse(e, photos)
	}
	return eventListResponse{Events: out}
}

func toEventResponse(e domain.Event, photos map[string]string) eventResponse {
	resp := eventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Date:            e.Date,
		Time:            e.Time,
		Address:         e.Address,
		ImageURL:        e.ImageURL,
		AttachmentURL:   e.AttachmentURL,
		CreatorUID:      e.CreatorUID,
		CreatorPhotoURL: photos[e.CreatorUID],
		CreatedAt:       e.CreatedAt,
	}
	if e.Location != nil {
		resp.Location = &locationResponse{
			Latitude:  e.Location.Latitude,
			Longitude: e.Location.Longitude,
		}
	}
	return resp
}
