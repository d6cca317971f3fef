package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// Stream handles GET /events/stream?q= as server-sent events. Every snapshot
// from the store is sent, filtered and sorted, as one "snapshot" event. The
// stream ends when the client goes away or the reader falls behind.
func (h *EventHandler) Stream(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	// The server write timeout would cut long-lived streams.
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		h.log.DebugContext(r.Context(), "write deadline not supported", slog.String("error", err.Error()))
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		h.log.WarnContext(r.Context(), "streaming not supported", slog.String("error", err.Error()))
		return
	}

	search := r.URL.Query().Get("q")
	snapshots := h.svc.Watch(r.Context())

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case snapshot, ok := <-snapshots:
			if !ok {
				fmt.Fprint(w, "event: end\ndata: {}\n\n") //nolint:errcheck
				rc.Flush()                                //nolint:errcheck
				return
			}
			if err := writeSnapshot(w, domain.FilterAndSort(snapshot, search)); err != nil {
				h.log.DebugContext(r.Context(), "stream write failed", slog.String("error", err.Error()))
				return
			}
		}
		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func writeSnapshot(w http.ResponseWriter, events []domain.Event) error {
	data, err := json.Marshal(toEventList(events, nil))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data)
	return err
}
