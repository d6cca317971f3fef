package rest

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

const calendarProductID = "-//Eventorias//Events//EN"

// Calendar handles GET /events.ics?q=: the current snapshot as an
// iCalendar feed. Start times are floating local times.
func (h *EventHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	events := domain.FilterAndSort(h.svc.Current(), r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="eventorias.ics"`)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, buildCalendar(events, time.Now().UTC())) //nolint:errcheck
}

func buildCalendar(events []domain.Event, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(calendarProductID)

	for _, e := range events {
		ve := cal.AddEvent(e.ID + "@eventorias")
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)
		ve.SetDescription(e.Description)
		ve.SetLocation(e.Address)
		if start := floatingStart(e); start != "" {
			ve.SetProperty(ical.ComponentPropertyDtStart, start)
		}
		if e.Location != nil {
			ve.SetProperty(ical.ComponentPropertyGeo, formatGeo(*e.Location))
		}
		if e.ImageURL != nil {
			ve.SetURL(*e.ImageURL)
		}
		if !e.CreatedAt.IsZero() {
			ve.SetCreatedTime(e.CreatedAt)
		}
	}
	return cal.Serialize()
}

// floatingStart renders date and time as an iCalendar local date-time
// (no zone designator), or "" when the stored values do not parse.
func floatingStart(e domain.Event) string {
	t, err := time.Parse("2006-01-02 15:04", e.Date+" "+e.Time)
	if err != nil {
		return ""
	}
	return t.Format("20060102T150405")
}

func formatGeo(c domain.Coordinates) string {
	return strings.Join([]string{
		strconv.FormatFloat(c.Latitude, 'f', -1, 64),
		strconv.FormatFloat(c.Longitude, 'f', -1, 64),
	}, ";")
}
