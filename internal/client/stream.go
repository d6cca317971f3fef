package client

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/feed"
)

// ErrStreamEnded is reported by a watch feed when the server closed the
// stream, for example because the reader fell behind.
var ErrStreamEnded = errors.New("event stream ended by server")

const maxSSELine = 16 << 20

// WatchEvents opens the live event stream. Every snapshot, filtered by
// search and sorted newest first, is delivered on the returned feed.
func (c *Client) WatchEvents(ctx context.Context, search string) (*feed.Feed, error) {
	streamCtx, cancel := context.WithCancel(ctx)

	req := c.request(c.stream.R()).
		SetContext(streamCtx).
		SetDoNotParseResponse(true).
		SetHeader("Accept", "text/event-stream")
	if search != "" {
		req.SetQueryParam("q", search)
	}

	resp, err := req.Get("/events/stream")
	if err != nil {
		cancel()
		return nil, fmt.Errorf("watch events: %w", err)
	}
	body := resp.RawBody()
	if resp.StatusCode() != http.StatusOK {
		body.Close() //nolint:errcheck
		cancel()
		return nil, fmt.Errorf("watch events: %w", &APIError{
			Status:  resp.StatusCode(),
			Message: http.StatusText(resp.StatusCode()),
		})
	}

	return feed.Start(streamCtx, func(ctx context.Context, emit feed.EmitFunc) error {
		defer cancel()
		defer body.Close()                                      //nolint:errcheck
		stop := context.AfterFunc(ctx, func() { body.Close() }) //nolint:errcheck
		defer stop()

		err := readSSE(body, func(event string, data []byte) error {
			switch event {
			case "snapshot":
				var p eventListPayload
				if err := json.Unmarshal(data, &p); err != nil {
					return fmt.Errorf("decode snapshot: %w", err)
				}
				return emit(eventsOf(p.toViews()))
			case "end":
				return ErrStreamEnded
			}
			return nil
		})
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}), nil
}

// readSSE dispatches server-sent events to fn until the body ends or fn
// fails. Comment lines are skipped.
func readSSE(r io.Reader, fn func(event string, data []byte) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxSSELine)

	var (
		event string
		data  strings.Builder
	)
	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "":
			if data.Len() > 0 || event != "" {
				if event == "" {
					event = "message"
				}
				if err := fn(event, []byte(data.String())); err != nil {
					return err
				}
			}
			event = ""
			data.Reset()
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event:"):
			event = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stream: %w", err)
	}
	return io.ErrUnexpectedEOF
}

func eventsOf(views []EventView) []domain.Event {
	out := make([]domain.Event, len(views))
	for i, v := range views {
		out[i] = v.Event
	}
	return out
}
