package rest

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const probeTimeout = 3 * time.Second

type pinger interface {
	Ping(ctx context.Context) error
}

// Component is a backend the readiness probes depend on.
type Component struct {
	Name   string
	Pinger pinger
}

// HealthHandler serves /live, /ready and /health.
type HealthHandler struct {
	version    string
	components []Component
}

func NewHealthHandler(version string, components ...Component) *HealthHandler {
	return &HealthHandler{version: version, components: components}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live only proves the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, healthy := h.probe(r.Context())
	writeJSON(w, statusCode(healthy), HealthResponse{Status: statusWord(healthy), Timestamp: time.Now().UTC()})
}

// Health adds the version and per-component detail to the readiness answer.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, healthy := h.probe(r.Context())
	writeJSON(w, statusCode(healthy), HealthResponse{
		Status:     statusWord(healthy),
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now().UTC(),
	})
}

// probe pings all components concurrently under one deadline.
func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	results := make([]CompStatus, len(h.components))
	var g errgroup.Group
	for i, c := range h.components {
		g.Go(func() error {
			began := time.Now()
			if err := c.Pinger.Ping(ctx); err != nil {
				results[i] = CompStatus{Status: "down", Error: err.Error()}
				return nil
			}
			results[i] = CompStatus{Status: "ok", Latency: time.Since(began).String()}
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]CompStatus, len(results))
	healthy := true
	for i, c := range h.components {
		out[c.Name] = results[i]
		healthy = healthy && results[i].Status == "ok"
	}
	return out, healthy
}

func statusWord(healthy bool) string {
	if healthy {
		return "ok"
	}
	return "down"
}

func statusCode(healthy bool) int {
	if healthy {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
