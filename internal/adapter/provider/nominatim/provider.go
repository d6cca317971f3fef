// Package nominatim resolves free-text addresses to coordinates using the
// OpenStreetMap Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/heartmarshall/eventorias-backend/internal/config"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
	"github.com/heartmarshall/eventorias-backend/internal/metrics"
)

// Provider geocodes addresses. It never retries and never returns an
// error: any failure means "no match".
type Provider struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the geocoder config. ConnectTimeout
// bounds dialing, ReadTimeout bounds the wait for response headers and body.
func NewProvider(cfg config.GeocoderConfig, logger *slog.Logger) *Provider {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
		TLSHandshakeTimeout:   cfg.ConnectTimeout,
		ResponseHeaderTimeout: cfg.ReadTimeout,
	}
	return &Provider{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.ConnectTimeout + cfg.ReadTimeout,
		},
		log: logger.With("adapter", "nominatim"),
	}
}

// Geocode returns the coordinates of the best match for address, or nil
// when there is no match or the lookup failed.
func (p *Provider) Geocode(ctx context.Context, address string) *domain.Coordinates {
	coords, err := p.search(ctx, address)
	if err != nil {
		metrics.GeocodeRequests.WithLabelValues(metrics.ResultError).Inc()
		p.log.WarnContext(ctx, "geocode failed",
			slog.String("address", address),
			slog.String("error", err.Error()),
		)
		return nil
	}
	if coords == nil {
		metrics.GeocodeRequests.WithLabelValues(metrics.ResultMiss).Inc()
		p.log.DebugContext(ctx, "geocode no match", slog.String("address", address))
		return nil
	}

	metrics.GeocodeRequests.WithLabelValues(metrics.ResultHit).Inc()
	return coords
}

func (p *Provider) search(ctx context.Context, address string) (*domain.Coordinates, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("q", address)
	reqURL := p.baseURL + "/search?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim: create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim: request: %w", err)
	}
	defer resp.Body.Close()

	p.log.DebugContext(ctx, "nominatim response",
		slog.Int("status", resp.StatusCode),
		slog.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("nominatim: unexpected status %d", resp.StatusCode)
	}

	var places []apiPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("nominatim: decode json: %w", err)
	}
	if len(places) == 0 {
		return nil, nil
	}

	lat, err := parseDegrees("lat", places[0].Lat, 90)
	if err != nil {
		return nil, err
	}
	lon, err := parseDegrees("lon", places[0].Lon, 180)
	if err != nil {
		return nil, err
	}

	return &domain.Coordinates{Latitude: lat, Longitude: lon}, nil
}

// parseDegrees rejects NaN, infinities and values beyond ±limit, all of which
// ParseFloat accepts and encoding/json cannot emit.
func parseDegrees(name, raw string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("nominatim: parse %s %q: %w", name, raw, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > limit {
		return 0, fmt.Errorf("nominatim: %s %q out of range", name, raw)
	}
	return v, nil
}
