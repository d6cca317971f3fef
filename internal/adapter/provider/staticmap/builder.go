// Package staticmap builds static map image URLs for event locations.
package staticmap

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/eventorias-backend/internal/config"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// Builder renders map URLs. The URL is handed to clients as is and never fetched.
type Builder struct {
	base string
	key  string
	zoom int
	size string
}

// NewBuilder creates a Builder from the maps settings.
func NewBuilder(cfg config.MapsConfig) *Builder {
	return &Builder{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		key:  cfg.APIKey,
		zoom: cfg.Zoom,
		size: cfg.Size,
	}
}

// URL returns the map centred on c with a red marker, or "" when c is nil.
func (b *Builder) URL(c *domain.Coordinates) string {
	if c == nil {
		return ""
	}
	point := formatCoord(c.Latitude) + "," + formatCoord(c.Longitude)
	return fmt.Sprintf("%s/staticmap?center=%s&zoom=%d&size=%s&markers=color:red|%s&key=%s",
		b.base, point, b.zoom, b.size, point, url.QueryEscape(b.key))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
