package staticmap

import (
	"testing"

	"github.com/heartmarshall/eventorias-backend/internal/config"
	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

func TestBuilder_URL(t *testing.T) {
	t.Parallel()

	b := NewBuilder(config.MapsConfig{
		BaseURL: "https://maps.googleapis.com/maps/api/",
		APIKey:  "k3y",
		Zoom:    15,
		Size:    "400x400",
	})

	tests := []struct {
		name string
		in   *domain.Coordinates
		want string
	}{
		{
			name: "paris",
			in:   &domain.Coordinates{Latitude: 48.8566, Longitude: 2.3522},
			want: "https://maps.googleapis.com/maps/api/staticmap?center=48.8566,2.3522&zoom=15&size=400x400&markers=color:red|48.8566,2.3522&key=k3y",
		},
		{
			name: "negative",
			in:   &domain.Coordinates{Latitude: -33.5, Longitude: -70},
			want: "https://maps.googleapis.com/maps/api/staticmap?center=-33.5,-70&zoom=15&size=400x400&markers=color:red|-33.5,-70&key=k3y",
		},
		{name: "no location", in: nil, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := b.URL(tt.in); got != tt.want {
				t.Errorf("URL() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
