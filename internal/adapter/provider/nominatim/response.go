package nominatim

// apiPlace is a single element of the /search response. Coordinates come
// back as decimal strings.
type apiPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}
