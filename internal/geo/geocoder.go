package geo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"googlemaps.github.io/maps"
)

// Geocoder resolves a postal address to structured location data.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (string, error)
}

// GoogleGeocoder geocodes through the Google Maps API, biased to Germany.
type GoogleGeocoder struct {
	client *maps.Client
}

// Ensure GoogleGeocoder implements Geocoder
var _ Geocoder = (*GoogleGeocoder)(nil)

// NewGoogleGeocoder creates a geocoder with the given API key.
func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

// Geocode returns the first geocoding result for address as JSON.
// An unresolvable address is an error the caller surfaces to the user.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (string, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Language: "de",
		Region:   "de",
	})
	if err != nil {
		return "", fmt.Errorf("geocode %q: %w", address, err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("geocode %q: no results", address)
	}
	if len(results) > 1 {
		log.Warn().Str("address", address).Int("results", len(results)).Msg("geocoding returned multiple results")
	}

	data, err := json.Marshal(results[0])
	if err != nil {
		return "", fmt.Errorf("marshal geocode result: %w", err)
	}
	return string(data), nil
}
