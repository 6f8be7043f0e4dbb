package geocoding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/pitstop/internal/models"
	"googlemaps.github.io/maps"
)

// GoogleProvider geocodes postal codes through the Google Maps Geocoding API
// using component filtering, so free text never matches a street or a city by accident.
type GoogleProvider struct {
	client  GoogleAPIClient // client is the Google Maps API client
	country string          // country is the ISO 3166-1 component filter
	log     *slog.Logger    // log is the logger for logging operations
}

type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// ErrEmptyResponse is returned when the Google Maps API responds with an empty result.
var ErrEmptyResponse = fmt.Errorf("get empty response from Google Maps API: %w", ErrNotFound)

// NewGoogleProvider wraps an already configured Google Maps client.
func NewGoogleProvider(client GoogleAPIClient, country string, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, country: country, log: log}
}

// Geocode returns the location of the first result for the postal code within the configured country.
func (gp *GoogleProvider) Geocode(ctx context.Context, postalCode string) (*models.Coordinates, error) {
	gp.log.DebugContext(ctx, "Geocoding using Google Maps", "postal_code", postalCode, "country", gp.country)

	req := NewGoogleRequest(postalCode, gp.country)
	geocodeResponse, err := gp.client.Geocode(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode postal code: %w", err)
	}

	if len(geocodeResponse) == 0 {
		return nil, ErrEmptyResponse
	}
	coords := geocodeResponse[0].Geometry.Location

	return &models.Coordinates{Longitude: coords.Lng, Latitude: coords.Lat}, nil
}

// NewGoogleRequest builds the component-filtered request sent for a postal code.
func NewGoogleRequest(postalCode, country string) *maps.GeocodingRequest {
	return &maps.GeocodingRequest{
		Components: map[maps.Component]string{
			maps.ComponentPostalCode: postalCode,
			maps.ComponentCountry:    country,
		},
	}
}
