package geocoding

import (
	"context"
	"errors"
	"net/http"

	"github.com/UnknownOlympus/pitstop/internal/models"
)

// ErrNotFound is returned by every provider when the backend has no match for the postal code.
// Any other error returned by Geocode is a transport failure.
var ErrNotFound = errors.New("no location found for postal code")

// Provider resolves a postal code to the single best-matching coordinate.
// The country scope is fixed when the provider is constructed.
type Provider interface {
	Geocode(ctx context.Context, postalCode string) (*models.Coordinates, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
