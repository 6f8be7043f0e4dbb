package geocoding

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"googlemaps.github.io/maps"
)

// ProviderType represents the type of geocoding provider.
type ProviderType string

const (
	// ProviderTypeNominatim represents OpenStreetMap Nominatim geocoding provider.
	ProviderTypeNominatim ProviderType = "nominatim"
	// ProviderTypeGoogle represents Google Maps geocoding provider.
	ProviderTypeGoogle ProviderType = "google"
	// ProviderTypeVisicom represents Visicom Maps geocoding provider.
	ProviderTypeVisicom ProviderType = "visicom"
)

const defaultTimeout = 10 * time.Second

// ProviderConfig holds configuration for creating a geocoding provider.
type ProviderConfig struct {
	Type      ProviderType  // Type of provider to create
	APIKey    string        // API key (Google and Visicom)
	Country   string        // Country scope of every lookup, e.g. "us"
	RateLimit int           // Requests per second
	Timeout   time.Duration // HTTP timeout for a single request
	Logger    *slog.Logger  // Logger for the provider
}

// NewProvider creates a geocoding provider based on the provided configuration.
// Returns an error if the provider type is unsupported or if provider creation fails.
func NewProvider(config ProviderConfig) (Provider, error) {
	if config.Country == "" {
		return nil, errors.New("country is required for postal code geocoding")
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}

	switch config.Type {
	case ProviderTypeNominatim:
		return NewNominatimProvider(config.Country, config.RateLimit, config.Timeout, config.Logger), nil
	case ProviderTypeGoogle:
		return newGoogleProvider(config)
	case ProviderTypeVisicom:
		return newVisicomProvider(config)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", config.Type)
	}
}

// newGoogleProvider creates a Google Maps geocoding provider.
func newGoogleProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}

	clientOpts := []maps.ClientOption{maps.WithAPIKey(config.APIKey)}
	if config.RateLimit > 0 {
		clientOpts = append(clientOpts, maps.WithRateLimit(config.RateLimit))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.Country, config.Logger), nil
}

// newVisicomProvider creates a Visicom geocoding provider.
func newVisicomProvider(config ProviderConfig) (Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("API key is required for Visicom provider")
	}

	if config.RateLimit <= 0 {
		config.RateLimit = 5
		config.Logger.Warn("Rate limit for Visicom API not set, set a default value", "value", config.RateLimit)
	}

	return NewVisicomProvider(config.APIKey, config.Country, config.RateLimit, config.Timeout, config.Logger), nil
}
