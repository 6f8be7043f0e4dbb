package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/UnknownOlympus/pitstop/internal/models"
	"golang.org/x/time/rate"
)

// NominatimBaseURL is the public OpenStreetMap search endpoint.
const NominatimBaseURL = "https://nominatim.openstreetmap.org/search"

// userAgent MUST include valid contact info per Nominatim usage policy:
// https://operations.osmfoundation.org/policies/nominatim/
const userAgent = "Pitstop-Shop-Finder/1.0 (https://github.com/UnknownOlympus/pitstop)"

// NominatimProvider implements the Provider interface using OpenStreetMap's Nominatim API.
// Nominatim allows 1 request/second for fair use, which the limiter enforces.
type NominatimProvider struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the Nominatim API
	country string        // Country filter applied to every postal code
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter
}

// nominatimResponse represents the JSON response from Nominatim API.
type nominatimResponse struct {
	Lat string `json:"lat"` // Latitude as string
	Lon string `json:"lon"` // Longitude as string
}

// Common errors for Nominatim provider.
var (
	ErrNominatimEmptyResponse = fmt.Errorf("nominatim API returned empty response: %w", ErrNotFound)
	ErrNominatimInvalidCoords = errors.New("nominatim API returned invalid coordinates")
)

// NewNominatimProvider creates a new Nominatim geocoding provider scoped to one country.
func NewNominatimProvider(country string, rateLimit int, timeout time.Duration, log *slog.Logger) *NominatimProvider {
	if rateLimit <= 0 {
		rateLimit = 1
	}

	return &NominatimProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: NominatimBaseURL,
		country: country,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewNominatimProviderWithClient creates a Nominatim provider with a custom HTTP client and limiter.
// Useful for testing with mocked HTTP clients.
func NewNominatimProviderWithClient(
	client HTTPClient,
	country string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *NominatimProvider {
	return &NominatimProvider{
		client:  client,
		baseURL: NominatimBaseURL,
		country: country,
		log:     log,
		limiter: limiter,
	}
}

// Geocode resolves a postal code with a single structured Nominatim search limited to one result.
// An empty result set yields ErrNominatimEmptyResponse (which matches ErrNotFound); there are no retries.
func (np *NominatimProvider) Geocode(ctx context.Context, postalCode string) (*models.Coordinates, error) {
	if err := np.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	np.log.DebugContext(ctx, "Geocoding using Nominatim", "postal_code", postalCode, "country", np.country)

	reqURL, err := url.Parse(np.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("postalcode", postalCode)
	query.Set("country", np.country)
	query.Set("format", "json")
	query.Set("limit", "1") // Only need the top result
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := np.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		np.log.ErrorContext(ctx, "Nominatim API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("nominatim API returned status %d: %s", resp.StatusCode, string(body))
	}

	var results []nominatimResponse
	if err = json.Unmarshal(body, &results); err != nil {
		np.log.ErrorContext(ctx, "Failed to parse Nominatim response", "error", err, "body", string(body))
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNominatimEmptyResponse
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid latitude: %q", ErrNominatimInvalidCoords, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid longitude: %q", ErrNominatimInvalidCoords, results[0].Lon)
	}

	np.log.DebugContext(ctx, "Nominatim found result", "postal_code", postalCode, "lat", lat, "lon", lon)

	return &models.Coordinates{Latitude: lat, Longitude: lon}, nil
}
