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
	"time"

	"github.com/UnknownOlympus/pitstop/internal/models"
	"golang.org/x/time/rate"
)

// VisicomBaseURL -- Visicom API base URL.
const VisicomBaseURL = "https://api.visicom.ua/data-api/5.0/en/geocode.json"

// VisicomProvider geocodes postal codes using the Visicom data API.
type VisicomProvider struct {
	client  HTTPClient    // HTTP client for making requests
	baseURL string        // Base URL for the Visicom API
	apiKey  string        // API key with geocoding access
	country string        // Country filter applied to every postal code
	log     *slog.Logger  // Logger for logging operations
	limiter *rate.Limiter // Rate limiter
}

// Common errors for Visicom provider.
var (
	ErrVisicomEmptyResponse = fmt.Errorf("visicom API returned empty response: %w", ErrNotFound)
	ErrVisicomInvalidCoords = errors.New("visicom API returned invalid coordinates")
	ErrVisicomUnauthorized  = errors.New("visicom API unauthorized (invalid API key)")
)

// With limit=1 Visicom answers with a single feature; geo_centroid is [lon, lat].
type visicomResponse struct {
	Centroid struct {
		Coordinates []float64 `json:"coordinates"`
	} `json:"geo_centroid"`
}

// NewVisicomProvider creates a new Visicom geocoding provider.
func NewVisicomProvider(
	apiKey, country string,
	rateLimit int,
	timeout time.Duration,
	log *slog.Logger,
) *VisicomProvider {
	return &VisicomProvider{
		client:  &http.Client{Timeout: timeout},
		baseURL: VisicomBaseURL,
		apiKey:  apiKey,
		country: country,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
	}
}

// NewVisicomProviderWithClient allows injecting custom HTTP client.
func NewVisicomProviderWithClient(
	client HTTPClient,
	apiKey, country string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *VisicomProvider {
	return &VisicomProvider{
		client:  client,
		baseURL: VisicomBaseURL,
		apiKey:  apiKey,
		country: country,
		log:     log,
		limiter: limiter,
	}
}

// Geocode converts a postal code into geographic coordinates using Visicom API.
func (vp *VisicomProvider) Geocode(ctx context.Context, postalCode string) (*models.Coordinates, error) {
	const coordsListLength = 2

	if err := vp.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	vp.log.DebugContext(ctx, "Geocoding using Visicom", "postal_code", postalCode, "country", vp.country)

	reqURL, err := url.Parse(vp.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("text", postalCode)
	query.Set("country", vp.country)
	query.Set("categories", "adm_postcode")
	query.Set("limit", "1")
	query.Set("key", vp.apiKey)
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := vp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute geocoding request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrVisicomUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		vp.log.ErrorContext(ctx, "Visicom API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("visicom API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result visicomResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode visicom response: %w", err)
	}

	coords := result.Centroid.Coordinates
	switch len(coords) {
	case 0:
		return nil, ErrVisicomEmptyResponse
	case coordsListLength:
	default:
		return nil, ErrVisicomInvalidCoords
	}

	vp.log.DebugContext(ctx, "Visicom found result", "postal_code", postalCode, "lat", coords[1], "lon", coords[0])

	return &models.Coordinates{Latitude: coords[1], Longitude: coords[0]}, nil
}
