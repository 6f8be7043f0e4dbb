package overpass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/UnknownOlympus/pitstop/internal/models"
	"github.com/paulmach/osm"
)

// DefaultURL is the public Overpass interpreter endpoint.
const DefaultURL = "https://overpass-api.de/api/interpreter"

// ErrTransport wraps every failure of the spatial backend: network, status and decoding errors alike.
var ErrTransport = errors.New("overpass request failed")

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client queries an Overpass interpreter for points of interest around a coordinate.
type Client struct {
	client  HTTPClient
	baseURL string
	log     *slog.Logger
}

// NewClient creates an Overpass client with its own HTTP client.
func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: timeout}, baseURL, log)
}

// NewClientWithHTTP creates an Overpass client with a custom HTTP client.
func NewClientWithHTTP(client HTTPClient, baseURL string, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}

	return &Client{client: client, baseURL: baseURL, log: log}
}

type response struct {
	Elements *[]element `json:"elements"`
}

type element struct {
	Type   osm.Type `json:"type"`
	ID     *int64   `json:"id"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
	Center *latLon  `json:"center"`
	Tags   osm.Tags `json:"tags"`
}

type latLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Query returns every element matching category within radiusMeters of center, in backend order.
// An empty match set is a success with zero features.
func (c *Client) Query(
	ctx context.Context,
	center models.Coordinates,
	radiusMeters int,
	category Category,
) ([]models.RawFeature, error) {
	ql := BuildQuery(center, radiusMeters, category)
	c.log.DebugContext(ctx, "Overpass query", "category", category.String(), "radius", radiusMeters, "query", ql)

	form := url.Values{}
	form.Set("data", ql)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "Overpass API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: overpass API returned status %d", ErrTransport, resp.StatusCode)
	}

	var payload response
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode overpass response: %w", ErrTransport, err)
	}
	if payload.Elements == nil {
		return nil, fmt.Errorf("%w: overpass response has no elements", ErrTransport)
	}

	features := make([]models.RawFeature, 0, len(*payload.Elements))
	for _, el := range *payload.Elements {
		features = append(features, el.toRawFeature())
	}

	c.log.DebugContext(ctx, "Overpass returned features", "count", len(features))

	return features, nil
}

// toRawFeature maps nodes to point features and everything else to centroid-anchored area features.
func (e element) toRawFeature() models.RawFeature {
	feature := models.RawFeature{
		Type: e.Type,
		Name: e.Tags.Find("name"),
	}
	if e.ID != nil {
		feature.ID = *e.ID
		feature.HasID = true
	}

	if e.Type == osm.TypeNode {
		feature.Kind = models.FeatureKindPoint
		if e.Lat != nil && e.Lon != nil {
			feature.Point = &models.Coordinates{Latitude: *e.Lat, Longitude: *e.Lon}
		}
		return feature
	}

	feature.Kind = models.FeatureKindArea
	if e.Center != nil {
		feature.Centroid = &models.Coordinates{Latitude: e.Center.Lat, Longitude: e.Center.Lon}
	}

	return feature
}
