package geocoding_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/UnknownOlympus/pitstop/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// mockHTTPClient is a mock implementation of HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestNominatimProvider_Geocode(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()
	noLimit := rate.NewLimiter(rate.Inf, 0)

	t.Run("successful geocoding", func(t *testing.T) {
		calls := 0
		mockClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				calls++
				assert.Equal(t, http.MethodGet, req.Method)
				assert.Contains(t, req.URL.String(), "nominatim.openstreetmap.org")
				assert.Equal(t, "90210", req.URL.Query().Get("postalcode"))
				assert.Equal(t, "us", req.URL.Query().Get("country"))
				assert.Equal(t, "json", req.URL.Query().Get("format"))
				assert.Equal(t, "1", req.URL.Query().Get("limit"))
				assert.Empty(t, req.URL.Query().Get("q"))
				assert.Contains(t, req.Header.Get("User-Agent"), "Pitstop-Shop-Finder")

				return jsonResponse(http.StatusOK, `[{"lat":"34.0901","lon":"-118.4065"}]`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, "us", noLimit, logger)
		coords, err := provider.Geocode(ctx, "90210")

		require.NoError(t, err)
		require.NotNil(t, coords)
		assert.InDelta(t, 34.0901, coords.Latitude, 1e-9)
		assert.InDelta(t, -118.4065, coords.Longitude, 1e-9)
		assert.Equal(t, 1, calls, "exactly one request, no fallbacks")
	})

	t.Run("empty response is not found", func(t *testing.T) {
		calls := 0
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				calls++
				return jsonResponse(http.StatusOK, `[]`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, "us", noLimit, logger)
		coords, err := provider.Geocode(ctx, "00000")

		require.Nil(t, coords)
		require.ErrorIs(t, err, geocoding.ErrNominatimEmptyResponse)
		require.ErrorIs(t, err, geocoding.ErrNotFound)
		assert.Equal(t, 1, calls, "no retries")
	})

	t.Run("any 2xx status is success", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusNonAuthoritativeInfo, `[{"lat":"34.0901","lon":"-118.4065"}]`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, "us", noLimit, logger)
		coords, err := provider.Geocode(ctx, "90210")

		require.NoError(t, err)
		assert.InDelta(t, 34.0901, coords.Latitude, 1e-9)
	})

	t.Run("redirect status is an error", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusFound, `[{"lat":"34.0901","lon":"-118.4065"}]`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, "us", noLimit, logger)
		coords, err := provider.Geocode(ctx, "90210")

		require.Nil(t, coords)
		require.NotErrorIs(t, err, geocoding.ErrNotFound)
		assert.Contains(t, err.Error(), "nominatim API returned status 302")
	})

	t.Run("HTTP error status", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusTooManyRequests, `{"error":"Rate limit exceeded"}`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, "us", noLimit, logger)
		coords, err := provider.Geocode(ctx, "90210")

		require.Error(t, err)
		require.Nil(t, coords)
		require.NotErrorIs(t, err, geocoding.ErrNotFound)
		assert.Contains(t, err.Error(), "nominatim API returned status 429")
	})

	t.Run("invalid JSON response", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `invalid json`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, "us", noLimit, logger)
		coords, err := provider.Geocode(ctx, "90210")

		require.Error(t, err)
		require.Nil(t, coords)
		assert.Contains(t, err.Error(), "failed to decode nominatim response")
	})

	t.Run("invalid latitude in response", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `[{"lat":"invalid","lon":"-118.4065"}]`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, "us", noLimit, logger)
		coords, err := provider.Geocode(ctx, "90210")

		require.Nil(t, coords)
		require.ErrorIs(t, err, geocoding.ErrNominatimInvalidCoords)
		assert.Contains(t, err.Error(), "invalid latitude")
	})

	t.Run("invalid longitude in response", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `[{"lat":"34.0901","lon":"invalid"}]`), nil
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, "us", noLimit, logger)
		coords, err := provider.Geocode(ctx, "90210")

		require.Nil(t, coords)
		require.ErrorIs(t, err, geocoding.ErrNominatimInvalidCoords)
		assert.Contains(t, err.Error(), "invalid longitude")
	})

	t.Run("HTTP client returns error", func(t *testing.T) {
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, assert.AnError
			},
		}

		provider := geocoding.NewNominatimProviderWithClient(mockClient, "us", noLimit, logger)
		coords, err := provider.Geocode(ctx, "90210")

		require.Nil(t, coords)
		require.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to execute geocoding request")
	})

	t.Run("rate limiter blocks on cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		mockClient := &mockHTTPClient{
			doFunc: func(_ *http.Request) (*http.Response, error) {
				t.Fatal("HTTP client should not be called when rate limit blocks")
				return nil, nil
			},
		}

		limiter := rate.NewLimiter(rate.Every(time.Second), 1)
		limiter.Allow() // drain the only token

		provider := geocoding.NewNominatimProviderWithClient(mockClient, "us", limiter, logger)
		coords, err := provider.Geocode(cancelled, "90210")

		require.Nil(t, coords)
		assert.ErrorContains(t, err, "rate limit exceeded")
	})
}

func TestNewNominatimProvider(t *testing.T) {
	provider := geocoding.NewNominatimProvider("us", 0, time.Second, slog.Default())

	require.NotNil(t, provider)
}
