package geocoding_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/pitstop/internal/geocoding"
	"github.com/UnknownOlympus/pitstop/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestGoogleProvider_Geocode(t *testing.T) {
	mockClient := mocks.NewGoogleAPIClient(t)
	provider := geocoding.NewGoogleProvider(mockClient, "us", slog.Default())
	ctx := t.Context()

	t.Run("api returns error", func(t *testing.T) {
		req := geocoding.NewGoogleRequest("90210", "us")

		mockClient.On("Geocode", ctx, req).Return(nil, assert.AnError).Once()

		_, err := provider.Geocode(ctx, "90210")

		require.ErrorIs(t, err, assert.AnError)
		require.NotErrorIs(t, err, geocoding.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("api return empty response", func(t *testing.T) {
		req := geocoding.NewGoogleRequest("00000", "us")

		mockClient.On("Geocode", ctx, req).Return(nil, nil).Once()

		coords, err := provider.Geocode(ctx, "00000")

		require.Nil(t, coords)
		require.ErrorIs(t, err, geocoding.ErrEmptyResponse)
		require.ErrorIs(t, err, geocoding.ErrNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("successful geocoding", func(t *testing.T) {
		req := geocoding.NewGoogleRequest("90210", "us")
		mockResponse := []maps.GeocodingResult{
			{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 34.0901, Lng: -118.4065}}},
		}

		mockClient.On("Geocode", ctx, req).Return(mockResponse, nil).Once()

		coords, err := provider.Geocode(ctx, "90210")

		require.NoError(t, err)
		require.NotNil(t, coords)
		require.InDelta(t, 34.0901, coords.Latitude, 1e-9)
		require.InDelta(t, -118.4065, coords.Longitude, 1e-9)
		mockClient.AssertExpectations(t)
	})
}

func TestNewGoogleRequest(t *testing.T) {
	req := geocoding.NewGoogleRequest("90210", "us")

	assert.Empty(t, req.Address)
	assert.Equal(t, "90210", req.Components[maps.ComponentPostalCode])
	assert.Equal(t, "us", req.Components[maps.ComponentCountry])
}
