package places

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"googlemaps.github.io/maps"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want Status
	}{
		{errors.New("maps: ZERO_RESULTS - "), StatusZeroResults},
		{errors.New("maps: OVER_QUERY_LIMIT - quota exceeded"), StatusOverQueryLimit},
		{errors.New("maps: REQUEST_DENIED - key invalid"), StatusRequestDenied},
		{errors.New("maps: INVALID_REQUEST - "), StatusInvalidRequest},
		{errors.New("maps: NOT_FOUND - "), StatusNotFound},
		{errors.New("context deadline exceeded"), StatusUnknown},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, statusFromError(tc.err), tc.err.Error())
	}
}

func TestNormalizeResult(t *testing.T) {
	t.Run("vicinity used when formatted address is absent", func(t *testing.T) {
		place := normalizeResult(maps.PlacesSearchResult{
			PlaceID:  "p1",
			Name:     "Diner",
			Vicinity: "12 Main St",
			Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 40.7, Lng: -74.0}},
		})
		assert.Equal(t, "12 Main St", place.Address)
	})

	t.Run("missing geometry yields nil location", func(t *testing.T) {
		place := normalizeResult(maps.PlacesSearchResult{PlaceID: "p1"})
		assert.Nil(t, place.Location)
	})

	t.Run("rating and counts carried over", func(t *testing.T) {
		place := normalizeResult(maps.PlacesSearchResult{
			PlaceID:          "p1",
			Rating:           4.5,
			UserRatingsTotal: 120,
			PriceLevel:       3,
			Types:            []string{"restaurant"},
			Geometry:         maps.AddressGeometry{Location: maps.LatLng{Lat: 40.7, Lng: -74.0}},
		})
		assert.Equal(t, 4.5, place.Rating)
		assert.Equal(t, 120, place.RatingCount)
		assert.Equal(t, 3, place.PriceLevel)
		assert.Equal(t, []string{"restaurant"}, place.Categories)
	})
}
