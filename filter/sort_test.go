package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/food-finder/api-go/types"
)

func names(placeList []types.Place) []string {
	out := make([]string, len(placeList))
	for i, p := range placeList {
		out[i] = p.Name
	}
	return out
}

func ids(placeList []types.Place) []string {
	out := make([]string, len(placeList))
	for i, p := range placeList {
		out[i] = p.ID
	}
	return out
}

func TestSortByNameIsStable(t *testing.T) {
	input := []types.Place{
		{ID: "1", Name: "B"},
		{ID: "2", Name: "A"},
		{ID: "3", Name: "A"},
	}

	sorted, err := Sort(input, types.SortByName, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "A", "B"}, names(sorted))
	// Equal names keep their original relative order.
	assert.Equal(t, []string{"2", "3", "1"}, ids(sorted))
	// Input untouched.
	assert.Equal(t, []string{"1", "2", "3"}, ids(input))
}

func TestSortByNameDesc(t *testing.T) {
	input := []types.Place{
		{Name: "Alpha"},
		{Name: "Charlie"},
		{Name: "Bravo"},
	}

	sorted, err := Sort(input, types.SortByNameDesc, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Charlie", "Bravo", "Alpha"}, names(sorted))
}

func TestSortNumericKeys(t *testing.T) {
	input := []types.Place{
		{ID: "low", Rating: 2.0, WeightedRating: 40, RatingCount: 20, KeywordCount: 1, PriceLevel: 1},
		{ID: "missing"},
		{ID: "high", Rating: 4.8, WeightedRating: 960, RatingCount: 200, KeywordCount: 9, PriceLevel: 4},
	}

	tests := []struct {
		key  types.SortKey
		want []string
	}{
		{types.SortByRating, []string{"high", "low", "missing"}},
		{types.SortByRatingAsc, []string{"missing", "low", "high"}},
		{types.SortByWeightedRating, []string{"high", "low", "missing"}},
		{types.SortByWeightedAsc, []string{"missing", "low", "high"}},
		{types.SortByReviewCount, []string{"high", "low", "missing"}},
		{types.SortByReviewCountAsc, []string{"missing", "low", "high"}},
		{types.SortByKeywordCount, []string{"high", "low", "missing"}},
		{types.SortByKeywordCountAsc, []string{"missing", "low", "high"}},
		{types.SortByPriceLevel, []string{"high", "low", "missing"}},
		{types.SortByPriceLevelAsc, []string{"missing", "low", "high"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.key), func(t *testing.T) {
			sorted, err := Sort(input, tc.key, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ids(sorted))
		})
	}
}

func TestSortByDistance(t *testing.T) {
	reference := types.LatLng{Lat: 40.7580, Lng: -73.9855}
	input := []types.Place{
		{ID: "far", Location: &types.LatLng{Lat: 40.9, Lng: -73.9}},
		{ID: "unmapped"},
		{ID: "close", Location: &types.LatLng{Lat: 40.7584, Lng: -73.9857}},
		{ID: "mid", Location: &types.LatLng{Lat: 40.7800, Lng: -73.9600}},
	}

	t.Run("orders ascending with unmapped last", func(t *testing.T) {
		sorted, err := Sort(input, types.SortByDistance, &reference)
		require.NoError(t, err)
		assert.Equal(t, []string{"close", "mid", "far", "unmapped"}, ids(sorted))
	})

	t.Run("fails without a reference point", func(t *testing.T) {
		_, err := Sort(input, types.SortByDistance, nil)
		assert.ErrorIs(t, err, types.ErrMissingReferencePoint)
	})
}

func TestSortDefaultsToName(t *testing.T) {
	input := []types.Place{
		{Name: "Zeta"},
		{Name: "Alpha"},
	}

	for _, key := range []types.SortKey{"", "bogus-key"} {
		sorted, err := Sort(input, key, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha", "Zeta"}, names(sorted), "key %q", key)
	}
}
