package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/food-finder/api-go/types"
)

func TestApplyWithAllTogglesDisabled(t *testing.T) {
	input := []types.Place{
		{ID: "open"},
		{ID: "closed", PermanentlyClosed: true},
		{ID: "open2"},
	}

	filtered := Apply(input, types.FilterCriteria{})

	require.Len(t, filtered, 2)
	assert.Equal(t, "open", filtered[0].ID)
	assert.Equal(t, "open2", filtered[1].ID)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	input := []types.Place{
		{ID: "a", WeightedRating: 50},
		{ID: "b", WeightedRating: 150},
	}

	filtered := Apply(input, types.FilterCriteria{
		WeightedRatingEnabled: true,
		WeightedRatingMin:     100,
	})

	assert.Len(t, filtered, 1)
	assert.Len(t, input, 2, "input view must stay re-filterable")
	assert.Equal(t, "a", input[0].ID)
}

func TestApplyWeightedRatingBoundary(t *testing.T) {
	criteria := types.FilterCriteria{
		WeightedRatingEnabled: true,
		WeightedRatingMin:     100,
	}

	filtered := Apply([]types.Place{
		{ID: "below", WeightedRating: 99.9},
		{ID: "exact", WeightedRating: 100.0},
		{ID: "above", WeightedRating: 100.1},
	}, criteria)

	require.Len(t, filtered, 2)
	assert.Equal(t, "exact", filtered[0].ID)
	assert.Equal(t, "above", filtered[1].ID)
}

func TestApplyKeywordRange(t *testing.T) {
	reviews := func(text string) []types.Review {
		return []types.Review{{Text: text}}
	}

	input := []types.Place{
		{ID: "none", Reviews: reviews("lovely meal")},
		{ID: "one", Reviews: reviews("possible food poisoning here")},
		{ID: "two", Reviews: reviews("poisoning... poisoning everywhere")},
	}

	t.Run("max zero excludes any mention", func(t *testing.T) {
		filtered := Apply(input, types.FilterCriteria{
			KeywordEnabled:  true,
			Keyword:         "poisoning",
			KeywordCountMin: 0,
			KeywordCountMax: 0,
		})
		require.Len(t, filtered, 1)
		assert.Equal(t, "none", filtered[0].ID)
	})

	t.Run("bounded range", func(t *testing.T) {
		filtered := Apply(input, types.FilterCriteria{
			KeywordEnabled:  true,
			Keyword:         "poisoning",
			KeywordCountMin: 1,
			KeywordCountMax: 1,
		})
		require.Len(t, filtered, 1)
		assert.Equal(t, "one", filtered[0].ID)
	})

	t.Run("empty keyword disables the check", func(t *testing.T) {
		filtered := Apply(input, types.FilterCriteria{
			KeywordEnabled:  true,
			Keyword:         "",
			KeywordCountMax: 0,
		})
		assert.Len(t, filtered, 3)
	})

	t.Run("criteria keyword overrides the enrichment keyword", func(t *testing.T) {
		// KeywordCount was derived with a different keyword; the filter
		// recomputes against its own.
		stale := []types.Place{{ID: "p", KeywordCount: 7, Reviews: reviews("no mention at all")}}
		filtered := Apply(stale, types.FilterCriteria{
			KeywordEnabled:  true,
			Keyword:         "poisoning",
			KeywordCountMin: 0,
			KeywordCountMax: 0,
		})
		assert.Len(t, filtered, 1)
	})
}

func TestApplyPriceLevel(t *testing.T) {
	input := []types.Place{
		{ID: "cheap", PriceLevel: 1},
		{ID: "mid", PriceLevel: 2},
		{ID: "fancy", PriceLevel: 4},
		{ID: "unknown", PriceLevel: 0},
	}

	t.Run("zero bounds mean unbounded", func(t *testing.T) {
		filtered := Apply(input, types.FilterCriteria{PriceLevelEnabled: true})
		assert.Len(t, filtered, 4)
	})

	t.Run("min only", func(t *testing.T) {
		filtered := Apply(input, types.FilterCriteria{
			PriceLevelEnabled: true,
			PriceLevelMin:     2,
		})
		require.Len(t, filtered, 2)
		assert.Equal(t, "mid", filtered[0].ID)
		assert.Equal(t, "fancy", filtered[1].ID)
	})

	t.Run("max only", func(t *testing.T) {
		filtered := Apply(input, types.FilterCriteria{
			PriceLevelEnabled: true,
			PriceLevelMax:     2,
		})
		require.Len(t, filtered, 3)
	})

	t.Run("band", func(t *testing.T) {
		filtered := Apply(input, types.FilterCriteria{
			PriceLevelEnabled: true,
			PriceLevelMin:     1,
			PriceLevelMax:     2,
		})
		require.Len(t, filtered, 2)
	})
}

func TestApplyCombinesAllGates(t *testing.T) {
	input := []types.Place{
		{ID: "keeper", WeightedRating: 150, PriceLevel: 2, Reviews: []types.Review{{Text: "fine"}}},
		{ID: "lowScore", WeightedRating: 50, PriceLevel: 2, Reviews: []types.Review{{Text: "fine"}}},
		{ID: "pricey", WeightedRating: 150, PriceLevel: 4, Reviews: []types.Review{{Text: "fine"}}},
		{ID: "mentioned", WeightedRating: 150, PriceLevel: 2, Reviews: []types.Review{{Text: "food poisoning"}}},
		{ID: "closed", WeightedRating: 150, PriceLevel: 2, PermanentlyClosed: true},
	}

	filtered := Apply(input, types.FilterCriteria{
		WeightedRatingEnabled: true,
		WeightedRatingMin:     100,
		KeywordEnabled:        true,
		Keyword:               "poisoning",
		KeywordCountMax:       0,
		PriceLevelEnabled:     true,
		PriceLevelMax:         3,
	})

	require.Len(t, filtered, 1)
	assert.Equal(t, "keeper", filtered[0].ID)
}
