// Package filter applies threshold filters and sort orders to enriched
// place sets. Both operations are pure: they return new slices and never
// mutate their input, so the unfiltered set stays retrievable for
// re-filtering with different criteria.
package filter

import (
	"github.com/food-finder/api-go/places"
	"github.com/food-finder/api-go/types"
)

// Apply returns the places surviving all enabled checks. Permanently
// closed places are excluded unconditionally.
func Apply(placeList []types.Place, criteria types.FilterCriteria) []types.Place {
	filtered := make([]types.Place, 0, len(placeList))
	for _, place := range placeList {
		if survives(place, criteria) {
			filtered = append(filtered, place)
		}
	}
	return filtered
}

func survives(place types.Place, criteria types.FilterCriteria) bool {
	if place.PermanentlyClosed {
		return false
	}

	if criteria.WeightedRatingEnabled {
		if place.WeightedRating < criteria.WeightedRatingMin {
			return false
		}
	}

	if criteria.KeywordEnabled && criteria.Keyword != "" {
		// The criteria keyword may differ from the one the place was
		// enriched with, so the count is recomputed from the reviews.
		count := places.CountKeyword(place.Reviews, criteria.Keyword)
		if count < criteria.KeywordCountMin || count > criteria.KeywordCountMax {
			return false
		}
	}

	if criteria.PriceLevelEnabled {
		if criteria.PriceLevelMin > 0 && place.PriceLevel < criteria.PriceLevelMin {
			return false
		}
		if criteria.PriceLevelMax > 0 && place.PriceLevel > criteria.PriceLevelMax {
			return false
		}
	}

	return true
}
