package filter

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/food-finder/api-go/geo"
	"github.com/food-finder/api-go/types"
)

// Sort returns a new slice ordered by the given key. The sort is stable,
// name comparison is locale-aware, and missing numeric values count as 0.
// Distance ordering needs a reference point and fails with
// types.ErrMissingReferencePoint without one.
func Sort(placeList []types.Place, key types.SortKey, reference *types.LatLng) ([]types.Place, error) {
	sorted := make([]types.Place, len(placeList))
	copy(sorted, placeList)

	switch key {
	case types.SortByName, "":
		byName(sorted, false)
	case types.SortByNameDesc:
		byName(sorted, true)
	case types.SortByRating:
		byValue(sorted, func(p types.Place) float64 { return p.Rating }, true)
	case types.SortByRatingAsc:
		byValue(sorted, func(p types.Place) float64 { return p.Rating }, false)
	case types.SortByWeightedRating:
		byValue(sorted, func(p types.Place) float64 { return p.WeightedRating }, true)
	case types.SortByWeightedAsc:
		byValue(sorted, func(p types.Place) float64 { return p.WeightedRating }, false)
	case types.SortByReviewCount:
		byValue(sorted, func(p types.Place) float64 { return float64(p.RatingCount) }, true)
	case types.SortByReviewCountAsc:
		byValue(sorted, func(p types.Place) float64 { return float64(p.RatingCount) }, false)
	case types.SortByKeywordCount:
		byValue(sorted, func(p types.Place) float64 { return float64(p.KeywordCount) }, true)
	case types.SortByKeywordCountAsc:
		byValue(sorted, func(p types.Place) float64 { return float64(p.KeywordCount) }, false)
	case types.SortByPriceLevel:
		byValue(sorted, func(p types.Place) float64 { return float64(p.PriceLevel) }, true)
	case types.SortByPriceLevelAsc:
		byValue(sorted, func(p types.Place) float64 { return float64(p.PriceLevel) }, false)
	case types.SortByDistance:
		if reference == nil {
			return nil, types.ErrMissingReferencePoint
		}
		byValue(sorted, func(p types.Place) float64 {
			if p.Location == nil {
				return math.Inf(1)
			}
			return geo.DistanceKm(*reference, *p.Location)
		}, false)
	default:
		byName(sorted, false)
	}

	return sorted, nil
}

func byName(placeList []types.Place, descending bool) {
	c := collate.New(language.Und)
	sort.SliceStable(placeList, func(i, j int) bool {
		cmp := c.CompareString(placeList[i].Name, placeList[j].Name)
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

func byValue(placeList []types.Place, value func(types.Place) float64, descending bool) {
	sort.SliceStable(placeList, func(i, j int) bool {
		if descending {
			return value(placeList[i]) > value(placeList[j])
		}
		return value(placeList[i]) < value(placeList[j])
	})
}
