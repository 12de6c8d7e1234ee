package types

// FilterCriteria holds the user-chosen thresholds. Each check is applied
// only when its toggle is enabled; permanently closed places are excluded
// unconditionally.
type FilterCriteria struct {
	WeightedRatingEnabled bool    `json:"weightedRatingEnabled"`
	WeightedRatingMin     float64 `json:"weightedRatingMin"`

	KeywordEnabled  bool   `json:"keywordEnabled"`
	Keyword         string `json:"keyword"`
	KeywordCountMin int    `json:"keywordCountMin"`
	KeywordCountMax int    `json:"keywordCountMax"`

	// A zero bound means unbounded on that side.
	PriceLevelEnabled bool `json:"priceLevelEnabled"`
	PriceLevelMin     int  `json:"priceLevelMin"`
	PriceLevelMax     int  `json:"priceLevelMax"`
}

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortByName            SortKey = "name"
	SortByNameDesc        SortKey = "name-desc"
	SortByRating          SortKey = "rating"
	SortByRatingAsc       SortKey = "rating-asc"
	SortByWeightedRating  SortKey = "weighted-rating"
	SortByWeightedAsc     SortKey = "weighted-rating-asc"
	SortByReviewCount     SortKey = "review-count"
	SortByReviewCountAsc  SortKey = "review-count-asc"
	SortByKeywordCount    SortKey = "keyword-count"
	SortByKeywordCountAsc SortKey = "keyword-count-asc"
	SortByPriceLevel      SortKey = "price-level"
	SortByPriceLevelAsc   SortKey = "price-level-asc"
	SortByDistance        SortKey = "distance"
)
