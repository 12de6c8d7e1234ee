package types

import (
	"time"
)

// LatLng is the canonical coordinate pair used everywhere in the pipeline.
// Provider responses are normalized into this type at the adapter boundary.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Review is one synthetic review attached to a place during enrichment.
type Review struct {
	Rating float64   `json:"rating"`
	Text   string    `json:"text"`
	Author string    `json:"author"`
	Date   time.Time `json:"date"`
}

// Place is one discovered establishment. ID is the provider's stable
// identifier and the deduplication key for every merge step.
type Place struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Address           string   `json:"address"`
	Location          *LatLng  `json:"location"`
	Rating            float64  `json:"rating"`
	RatingCount       int      `json:"ratingCount"`
	PriceLevel        int      `json:"priceLevel"`
	Categories        []string `json:"categories"`
	PermanentlyClosed bool     `json:"permanentlyClosed"`

	// Reviews is the generated review set; immutable once attached.
	Reviews []Review `json:"reviews,omitempty"`

	// Derived scores. Never authoritative inputs: recomputed whenever
	// rating, rating count, reviews or the keyword configuration change.
	WeightedRating float64 `json:"weightedRating"`
	KeywordCount   int     `json:"keywordCount"`
}

// SearchRequest drives the aggregator.
type SearchRequest struct {
	Center           LatLng   `json:"center"`
	Categories       []string `json:"categories"`
	BaseRadiusMeters float64  `json:"baseRadiusMeters"`
}

// NavigationResult is the outcome of resolving a free-text query to a
// single location.
type NavigationResult struct {
	Location    LatLng `json:"location"`
	DisplayName string `json:"displayName"`
}
