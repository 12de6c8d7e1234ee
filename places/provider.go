// Package places integrates the external places directory provider and
// enriches raw results with review data and derived scores.
package places

import (
	"context"

	"github.com/food-finder/api-go/types"
)

// Status mirrors the provider's response status taxonomy.
type Status string

const (
	StatusOK             Status = "OK"
	StatusZeroResults    Status = "ZERO_RESULTS"
	StatusOverQueryLimit Status = "OVER_QUERY_LIMIT"
	StatusRequestDenied  Status = "REQUEST_DENIED"
	StatusInvalidRequest Status = "INVALID_REQUEST"
	StatusNotFound       Status = "NOT_FOUND"
	StatusUnknown        Status = "UNKNOWN_ERROR"
)

// SearchPage is one provider response: a status plus results already
// normalized into the canonical Place shape.
type SearchPage struct {
	Status Status
	Places []types.Place
}

// Provider is the narrow boundary to the external places directory.
// A ZERO_RESULTS response is a successful empty page, not an error.
type Provider interface {
	// FindPlaceFromQuery resolves a free-text query to candidate places.
	FindPlaceFromQuery(ctx context.Context, query string) ([]types.Place, error)

	// NearbySearch queries establishments of one category around a center.
	NearbySearch(ctx context.Context, center types.LatLng, radiusMeters float64, category string) (SearchPage, error)

	// TextSearch issues a free-text query biased to a center and radius.
	TextSearch(ctx context.Context, query string, center types.LatLng, radiusMeters float64) (SearchPage, error)

	// Details fetches extended fields for a single place by identifier.
	Details(ctx context.Context, placeID string) (types.Place, error)
}

// ReviewStore is the optional document cache for generated review sets.
// Absence or failure must degrade to local generation, never abort the
// caller.
type ReviewStore interface {
	GetReviews(ctx context.Context, placeID string) ([]types.Review, bool, error)
	PutReviews(ctx context.Context, place types.Place, reviews []types.Review) error
}
