// Package search orchestrates provider queries: multi-radius nearby
// aggregation with a text-search fallback, and free-text navigation.
package search

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/food-finder/api-go/places"
	"github.com/food-finder/api-go/types"
)

const (
	// Per-category result quota. Once reached, no further radius
	// strategies are tried for that category.
	categoryResultQuota = 50

	// Nearness gate for text-search fallback results, in degrees. This
	// is a deliberately crude straight-line coordinate check, not a
	// Haversine distance; the original behaves the same way.
	fallbackMaxDegreeDelta = 0.1
)

// Aggregator fans out nearby-search queries per category and widening
// radius, merging and deduplicating the results. Each Search call owns
// its accumulator state.
type Aggregator struct {
	provider places.Provider
}

func NewAggregator(provider places.Provider) *Aggregator {
	return &Aggregator{provider: provider}
}

// Search runs the full aggregation: per-category widening-radius nearby
// searches, global dedup, and a concurrent text-search fallback when the
// structured search finds nothing. Returns types.ErrEmptyResult only when
// both passes come up empty.
func (a *Aggregator) Search(ctx context.Context, req types.SearchRequest) ([]types.Place, error) {
	categories := req.Categories
	if len(categories) == 0 {
		categories = []string{"restaurant"}
	}

	var all []types.Place
	for _, category := range categories {
		all = append(all, a.searchCategory(ctx, req.Center, req.BaseRadiusMeters, category)...)
	}

	unique := dedupeByID(all)
	if len(unique) > 0 {
		return unique, nil
	}

	log.Printf("no nearby results for any category, trying fallback text search")
	unique = a.fallbackTextSearch(ctx, req.Center, req.BaseRadiusMeters, categories)
	if len(unique) == 0 {
		return nil, types.ErrEmptyResult
	}
	return unique, nil
}

// searchCategory tries up to three radius strategies in order, keeping
// results whose identifier was not already collected for this category.
// A failed or non-OK strategy is logged and contributes nothing; it never
// fails the category.
func (a *Aggregator) searchCategory(ctx context.Context, center types.LatLng, baseRadius float64, category string) []types.Place {
	radii := []float64{
		baseRadius,
		math.Min(baseRadius*1.5, places.MaxProviderRadiusMeters),
		math.Min(baseRadius*2, places.MaxProviderRadiusMeters),
	}

	var collected []types.Place
	seen := make(map[string]bool)

	for _, radius := range radii {
		page, err := a.provider.NearbySearch(ctx, center, radius, category)
		if err != nil {
			log.Printf("%s search failed at radius %.0f: status %s: %v", category, radius, page.Status, err)
			continue
		}

		for _, place := range page.Places {
			if seen[place.ID] {
				continue
			}
			seen[place.ID] = true
			collected = append(collected, place)
		}

		if len(collected) >= categoryResultQuota {
			break
		}
	}

	return collected
}

// fallbackTextSearch issues one free-text query per category, all
// concurrently, and keeps results still roughly near the center. Results
// are merged only after every query has completed.
func (a *Aggregator) fallbackTextSearch(ctx context.Context, center types.LatLng, radius float64, categories []string) []types.Place {
	var (
		mu  sync.Mutex
		all []types.Place
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, category := range categories {
		query := fmt.Sprintf("%s near %s, %s",
			category,
			strconv.FormatFloat(center.Lat, 'f', -1, 64),
			strconv.FormatFloat(center.Lng, 'f', -1, 64))

		g.Go(func() error {
			page, err := a.provider.TextSearch(ctx, query, center, radius)
			if err != nil {
				log.Printf("fallback text search failed for %q: status %s: %v", query, page.Status, err)
				return nil
			}

			nearby := make([]types.Place, 0, len(page.Places))
			for _, place := range page.Places {
				if isRoughlyNear(place, center) {
					nearby = append(nearby, place)
				}
			}

			mu.Lock()
			all = append(all, nearby...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers swallow their own failures

	return dedupeByID(all)
}

// isRoughlyNear checks that a place sits within ~0.1 degrees of the
// center by straight-line coordinate delta. Places without a location
// cannot be mapped and are dropped here.
func isRoughlyNear(place types.Place, center types.LatLng) bool {
	if place.Location == nil {
		return false
	}
	dLat := place.Location.Lat - center.Lat
	dLng := place.Location.Lng - center.Lng
	return math.Sqrt(dLat*dLat+dLng*dLng) < fallbackMaxDegreeDelta
}

// dedupeByID keeps the first occurrence of every identifier, preserving
// arrival order. Mandatory after every merge.
func dedupeByID(placeList []types.Place) []types.Place {
	if len(placeList) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(placeList))
	unique := make([]types.Place, 0, len(placeList))
	for _, place := range placeList {
		if seen[place.ID] {
			continue
		}
		seen[place.ID] = true
		unique = append(unique, place)
	}
	return unique
}
