package places

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/food-finder/api-go/types"
)

// Enricher attaches review data and derived scores to raw places. It
// never fails hard: a bad record comes back with zeroed derived fields
// instead of aborting the batch.
type Enricher struct {
	provider Provider
	store    ReviewStore // optional, nil disables caching
	keyword  string
	rng      *rand.Rand
}

// NewEnricher builds an enricher. rng may be nil, in which case a
// time-seeded source is used; tests inject a seeded one.
func NewEnricher(provider Provider, store ReviewStore, keyword string, rng *rand.Rand) *Enricher {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Enricher{
		provider: provider,
		store:    store,
		keyword:  keyword,
		rng:      rng,
	}
}

// EnrichAll enriches a batch sequentially, one lookup in flight at a
// time.
func (e *Enricher) EnrichAll(ctx context.Context, places []types.Place) []types.Place {
	enriched := make([]types.Place, 0, len(places))
	for _, place := range places {
		enriched = append(enriched, e.Enrich(ctx, place))
	}
	return enriched
}

// Enrich fetches extended fields for one place, attaches a review set and
// computes the derived scores.
func (e *Enricher) Enrich(ctx context.Context, place types.Place) types.Place {
	if details, err := e.provider.Details(ctx, place.ID); err != nil {
		log.Printf("failed to get details for place %s (%s): %v", place.Name, place.ID, err)
	} else {
		place = mergeDetails(place, details)
	}

	place.Reviews = e.reviewsFor(ctx, place)
	place.WeightedRating = WeightedRating(place.Rating, place.RatingCount)
	place.KeywordCount = CountKeyword(place.Reviews, e.keyword)
	return place
}

// reviewsFor returns the cached review set for a place, generating and
// storing a fresh one when absent. Store failures degrade to local
// generation. Two callers racing on first enrichment may both write;
// last write wins.
func (e *Enricher) reviewsFor(ctx context.Context, place types.Place) []types.Review {
	if e.store != nil {
		reviews, ok, err := e.store.GetReviews(ctx, place.ID)
		if err != nil {
			log.Printf("review cache read failed for place %s: %v", place.ID, err)
		} else if ok {
			return reviews
		}
	}

	reviews := generateReviews(e.rng, place.Rating)

	if e.store != nil {
		if err := e.store.PutReviews(ctx, place, reviews); err != nil {
			log.Printf("review cache write failed for place %s: %v", place.ID, err)
		}
	}
	return reviews
}

// mergeDetails overlays detail-lookup fields onto the originally known
// record, keeping originals where the lookup came back empty.
func mergeDetails(place, details types.Place) types.Place {
	if details.Name != "" {
		place.Name = details.Name
	}
	if details.Address != "" {
		place.Address = details.Address
	}
	if details.Location != nil {
		place.Location = details.Location
	}
	if details.Rating != 0 {
		place.Rating = details.Rating
	}
	if details.RatingCount != 0 {
		place.RatingCount = details.RatingCount
	}
	if details.PriceLevel != 0 {
		place.PriceLevel = details.PriceLevel
	}
	if len(details.Categories) != 0 {
		place.Categories = details.Categories
	}
	if details.PermanentlyClosed {
		place.PermanentlyClosed = true
	}
	return place
}
