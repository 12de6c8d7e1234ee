package places

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"googlemaps.github.io/maps"

	"github.com/food-finder/api-go/types"
)

const (
	defaultCallTimeout = 10 * time.Second

	// Google caps nearby search at 50km.
	MaxProviderRadiusMeters = 50000
)

// GoogleProvider implements Provider on top of the official Google Maps
// Services client. All outbound calls share one rate limiter and carry a
// bounded timeout so a hanging call degrades like a failed one instead of
// stalling the pipeline.
type GoogleProvider struct {
	client  *maps.Client
	limiter *rate.Limiter
	timeout time.Duration
}

func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleProvider{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(10), 10),
		timeout: defaultCallTimeout,
	}, nil
}

func (g *GoogleProvider) FindPlaceFromQuery(ctx context.Context, query string) ([]types.Place, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := g.client.FindPlaceFromText(ctx, &maps.FindPlaceFromTextRequest{
		Input:     query,
		InputType: maps.FindPlaceFromTextInputTypeTextQuery,
		Fields: []maps.PlaceSearchFieldMask{
			maps.PlaceSearchFieldMaskName,
			maps.PlaceSearchFieldMaskGeometry,
			maps.PlaceSearchFieldMaskFormattedAddress,
			maps.PlaceSearchFieldMaskRating,
			maps.PlaceSearchFieldMaskUserRatingsTotal,
			maps.PlaceSearchFieldMaskPlaceID,
		},
	})
	if err != nil {
		return nil, &types.ProviderError{Op: "findPlaceFromQuery", Status: string(statusFromError(err))}
	}

	results := make([]types.Place, 0, len(resp.Candidates))
	for _, c := range resp.Candidates {
		results = append(results, normalizeResult(c))
	}
	return results, nil
}

func (g *GoogleProvider) NearbySearch(ctx context.Context, center types.LatLng, radiusMeters float64, category string) (SearchPage, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()
	if err := g.limiter.Wait(ctx); err != nil {
		return SearchPage{Status: StatusUnknown}, err
	}

	resp, err := g.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: center.Lat, Lng: center.Lng},
		Radius:   uint(radiusMeters),
		Type:     maps.PlaceType(category),
	})
	if err != nil {
		status := statusFromError(err)
		if status == StatusZeroResults {
			return SearchPage{Status: StatusZeroResults}, nil
		}
		return SearchPage{Status: status}, err
	}
	return g.searchPage(resp.Results), nil
}

func (g *GoogleProvider) TextSearch(ctx context.Context, query string, center types.LatLng, radiusMeters float64) (SearchPage, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()
	if err := g.limiter.Wait(ctx); err != nil {
		return SearchPage{Status: StatusUnknown}, err
	}

	resp, err := g.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    query,
		Location: &maps.LatLng{Lat: center.Lat, Lng: center.Lng},
		Radius:   uint(radiusMeters),
	})
	if err != nil {
		status := statusFromError(err)
		if status == StatusZeroResults {
			return SearchPage{Status: StatusZeroResults}, nil
		}
		return SearchPage{Status: status}, err
	}
	return g.searchPage(resp.Results), nil
}

func (g *GoogleProvider) Details(ctx context.Context, placeID string) (types.Place, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()
	if err := g.limiter.Wait(ctx); err != nil {
		return types.Place{}, err
	}

	resp, err := g.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskGeometry,
			maps.PlaceDetailsFieldMaskFormattedAddress,
			maps.PlaceDetailsFieldMaskRatings,
			maps.PlaceDetailsFieldMaskUserRatingsTotal,
			maps.PlaceDetailsFieldMaskPlaceID,
			maps.PlaceDetailsFieldMaskTypes,
			maps.PlaceDetailsFieldMaskPriceLevel,
			maps.PlaceDetailsFieldMaskReviews,
			maps.PlaceDetailsFieldMaskPermanentlyClosed,
		},
	})
	if err != nil {
		return types.Place{}, &types.ProviderError{Op: "getDetails", Status: string(statusFromError(err))}
	}

	return types.Place{
		ID:                resp.PlaceID,
		Name:              resp.Name,
		Address:           resp.FormattedAddress,
		Location:          normalizeLocation(resp.Geometry),
		Rating:            float64(resp.Rating),
		RatingCount:       resp.UserRatingsTotal,
		PriceLevel:        resp.PriceLevel,
		Categories:        resp.Types,
		PermanentlyClosed: resp.PermanentlyClosed,
	}, nil
}

func (g *GoogleProvider) searchPage(results []maps.PlacesSearchResult) SearchPage {
	page := SearchPage{Status: StatusOK}
	if len(results) == 0 {
		page.Status = StatusZeroResults
		return page
	}
	page.Places = make([]types.Place, 0, len(results))
	for _, r := range results {
		page.Places = append(page.Places, normalizeResult(r))
	}
	return page
}

func (g *GoogleProvider) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.timeout)
}

// normalizeResult converts a provider result into the canonical Place.
// The rest of the pipeline never sees provider-specific representations.
func normalizeResult(r maps.PlacesSearchResult) types.Place {
	address := r.FormattedAddress
	if address == "" {
		address = r.Vicinity
	}
	return types.Place{
		ID:                r.PlaceID,
		Name:              r.Name,
		Address:           address,
		Location:          normalizeLocation(r.Geometry),
		Rating:            float64(r.Rating),
		RatingCount:       r.UserRatingsTotal,
		PriceLevel:        r.PriceLevel,
		Categories:        r.Types,
		PermanentlyClosed: r.PermanentlyClosed,
	}
}

// normalizeLocation returns nil for a missing geometry. The zero value
// (0,0) only comes back when the geometry field was absent.
func normalizeLocation(g maps.AddressGeometry) *types.LatLng {
	if g.Location.Lat == 0 && g.Location.Lng == 0 {
		return nil
	}
	return &types.LatLng{Lat: g.Location.Lat, Lng: g.Location.Lng}
}

// statusFromError recovers the provider status embedded in a maps client
// error. The client folds non-OK statuses into the error message.
func statusFromError(err error) Status {
	msg := err.Error()
	for _, s := range []Status{
		StatusZeroResults,
		StatusOverQueryLimit,
		StatusRequestDenied,
		StatusInvalidRequest,
		StatusNotFound,
	} {
		if strings.Contains(msg, string(s)) {
			return s
		}
	}
	return StatusUnknown
}
