package search

import (
	"context"
	"strings"

	"github.com/food-finder/api-go/places"
	"github.com/food-finder/api-go/types"
)

// Resolver turns a free-text query into a single location. Unlike the
// aggregator it is a single attempt: no fallback, no widened retries.
type Resolver struct {
	provider places.Provider
}

func NewResolver(provider places.Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Resolve asks the provider for the top match of the query and returns
// its coordinates and display name.
func (r *Resolver) Resolve(ctx context.Context, query string) (types.NavigationResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return types.NavigationResult{}, types.ErrEmptyQuery
	}

	candidates, err := r.provider.FindPlaceFromQuery(ctx, query)
	if err != nil {
		return types.NavigationResult{}, err
	}
	if len(candidates) == 0 {
		return types.NavigationResult{}, &types.ProviderError{Op: "findPlaceFromQuery", Status: string(places.StatusZeroResults)}
	}

	top := candidates[0]
	if top.Location == nil {
		return types.NavigationResult{}, types.ErrNoLocationData
	}

	name := top.Name
	if name == "" {
		name = query
	}
	return types.NavigationResult{
		Location:    *top.Location,
		DisplayName: name,
	}, nil
}
