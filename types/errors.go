package types

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResult means both the structured search and the fallback
	// text search came back with nothing.
	ErrEmptyResult = errors.New("no places found for any selected category")

	// ErrEmptyQuery means a blank navigation query.
	ErrEmptyQuery = errors.New("please enter a search term")

	// ErrNoLocationData means the top navigation match lacks geometry.
	ErrNoLocationData = errors.New("selected place has no location data")

	// ErrMissingReferencePoint means a distance sort was requested
	// without a reference point.
	ErrMissingReferencePoint = errors.New("distance sort requires a reference point")
)

// ProviderError is a places-provider failure with a non-OK status other
// than ZERO_RESULTS.
type ProviderError struct {
	Op     string
	Status string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("places provider: %s failed with status %s", e.Op, e.Status)
}
