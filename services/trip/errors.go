package trip

import "errors"

var (
	ErrTripNotFound = errors.New("trip not found or expired")

	// ErrStaleGeneration means results arrived for a search the traveler has
	// since reset; the page must be discarded, not merged.
	ErrStaleGeneration = errors.New("search results belong to a stale generation")
)
