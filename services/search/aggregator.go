package search

import "tripnest/models"

// Aggregator merges successive supplier result pages into one deduplicated,
// insertion-ordered collection. Appending the same page twice is a no-op the
// second time, so page replay after a flaky fetch is harmless.
//
// Display paging is client-side: the visible window grows in steps of
// pageSize regardless of how large the fetched batches were.
type Aggregator struct {
	pageSize  int
	hotels    []models.HotelSummary
	seen      map[string]struct{}
	displayed int // target size of the visible window
}

// NewAggregator returns an empty aggregator with the given display page size.
func NewAggregator(pageSize int) *Aggregator {
	if pageSize <= 0 {
		pageSize = 10
	}
	a := &Aggregator{pageSize: pageSize}
	a.Reset()
	return a
}

// NewAggregatorFrom rehydrates an aggregator from persisted trip state.
func NewAggregatorFrom(hotels []models.HotelSummary, displayed, pageSize int) *Aggregator {
	a := NewAggregator(pageSize)
	a.hotels = hotels
	a.seen = make(map[string]struct{}, len(hotels))
	for _, h := range hotels {
		a.seen[h.HotelID] = struct{}{}
	}
	if displayed > a.displayed {
		a.displayed = displayed
	}
	return a
}

// Reset clears all held results and shrinks the window to one page.
func (a *Aggregator) Reset() {
	a.hotels = nil
	a.seen = make(map[string]struct{})
	a.displayed = a.pageSize
}

// Append merges a new page. Entries whose hotelId was already held, or
// already emitted earlier in the same page, are skipped; a held entry is
// never replaced even if the new copy carries fresher pricing. Returns the
// number of entries actually added.
func (a *Aggregator) Append(page []models.HotelSummary) int {
	added := 0
	for _, h := range page {
		if h.HotelID == "" {
			continue
		}
		if _, dup := a.seen[h.HotelID]; dup {
			continue
		}
		a.seen[h.HotelID] = struct{}{}
		a.hotels = append(a.hotels, h)
		added++
	}
	return added
}

// All returns every held result in first-seen order.
func (a *Aggregator) All() []models.HotelSummary {
	return a.hotels
}

// Len returns the number of held results.
func (a *Aggregator) Len() int {
	return len(a.hotels)
}

// Displayed returns the current visible-window target.
func (a *Aggregator) Displayed() int {
	return a.displayed
}

// Visible returns the slice of held results inside the display window.
func (a *Aggregator) Visible() []models.HotelSummary {
	n := a.displayed
	if n > len(a.hotels) {
		n = len(a.hotels)
	}
	return a.hotels[:n]
}

// ShowMore widens the display window by one page and returns the new target.
func (a *Aggregator) ShowMore() int {
	a.displayed += a.pageSize
	return a.displayed
}

// HasMore reports whether held results extend beyond the visible window.
func (a *Aggregator) HasMore() bool {
	return len(a.hotels) > a.displayed
}
