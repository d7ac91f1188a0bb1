package trip

import (
	"context"
	"time"

	"tripnest/models"
	"tripnest/services/cart"
	"tripnest/services/search"

	"github.com/google/uuid"
)

// TripState is the explicit, owned funnel state for one traveler: search
// criteria, aggregated results, the visible window and the selection cart.
// All reads and mutations flow through TripService; UI layers hold only the
// trip ID.
type TripState struct {
	TripID     string                `json:"tripId"`
	Generation int                   `json:"generation"`
	Params     models.SearchParams   `json:"params"`
	Hotels     []models.HotelSummary `json:"hotels"`
	Displayed  int                   `json:"displayed"`
	Cart       cart.Cart             `json:"cart"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// Visible returns the results inside the display window.
func (t *TripState) Visible() []models.HotelSummary {
	n := t.Displayed
	if n > len(t.Hotels) {
		n = len(t.Hotels)
	}
	return t.Hotels[:n]
}

// TripService defines the mutate/read entry points for trip state.
type TripService interface {
	Start(ctx context.Context) (*TripState, error)
	Get(ctx context.Context, tripID string) (*TripState, error)
	UpdateQuery(ctx context.Context, tripID string, patch models.SearchParamsPatch) (*TripState, error)
	ResetSearch(ctx context.Context, tripID string) (*TripState, error)
	AppendResults(ctx context.Context, tripID string, generation int, page []models.HotelSummary) (*TripState, error)
	ShowMore(ctx context.Context, tripID string) (*TripState, error)
	AddToCart(ctx context.Context, tripID string, offer models.RoomOffer, pref models.GuestPreference) (*TripState, error)
	RemoveFromCart(ctx context.Context, tripID string, index int) (*TripState, error)
	ClearCart(ctx context.Context, tripID string) (*TripState, error)
}

// DefaultTripService implements TripService on a StateStore.
type DefaultTripService struct {
	Store    StateStore
	PageSize int
}

func (s *DefaultTripService) pageSize() int {
	if s.PageSize <= 0 {
		return 10
	}
	return s.PageSize
}

func (s *DefaultTripService) Start(ctx context.Context) (*TripState, error) {
	state := &TripState{
		TripID:    uuid.New().String(),
		Displayed: s.pageSize(),
		CreatedAt: time.Now(),
	}
	if err := s.Store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *DefaultTripService) Get(ctx context.Context, tripID string) (*TripState, error) {
	return s.Store.Get(ctx, tripID)
}

func (s *DefaultTripService) UpdateQuery(ctx context.Context, tripID string, patch models.SearchParamsPatch) (*TripState, error) {
	state, err := s.Store.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	state.Params = search.MergeQuery(state.Params, patch)
	if err := s.Store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// ResetSearch drops held results and bumps the generation so that pages
// fetched under the previous criteria can no longer merge in.
func (s *DefaultTripService) ResetSearch(ctx context.Context, tripID string) (*TripState, error) {
	state, err := s.Store.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	state.Hotels = nil
	state.Displayed = s.pageSize()
	state.Generation++
	if err := s.Store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// AppendResults merges a fetched page into the trip, provided it was fetched
// under the trip's current generation.
func (s *DefaultTripService) AppendResults(ctx context.Context, tripID string, generation int, page []models.HotelSummary) (*TripState, error) {
	state, err := s.Store.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if generation != state.Generation {
		return nil, ErrStaleGeneration
	}

	agg := search.NewAggregatorFrom(state.Hotels, state.Displayed, s.pageSize())
	agg.Append(page)
	state.Hotels = agg.All()
	state.Displayed = agg.Displayed()

	if err := s.Store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *DefaultTripService) ShowMore(ctx context.Context, tripID string) (*TripState, error) {
	state, err := s.Store.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	state.Displayed += s.pageSize()
	if err := s.Store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *DefaultTripService) AddToCart(ctx context.Context, tripID string, offer models.RoomOffer, pref models.GuestPreference) (*TripState, error) {
	state, err := s.Store.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := state.Cart.Add(offer, pref); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *DefaultTripService) RemoveFromCart(ctx context.Context, tripID string, index int) (*TripState, error) {
	state, err := s.Store.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if err := state.Cart.Remove(index); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *DefaultTripService) ClearCart(ctx context.Context, tripID string) (*TripState, error) {
	state, err := s.Store.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}
	state.Cart.Clear()
	if err := s.Store.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}
