package trip

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tripnest/models"
)

// memStateStore is an in-memory StateStore for tests.
type memStateStore struct {
	mu    sync.Mutex
	trips map[string]TripState
}

func newMemStateStore() *memStateStore {
	return &memStateStore{trips: make(map[string]TripState)}
}

func (m *memStateStore) Save(_ context.Context, state *TripState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[state.TripID] = *state
	return nil
}

func (m *memStateStore) Get(_ context.Context, tripID string) (*TripState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.trips[tripID]
	if !ok {
		return nil, ErrTripNotFound
	}
	copied := state
	return &copied, nil
}

func (m *memStateStore) Delete(_ context.Context, tripID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.trips, tripID)
	return nil
}

func newService() *DefaultTripService {
	return &DefaultTripService{Store: newMemStateStore(), PageSize: 10}
}

func page(ids ...string) []models.HotelSummary {
	hotels := make([]models.HotelSummary, 0, len(ids))
	for _, id := range ids {
		hotels = append(hotels, models.HotelSummary{HotelID: id})
	}
	return hotels
}

func TestStartAndGet(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	state, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if state.TripID == "" {
		t.Fatal("expected a trip id")
	}

	loaded, err := svc.Get(ctx, state.TripID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.TripID != state.TripID {
		t.Errorf("expected trip %q, got %q", state.TripID, loaded.TripID)
	}

	if _, err := svc.Get(ctx, "missing"); !errors.Is(err, ErrTripNotFound) {
		t.Errorf("expected ErrTripNotFound, got %v", err)
	}
}

func TestUpdateQuery_PersistsMerge(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	state, _ := svc.Start(ctx)

	place := "p1"
	if _, err := svc.UpdateQuery(ctx, state.TripID, models.SearchParamsPatch{PlaceID: &place}); err != nil {
		t.Fatalf("UpdateQuery failed: %v", err)
	}

	checkin := "2026-09-01"
	updated, err := svc.UpdateQuery(ctx, state.TripID, models.SearchParamsPatch{CheckIn: &checkin})
	if err != nil {
		t.Fatalf("UpdateQuery failed: %v", err)
	}
	if updated.Params.PlaceID != "p1" || updated.Params.CheckIn != "2026-09-01" {
		t.Errorf("merge lost a field: %+v", updated.Params)
	}
}

func TestAppendResults_MergesAndDedups(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	state, _ := svc.Start(ctx)

	if _, err := svc.AppendResults(ctx, state.TripID, state.Generation, page("A", "B")); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	updated, err := svc.AppendResults(ctx, state.TripID, state.Generation, page("B", "C"))
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}

	if len(updated.Hotels) != 3 {
		t.Fatalf("expected 3 hotels, got %d", len(updated.Hotels))
	}
	for i, want := range []string{"A", "B", "C"} {
		if updated.Hotels[i].HotelID != want {
			t.Errorf("position %d: expected %q, got %q", i, want, updated.Hotels[i].HotelID)
		}
	}
}

func TestAppendResults_StaleGenerationDiscarded(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	state, _ := svc.Start(ctx)

	oldGen := state.Generation
	if _, err := svc.ResetSearch(ctx, state.TripID); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	// A page fetched under the old criteria arrives late.
	if _, err := svc.AppendResults(ctx, state.TripID, oldGen, page("A")); !errors.Is(err, ErrStaleGeneration) {
		t.Fatalf("expected ErrStaleGeneration, got %v", err)
	}

	loaded, _ := svc.Get(ctx, state.TripID)
	if len(loaded.Hotels) != 0 {
		t.Errorf("stale page must not merge, got %d hotels", len(loaded.Hotels))
	}
}

func TestResetSearch_ClearsResultsKeepsCart(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	state, _ := svc.Start(ctx)

	svc.AppendResults(ctx, state.TripID, state.Generation, page("A"))
	svc.AddToCart(ctx, state.TripID, models.RoomOffer{OfferID: "o1"}, models.PreferenceNone)

	reset, err := svc.ResetSearch(ctx, state.TripID)
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if len(reset.Hotels) != 0 {
		t.Errorf("expected no hotels after reset, got %d", len(reset.Hotels))
	}
	if reset.Generation != state.Generation+1 {
		t.Errorf("expected generation bump, got %d", reset.Generation)
	}
	if reset.Cart.Len() != 1 {
		t.Errorf("reset must not touch the cart, got %d items", reset.Cart.Len())
	}
}

func TestShowMore_WidensWindow(t *testing.T) {
	svc := &DefaultTripService{Store: newMemStateStore(), PageSize: 2}
	ctx := context.Background()
	state, _ := svc.Start(ctx)

	updated, _ := svc.AppendResults(ctx, state.TripID, state.Generation, page("A", "B", "C", "D", "E"))
	if len(updated.Visible()) != 2 {
		t.Fatalf("expected 2 visible, got %d", len(updated.Visible()))
	}

	updated, err := svc.ShowMore(ctx, state.TripID)
	if err != nil {
		t.Fatalf("ShowMore failed: %v", err)
	}
	if len(updated.Visible()) != 4 {
		t.Errorf("expected 4 visible, got %d", len(updated.Visible()))
	}
}

func TestCartMutationsThroughTrip(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	state, _ := svc.Start(ctx)

	offer := models.RoomOffer{OfferID: "o1", RetailRate: models.RetailRate{Total: 120, Currency: "USD"}}
	updated, err := svc.AddToCart(ctx, state.TripID, offer, models.PreferenceNonSmoking)
	if err != nil {
		t.Fatalf("AddToCart failed: %v", err)
	}
	if updated.Cart.Len() != 1 {
		t.Fatalf("expected 1 cart item, got %d", updated.Cart.Len())
	}

	updated, err = svc.RemoveFromCart(ctx, state.TripID, 0)
	if err != nil {
		t.Fatalf("RemoveFromCart failed: %v", err)
	}
	if updated.Cart.Len() != 0 {
		t.Errorf("expected empty cart, got %d items", updated.Cart.Len())
	}
}

func TestClearCart(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	state, _ := svc.Start(ctx)

	svc.AddToCart(ctx, state.TripID, models.RoomOffer{OfferID: "o1"}, models.PreferenceNone)
	updated, err := svc.ClearCart(ctx, state.TripID)
	if err != nil {
		t.Fatalf("ClearCart failed: %v", err)
	}
	if updated.Cart.Len() != 0 {
		t.Errorf("expected empty cart, got %d items", updated.Cart.Len())
	}
}
