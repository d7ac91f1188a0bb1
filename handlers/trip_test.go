package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tripnest/models"
	"tripnest/services/search"
	"tripnest/services/supplier"
	"tripnest/services/trip"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fakeTripService serves one in-memory trip state.
type fakeTripService struct {
	state trip.TripState
}

func (f *fakeTripService) Start(context.Context) (*trip.TripState, error) {
	copied := f.state
	return &copied, nil
}

func (f *fakeTripService) Get(_ context.Context, tripID string) (*trip.TripState, error) {
	if tripID != f.state.TripID {
		return nil, trip.ErrTripNotFound
	}
	copied := f.state
	return &copied, nil
}

func (f *fakeTripService) UpdateQuery(_ context.Context, _ string, patch models.SearchParamsPatch) (*trip.TripState, error) {
	f.state.Params = search.MergeQuery(f.state.Params, patch)
	copied := f.state
	return &copied, nil
}

func (f *fakeTripService) ResetSearch(context.Context, string) (*trip.TripState, error) {
	f.state.Hotels = nil
	f.state.Generation++
	copied := f.state
	return &copied, nil
}

func (f *fakeTripService) AppendResults(_ context.Context, _ string, generation int, page []models.HotelSummary) (*trip.TripState, error) {
	if generation != f.state.Generation {
		return nil, trip.ErrStaleGeneration
	}
	f.state.Hotels = append(f.state.Hotels, page...)
	copied := f.state
	return &copied, nil
}

func (f *fakeTripService) ShowMore(context.Context, string) (*trip.TripState, error) {
	f.state.Displayed += 10
	copied := f.state
	return &copied, nil
}

func (f *fakeTripService) AddToCart(_ context.Context, _ string, offer models.RoomOffer, pref models.GuestPreference) (*trip.TripState, error) {
	if err := f.state.Cart.Add(offer, pref); err != nil {
		return nil, err
	}
	copied := f.state
	return &copied, nil
}

func (f *fakeTripService) RemoveFromCart(_ context.Context, _ string, index int) (*trip.TripState, error) {
	if err := f.state.Cart.Remove(index); err != nil {
		return nil, err
	}
	copied := f.state
	return &copied, nil
}

func (f *fakeTripService) ClearCart(context.Context, string) (*trip.TripState, error) {
	f.state.Cart.Clear()
	copied := f.state
	return &copied, nil
}

// fakeSupplierClient returns a fixed search page.
type fakeSupplierClient struct {
	supplier.Client
	hotels []models.HotelSummary
}

func (f *fakeSupplierClient) SearchRates(context.Context, models.SearchRequest) ([]models.HotelSummary, int, error) {
	return f.hotels, len(f.hotels), nil
}

func searchRouter(tripSvc trip.TripService, client supplier.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTripHandler(tripSvc, client, search.Defaults{Currency: "USD", Nationality: "US"}, 25, zap.NewNop())
	r := gin.New()
	r.POST("/api/trip/:tripID/search", h.RunSearch)
	return r
}

func searchableTrip() trip.TripState {
	return trip.TripState{
		TripID:    "t1",
		Displayed: 10,
		Params: models.SearchParams{
			PlaceID:     "p1",
			CheckIn:     "2026-09-01",
			CheckOut:    "2026-09-05",
			Occupancies: []models.RoomOccupancy{{Adults: 2}},
		},
	}
}

func TestRunSearch_EmptyBodyAccepted(t *testing.T) {
	tripSvc := &fakeTripService{state: searchableTrip()}
	client := &fakeSupplierClient{hotels: []models.HotelSummary{{HotelID: "h1"}}}
	router := searchRouter(tripSvc, client)

	req := httptest.NewRequest(http.MethodPost, "/api/trip/t1/search", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for bodyless search, got %d: %s", w.Code, w.Body.String())
	}
	if len(tripSvc.state.Hotels) != 1 {
		t.Errorf("expected the fetched page to merge, got %d hotels", len(tripSvc.state.Hotels))
	}
}

func TestRunSearch_MalformedBodyRejected(t *testing.T) {
	tripSvc := &fakeTripService{state: searchableTrip()}
	client := &fakeSupplierClient{}
	router := searchRouter(tripSvc, client)

	req := httptest.NewRequest(http.MethodPost, "/api/trip/t1/search", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", w.Code)
	}
}
