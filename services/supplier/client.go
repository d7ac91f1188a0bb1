package supplier

import (
	"context"

	"tripnest/models"
)

// Client is the remote pricing/booking service consumed by the funnel.
// Every call is blocking and carries the caller's context; no call is
// retried here — retry policy belongs to the caller.
type Client interface {
	SearchPlaces(ctx context.Context, textQuery string) ([]models.Place, error)
	SearchRates(ctx context.Context, req models.SearchRequest) ([]models.HotelSummary, int, error)
	HotelRates(ctx context.Context, hotelID string, req models.SearchRequest) (*models.HotelDetails, error)
	Reviews(ctx context.Context, hotelID string, limit, offset int, sentiment bool) (*models.ReviewPage, error)

	// Prebook opens one quote session per offer in a single batched call.
	Prebook(ctx context.Context, offerIDs []string) ([]models.PrebookSession, error)
	Submit(ctx context.Context, sessionID string, holder models.GuestInfo) (*models.Booking, error)
	SubmitWithCode(ctx context.Context, sessionID, code string, holder models.GuestInfo) (*models.Booking, error)
	ResendCode(ctx context.Context, sessionID string) error

	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}
