package booking

import (
	"context"
	"sync"
	"time"

	"tripnest/database/repository/bookingrecord"
	"tripnest/models"
	"tripnest/services/supplier"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// BookingSessionService drives the prebook/submit lifecycle against the
// supplier and owns the session state machine:
//
//	(prebook ok) --> Active
//	Active --(submit ok)--> Consumed   [terminal]
//	Active --(rejected)-->  Expired    [terminal]
//
// A failed prebook stores nothing, so no session exists for it. Pending
// verification is a sub-state of Active used when the supplier asks for a
// one-time code between prebook and submit.
type BookingSessionService interface {
	OpenSessions(ctx context.Context, items []models.CartItem) ([]models.PrebookSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.PrebookSession, error)
	Submit(ctx context.Context, sessionID string, guest models.GuestInfo) (*models.Booking, error)
	ConfirmWithVerification(ctx context.Context, sessionID, code string, guest models.GuestInfo) (*models.Booking, error)
	ResendCode(ctx context.Context, sessionID string) error
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	Client       supplier.Client
	Store        SessionStore
	Archive      bookingrecord.Repository
	Tasks        *asynq.Client
	ResendWindow time.Duration
	Logger       *zap.Logger

	// Serializes submit-side transitions so a second submit observes the
	// Consumed status instead of racing the first remote call.
	mu sync.Mutex
}

func (s *DefaultBookingSessionService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}
