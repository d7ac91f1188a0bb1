package booking

import (
	"context"
	"fmt"
	"time"

	"tripnest/models"
	"tripnest/services/supplier"
	"tripnest/services/tasks"

	"go.uber.org/zap"
)

func validateGuest(guest models.GuestInfo) error {
	if guest.FirstName == "" || guest.LastName == "" || guest.Email == "" {
		return ErrMissingGuestInfo
	}
	return nil
}

// Submit finalizes exactly one Active session into a booking. A second call
// on the same session observes the Consumed status and fails with
// ErrSessionConsumed without re-issuing the remote call.
func (s *DefaultBookingSessionService) Submit(ctx context.Context, sessionID string, guest models.GuestInfo) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.Status {
	case models.SessionActive:
	case models.SessionConsumed:
		return nil, ErrSessionConsumed
	case models.SessionPendingVerification:
		return nil, ErrVerificationRequired
	default:
		return nil, ErrSessionNotActive
	}
	if err := validateGuest(guest); err != nil {
		return nil, err
	}

	bookingRecord, err := s.Client.Submit(ctx, sessionID, guest)
	if err != nil {
		return nil, s.handleSubmitError(ctx, session, err)
	}

	return s.consume(ctx, session, bookingRecord, guest), nil
}

// ConfirmWithVerification is the submit variant for suppliers that require a
// one-time code between prebook and submit. A wrong code keeps the session
// in PendingVerification so the traveler may retry; any other rejection is
// terminal.
func (s *DefaultBookingSessionService) ConfirmWithVerification(ctx context.Context, sessionID, code string, guest models.GuestInfo) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	switch session.Status {
	case models.SessionActive, models.SessionPendingVerification:
	case models.SessionConsumed:
		return nil, ErrSessionConsumed
	default:
		return nil, ErrSessionNotActive
	}
	if err := validateGuest(guest); err != nil {
		return nil, err
	}

	bookingRecord, err := s.Client.SubmitWithCode(ctx, sessionID, code, guest)
	if err != nil {
		if supplier.IsInvalidCode(err) {
			session.Status = models.SessionPendingVerification
			if saveErr := s.Store.Save(ctx, session); saveErr != nil {
				s.logger().Warn("failed to persist session state", zap.String("sessionId", sessionID), zap.Error(saveErr))
			}
			return nil, ErrInvalidCode
		}
		return nil, s.handleSubmitError(ctx, session, err)
	}

	return s.consume(ctx, session, bookingRecord, guest), nil
}

// ResendCode asks the supplier to re-send the verification code. The resend
// window is advisory client-side pacing, not an authoritative expiry.
func (s *DefaultBookingSessionService) ResendCode(ctx context.Context, sessionID string) error {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	switch session.Status {
	case models.SessionActive, models.SessionPendingVerification:
	case models.SessionConsumed:
		return ErrSessionConsumed
	default:
		return ErrSessionNotActive
	}
	if !session.LastCodeSentAt.IsZero() && time.Since(session.LastCodeSentAt) < s.ResendWindow {
		return ErrResendNotReady
	}

	if err := s.Client.ResendCode(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to resend verification code: %w", err)
	}

	session.Status = models.SessionPendingVerification
	session.LastCodeSentAt = time.Now()
	if err := s.Store.Save(ctx, session); err != nil {
		s.logger().Warn("failed to persist session state", zap.String("sessionId", sessionID), zap.Error(err))
	}
	return nil
}

// handleSubmitError maps a failed remote submit onto the state machine:
// supplier rejections expire the session, transport failures leave it
// untouched so the caller may retry.
func (s *DefaultBookingSessionService) handleSubmitError(ctx context.Context, session *models.PrebookSession, err error) error {
	if supplier.IsRejection(err) {
		session.Status = models.SessionExpired
		if saveErr := s.Store.Save(ctx, session); saveErr != nil {
			s.logger().Warn("failed to persist session state", zap.String("sessionId", session.SessionID), zap.Error(saveErr))
		}
		return fmt.Errorf("booking rejected by supplier: %w", err)
	}
	return fmt.Errorf("booking submit failed: %w", err)
}

// consume marks the session Consumed, fills in fields the supplier response
// may omit, archives the booking and enqueues the confirmation notification.
// Archive and notification failures never fail the booking — the remote
// reservation already exists.
func (s *DefaultBookingSessionService) consume(ctx context.Context, session *models.PrebookSession, bookingRecord *models.Booking, guest models.GuestInfo) *models.Booking {
	session.Status = models.SessionConsumed
	if err := s.Store.Save(ctx, session); err != nil {
		s.logger().Warn("failed to persist session state", zap.String("sessionId", session.SessionID), zap.Error(err))
	}

	if bookingRecord.Total == 0 {
		bookingRecord.Total = session.Total
		bookingRecord.Currency = session.Currency
	}
	if bookingRecord.HotelID == "" {
		bookingRecord.HotelID = session.HotelID
	}
	if bookingRecord.Status == "" {
		bookingRecord.Status = "Confirmed"
	}
	if bookingRecord.CreatedAt.IsZero() {
		bookingRecord.CreatedAt = time.Now()
	}
	bookingRecord.Holder = guest

	if s.Archive != nil {
		if err := s.Archive.Create(ctx, *bookingRecord); err != nil {
			s.logger().Warn("failed to archive booking", zap.String("bookingId", bookingRecord.BookingID), zap.Error(err))
		}
	}
	s.enqueueConfirmation(*bookingRecord)

	s.logger().Info("booking confirmed",
		zap.String("bookingId", bookingRecord.BookingID),
		zap.String("sessionId", session.SessionID),
		zap.Float64("total", bookingRecord.Total),
		zap.String("currency", bookingRecord.Currency))
	return bookingRecord
}

func (s *DefaultBookingSessionService) enqueueConfirmation(bookingRecord models.Booking) {
	if s.Tasks == nil {
		return
	}
	task, opts, err := tasks.NewBookingConfirmationTask(bookingRecord)
	if err != nil {
		s.logger().Warn("failed to build confirmation task", zap.Error(err))
		return
	}
	if _, err := s.Tasks.Enqueue(task, opts...); err != nil {
		s.logger().Warn("failed to enqueue confirmation task", zap.Error(err))
	}
}

// GetBooking reads a booking from the supplier, falling back to the local
// archive when the supplier is unreachable.
func (s *DefaultBookingSessionService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	bookingRecord, err := s.Client.GetBooking(ctx, bookingID)
	if err == nil {
		return bookingRecord, nil
	}
	if s.Archive != nil {
		if archived, archiveErr := s.Archive.GetByID(ctx, bookingID); archiveErr == nil {
			s.logger().Info("serving booking from archive", zap.String("bookingId", bookingID))
			return archived, nil
		}
	}
	return nil, err
}

// ListBookings lists bookings from the supplier, falling back to the archive.
func (s *DefaultBookingSessionService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.Client.ListBookings(ctx)
	if err == nil {
		return bookings, nil
	}
	if s.Archive != nil {
		if archived, archiveErr := s.Archive.List(ctx); archiveErr == nil {
			s.logger().Info("serving booking list from archive")
			return archived, nil
		}
	}
	return nil, err
}
