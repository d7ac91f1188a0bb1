package handlers

import (
	"errors"
	"net/http"

	"tripnest/models"
	"tripnest/services/booking"
	"tripnest/services/supplier"
	"tripnest/services/trip"
	"tripnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the prebook/confirm/verify/finalize funnel.
type BookingHandler struct {
	Booking booking.BookingSessionService
	Trip    trip.TripService
	Logger  *zap.Logger
}

func NewBookingHandler(bookingSvc booking.BookingSessionService, tripSvc trip.TripService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Booking: bookingSvc, Trip: tripSvc, Logger: logger}
}

// Prebook opens one quote session per distinct offer in the trip's cart.
func (h *BookingHandler) Prebook(c *gin.Context) {
	ctx := c.Request.Context()
	tripID := c.Param("tripID")

	state, err := h.Trip.Get(ctx, tripID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "trip not found or expired"})
		return
	}

	sessions, err := h.Booking.OpenSessions(ctx, state.Cart.Items)
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

type submitInput struct {
	SessionID string           `json:"sessionId" binding:"required"`
	TripID    string           `json:"tripId"`
	Holder    models.GuestInfo `json:"holder"`
	OTPCode   string           `json:"otpCode"`
}

// Submit finalizes one Active session into a booking.
func (h *BookingHandler) Submit(c *gin.Context) {
	var input submitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	confirmed, err := h.Booking.Submit(ctx, input.SessionID, input.Holder)
	if err != nil {
		h.bookingError(c, err)
		return
	}

	h.clearCart(c, input.TripID)
	c.JSON(http.StatusOK, gin.H{"booking": confirmed})
}

// Verify is the submit variant gated on a one-time code.
func (h *BookingHandler) Verify(c *gin.Context) {
	var input submitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.OTPCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "otpCode is required"})
		return
	}

	ctx := c.Request.Context()
	confirmed, err := h.Booking.ConfirmWithVerification(ctx, input.SessionID, input.OTPCode, input.Holder)
	if err != nil {
		h.bookingError(c, err)
		return
	}

	h.clearCart(c, input.TripID)
	c.JSON(http.StatusOK, gin.H{"booking": confirmed})
}

// ResendCode re-sends the verification code, paced by the resend window.
func (h *BookingHandler) ResendCode(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Booking.ResendCode(c.Request.Context(), input.SessionID); err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// GetSession returns a prebook session's current status.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Booking.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetBooking returns one finalized booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	confirmed, err := h.Booking.GetBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, confirmed)
}

// ListBookings returns the traveler's booking history.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Booking.ListBookings(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bookings})
}

// clearCart empties the trip cart after a successful booking. Best effort:
// the booking already exists, a stale cart must not surface as a failure.
func (h *BookingHandler) clearCart(c *gin.Context, tripID string) {
	if tripID == "" {
		return
	}
	if _, err := h.Trip.ClearCart(c.Request.Context(), tripID); err != nil {
		h.Logger.Warn("failed to clear cart after booking", zap.String("tripId", tripID), zap.Error(err))
	}
}

func (h *BookingHandler) bookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrEmptyCart),
		errors.Is(err, booking.ErrMissingOfferID),
		errors.Is(err, booking.ErrMissingGuestInfo):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSessionConsumed),
		errors.Is(err, booking.ErrSessionNotActive),
		errors.Is(err, booking.ErrVerificationRequired):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidCode):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrResendNotReady):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	case supplier.IsRejection(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.JSONError(c, http.StatusBadGateway, "booking service unavailable", err.Error())
	}
}
