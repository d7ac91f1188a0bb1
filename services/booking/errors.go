package booking

import "errors"

// Validation errors abort the operation before any supplier call.
var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrMissingOfferID   = errors.New("cart item is missing its offer id")
	ErrMissingGuestInfo = errors.New("guest name and email are required")
)

// Session state machine violations. ErrSessionConsumed is a caller bug:
// the operation must never be retried.
var (
	ErrSessionNotFound      = errors.New("prebook session not found")
	ErrSessionConsumed      = errors.New("prebook session already consumed")
	ErrSessionNotActive     = errors.New("prebook session is not active")
	ErrVerificationRequired = errors.New("session requires code verification to submit")
)

// Verification flow errors. ErrInvalidCode leaves the session retryable.
var (
	ErrInvalidCode    = errors.New("verification code is incorrect")
	ErrResendNotReady = errors.New("verification code was sent too recently")
)
