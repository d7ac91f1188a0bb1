package supplier

import (
	"errors"
	"fmt"
)

// Rejection codes returned by the supplier on prebook/submit.
const (
	CodeSessionExpired  = "session_expired"
	CodePriceChanged    = "price_changed"
	CodeRateUnavailable = "rate_unavailable"
	CodeInvalidCode     = "invalid_verification_code"
)

// APIError is a structured error response from the supplier.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supplier: %s (%s)", e.Message, e.Code)
}

// IsRejection reports whether err is a supplier rejection (as opposed to a
// transport failure). Rejections are terminal for the session except for a
// wrong verification code.
func IsRejection(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsInvalidCode reports whether err is a wrong-verification-code rejection.
func IsInvalidCode(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == CodeInvalidCode
}
