package models

import "time"

// SessionStatus tracks a prebook session through its lifecycle.
type SessionStatus string

const (
	SessionActive              SessionStatus = "Active"
	SessionPendingVerification SessionStatus = "PendingVerification"
	SessionConsumed            SessionStatus = "Consumed"
	SessionExpired             SessionStatus = "Expired"
)

// PrebookSession is a price quote lock issued by the supplier for one offer.
// Expiry is server-determined and only observed on a later call's failure;
// the client never flips a session to Expired on its own clock.
type PrebookSession struct {
	SessionID      string        `json:"sessionId"`
	OfferID        string        `json:"offerId"`
	HotelID        string        `json:"hotelId,omitempty"`
	Total          float64       `json:"total"`
	Currency       string        `json:"currency"`
	Status         SessionStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	LastCodeSentAt time.Time     `json:"lastCodeSentAt,omitempty"`
}

// GuestInfo is the booking holder sent with the final submission.
type GuestInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}
