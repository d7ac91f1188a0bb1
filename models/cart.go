package models

import "time"

// GuestPreference is an advisory tag attached to a cart item.
type GuestPreference string

const (
	PreferenceNone       GuestPreference = "none"
	PreferenceNonSmoking GuestPreference = "non-smoking"
)

// CartItem is a chosen offer in the selection cart. Quantity is always 1:
// a cart line maps one-to-one to a prebookable offer.
type CartItem struct {
	Offer      RoomOffer       `json:"offer"`
	Quantity   int             `json:"quantity"`
	Preference GuestPreference `json:"preference"`
	AddedAt    time.Time       `json:"addedAt"`
}
