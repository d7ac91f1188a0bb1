package models

import "time"

// Booking is the terminal artifact returned after a successful submission.
// It doubles as the Mongo archive record.
type Booking struct {
	BookingID string    `bson:"booking_id" json:"bookingId"`
	HotelID   string    `bson:"hotel_id" json:"hotelId,omitempty"`
	HotelName string    `bson:"hotel_name" json:"hotelName,omitempty"`
	CheckIn   string    `bson:"checkin" json:"checkin,omitempty"`
	CheckOut  string    `bson:"checkout" json:"checkout,omitempty"`
	Total     float64   `bson:"total" json:"total"`
	Currency  string    `bson:"currency" json:"currency"`
	Status    string    `bson:"status" json:"status"` // e.g. "Confirmed", "Cancelled"
	Holder    GuestInfo `bson:"holder" json:"holder"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
