package tasks

import (
	"encoding/json"

	"tripnest/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "booking:confirmation"

// BookingConfirmationPayload is the notification payload sent to the holder
// after a successful submission.
type BookingConfirmationPayload struct {
	BookingID string  `json:"bookingId"`
	Email     string  `json:"email"`
	HotelName string  `json:"hotelName,omitempty"`
	CheckIn   string  `json:"checkin,omitempty"`
	CheckOut  string  `json:"checkout,omitempty"`
	Total     float64 `json:"total"`
	Currency  string  `json:"currency"`
}

func NewBookingConfirmationTask(b models.Booking) (*asynq.Task, []asynq.Option, error) {
	payload := BookingConfirmationPayload{
		BookingID: b.BookingID,
		Email:     b.Holder.Email,
		HotelName: b.HotelName,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		Total:     b.Total,
		Currency:  b.Currency,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, data)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}
