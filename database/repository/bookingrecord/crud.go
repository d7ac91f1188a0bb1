package bookingrecord

import (
	"context"
	"time"

	"tripnest/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a finalized booking into the archive.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) error {
	if booking.BookingID == "" {
		booking.BookingID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, booking)
	return err
}

// GetByID returns an archived booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns all archived bookings, newest first.
func (r *mongoBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
