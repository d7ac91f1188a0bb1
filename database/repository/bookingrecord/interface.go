package bookingrecord

import (
	"context"

	"tripnest/database"
	"tripnest/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository archives finalized bookings locally so booking history stays
// readable when the supplier is unreachable.
type Repository interface {
	Create(ctx context.Context, booking models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	List(ctx context.Context) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a Repository instance backed by MongoDB.
func NewMongoBookingRepo() Repository {
	db := database.MongoClient.Database("tripnest")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
