package bookingRepo

import (
	"context"

	"festivo/database"
	"festivo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository defines booking record data access.
type Repository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]models.BookingRecord, error)
	GetByVendorID(ctx context.Context, vendorID string) ([]models.BookingRecord, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a Repository backed by MongoDB.
func NewMongoBookingRepo() Repository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
