package bookingRepo

import (
	"context"
	"time"

	"festivo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking record and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetByID returns a booking record by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	var record models.BookingRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByUserID fetches all bookings made by a customer.
func (r *mongoBookingRepo) GetByUserID(ctx context.Context, userID string) ([]models.BookingRecord, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// GetByVendorID fetches all bookings addressed to a vendor.
func (r *mongoBookingRepo) GetByVendorID(ctx context.Context, vendorID string) ([]models.BookingRecord, error) {
	return r.find(ctx, bson.M{"vendorId": vendorID})
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.BookingRecord, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
