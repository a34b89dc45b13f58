package booking

import (
	bookingRepo "festivo/database/repository/booking"
	"festivo/models"
	"festivo/services/negotiation"

	"github.com/hibiken/asynq"
)

// Service turns a finished negotiation session into a persisted booking.
type Service interface {
	SubmitBooking(sessionID string, customer models.CustomerDetails) (*models.BookingRecord, error)
	GetBooking(id string) (*models.BookingRecord, error)
	ListUserBookings(userID string) ([]models.BookingRecord, error)
	ListVendorBookings(vendorID string) ([]models.BookingRecord, error)
}

// DefaultService implements Service.
type DefaultService struct {
	Sessions *negotiation.SessionStore
	Repo     bookingRepo.Repository
	Queue    *asynq.Client
}

var _ Service = (*DefaultService)(nil)
