package booking

import (
	"context"
	"fmt"

	"festivo/models"
	"festivo/services/tasks"
	"festivo/utils"

	"go.uber.org/zap"
)

// SubmitBooking validates the customer fields, assembles and persists the
// booking record, then queues the vendor notification. The session is only
// discarded after a successful write so a failed submission can be retried
// without redoing the negotiation.
func (s *DefaultService) SubmitBooking(sessionID string, customer models.CustomerDetails) (*models.BookingRecord, error) {
	ctx := context.Background()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := validateSubmission(session.Cart, customer); err != nil {
		return nil, err
	}

	record := AssembleBooking(session, customer)
	id, err := s.Repo.Create(ctx, *record)
	if err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}
	record.ID = id

	s.enqueueVendorNotification(record)

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to discard submitted session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return record, nil
}

// enqueueVendorNotification is best effort; a lost push never fails the
// submission.
func (s *DefaultService) enqueueVendorNotification(record *models.BookingRecord) {
	if s.Queue == nil || record.VendorID == "" {
		return
	}

	seen := make(map[string]bool)
	var categories []string
	for _, pkg := range record.Packages {
		if !seen[pkg.Category] {
			seen[pkg.Category] = true
			categories = append(categories, pkg.Category)
		}
	}

	task, err := tasks.NewBookingNotifyTask(models.BookingNotifyPayload{
		BookingID:    record.ID,
		VendorID:     record.VendorID,
		CustomerName: record.Customer.Name,
		Categories:   categories,
		TotalAmount:  record.TotalAmount,
		IsNegotiated: record.IsNegotiated,
	})
	if err != nil {
		utils.GetLogger().Warn("failed to build vendor notification task", zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task); err != nil {
		utils.GetLogger().Warn("failed to enqueue vendor notification",
			zap.String("bookingID", record.ID), zap.Error(err))
	}
}

func (s *DefaultService) GetBooking(id string) (*models.BookingRecord, error) {
	return s.Repo.GetByID(context.Background(), id)
}

func (s *DefaultService) ListUserBookings(userID string) ([]models.BookingRecord, error) {
	return s.Repo.GetByUserID(context.Background(), userID)
}

func (s *DefaultService) ListVendorBookings(vendorID string) ([]models.BookingRecord, error) {
	return s.Repo.GetByVendorID(context.Background(), vendorID)
}
