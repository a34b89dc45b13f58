package notification

import (
	"context"
	"fmt"

	vendorRepo "festivo/database/repository/vendor"
	"festivo/utils"

	"firebase.google.com/go/v4/messaging"
)

// Service defines methods for sending FCM pushes to vendors.
type Service interface {
	SendVendorPushNotification(ctx context.Context, vendorID, title, body string, data map[string]string) error
}

// DefaultService is the production implementation.
type DefaultService struct {
	Vendors vendorRepo.Repository
}

func NewDefaultService(vendors vendorRepo.Repository) (*DefaultService, error) {
	if vendors == nil {
		return nil, fmt.Errorf("notification service initialization error: vendor repository is nil")
	}
	return &DefaultService{Vendors: vendors}, nil
}

// SendVendorPushNotification looks up a vendor's FCM token and sends a push.
func (s *DefaultService) SendVendorPushNotification(
	ctx context.Context,
	vendorID, title, body string,
	data map[string]string,
) error {
	vendor, err := s.Vendors.GetByID(ctx, vendorID)
	if err != nil {
		return fmt.Errorf("SendVendorPushNotification: could not find vendor %s: %w", vendorID, err)
	}
	if vendor.FCMToken == "" {
		return fmt.Errorf("SendVendorPushNotification: vendor %s has no FCM token", vendorID)
	}

	msg := &messaging.Message{
		Token: vendor.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendVendorPushNotification: send failed for vendor %s: %w", vendorID, err)
	}
	return nil
}
