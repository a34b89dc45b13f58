package models

// Vendor is the minimal vendor document this service reads: enough to address
// a push notification. Vendor CRUD itself is owned by another service.
type Vendor struct {
	ID         string `bson:"id" json:"id"`
	VendorName string `bson:"vendorName" json:"vendorName"`
	FCMToken   string `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
}

// BookingNotifyPayload is the task payload queued when a booking is submitted;
// the worker turns it into a vendor-facing push.
type BookingNotifyPayload struct {
	BookingID    string   `json:"bookingId"`
	VendorID     string   `json:"vendorId"`
	CustomerName string   `json:"customerName"`
	Categories   []string `json:"categories"`
	TotalAmount  float64  `json:"totalAmount"`
	IsNegotiated bool     `json:"isNegotiated"`
}
