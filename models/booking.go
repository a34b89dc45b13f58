package models

import "time"

// CustomerDetails are the submission-time fields the customer fills in.
// Which of them are required depends on the cart composition.
type CustomerDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	EventDate        string `json:"eventDate,omitempty"`
	EventLocation    string `json:"eventLocation,omitempty"`
	EventDescription string `json:"eventDescription,omitempty"`
	GuestCount       int    `json:"guestCount,omitempty"`

	// Required only when the cart contains a travel package.
	AadharNumber    string `json:"aadharNumber,omitempty"`
	TravelStartDate string `json:"travelStartDate,omitempty"`
	TravelEndDate   string `json:"travelEndDate,omitempty"`
}

// SelectionSummary is a normalized, display-ready view of one package's
// selection so downstream consumers never re-derive pricing logic.
type SelectionSummary struct {
	Meals       []string `bson:"meals,omitempty" json:"meals,omitempty"`
	EventType   string   `bson:"eventType,omitempty" json:"eventType,omitempty"`
	Hours       int      `bson:"hours,omitempty" json:"hours,omitempty"`
	Quantity    int      `bson:"quantity,omitempty" json:"quantity,omitempty"`
	PricingType string   `bson:"pricingType,omitempty" json:"pricingType,omitempty"`
	MemberCount int      `bson:"memberCount,omitempty" json:"memberCount,omitempty"`
}

// BookedPackage is the persisted snapshot of one cart line.
type BookedPackage struct {
	PackageID   string           `bson:"packageId,omitempty" json:"packageId,omitempty"`
	PackageName string           `bson:"packageName" json:"packageName"`
	Category    string           `bson:"category" json:"category"`
	Selection   Selection        `bson:"selection" json:"selection"`
	Summary     SelectionSummary `bson:"summary" json:"summary"`
	BasePrice   float64          `bson:"basePrice" json:"basePrice"`
}

// BookingRecord is the final snapshot written once on submission. It is
// mutated afterwards only by the vendor-side acceptance/rejection flow.
type BookingRecord struct {
	ID       string `bson:"id" json:"id"`
	UserID   string `bson:"userId" json:"userId"`
	VendorID string `bson:"vendorId,omitempty" json:"vendorId,omitempty"`

	Customer CustomerDetails `bson:"customer" json:"customer"`
	Packages []BookedPackage `bson:"packages" json:"packages"`

	MemberCount    int     `bson:"memberCount,omitempty" json:"memberCount,omitempty"`
	Subtotal       float64 `bson:"subtotal" json:"subtotal"`
	ConvenienceFee float64 `bson:"convenienceFee" json:"convenienceFee"`

	// OriginalPrice is the pre-negotiation invoice total kept for audit;
	// TotalAmount is what the customer actually committed to.
	OriginalPrice float64 `bson:"originalPrice" json:"originalPrice"`
	TotalAmount   float64 `bson:"totalAmount" json:"totalAmount"`
	IsNegotiated  bool    `bson:"isNegotiated" json:"isNegotiated"`

	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Booking statuses set by this service; later transitions belong to the
// vendor-side flow.
const (
	BookingStatusPending = "Pending"
)
