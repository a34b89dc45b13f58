package models

// BookingSession holds context between cart building and final submission.
// It lives in Redis for the duration of one booking flow; MemberCount is a
// booking-level field shared by every travel package in the cart.
type BookingSession struct {
	SessionID   string           `json:"sessionId"`
	UserID      string           `json:"userId"`
	VendorID    string           `json:"vendorId,omitempty"`
	Cart        Cart             `json:"cart"`
	MemberCount int              `json:"memberCount"`
	Negotiation NegotiationState `json:"negotiation"`
}

// SessionResponse is what the booking endpoints return to the client after
// every session mutation: the session itself plus the derived invoice.
type SessionResponse struct {
	Session *BookingSession `json:"session"`
	Invoice *Invoice        `json:"invoice"`
}
