package negotiation

import "festivo/models"

// CartInput is what the client sends when opening or updating a session.
type CartInput struct {
	VendorID    string      `json:"vendorId,omitempty"`
	Cart        models.Cart `json:"cart"`
	MemberCount int         `json:"memberCount,omitempty"`
}

// Service defines the interface for managing a stateful negotiation session.
type Service interface {
	StartSession(userID string, input CartInput) (*models.SessionResponse, error)
	GetSession(sessionID string) (*models.SessionResponse, error)
	UpdateCart(sessionID string, input CartInput) (*models.SessionResponse, error)
	Negotiate(sessionID string) (*models.SessionResponse, error)
	Accept(sessionID string) (*models.SessionResponse, error)
	CancelOffer(sessionID string) (*models.SessionResponse, error)
	Renegotiate(sessionID string) (*models.SessionResponse, error)
	ApplyFinalOffer(sessionID string) (*models.SessionResponse, error)
	SetUserBudget(sessionID string, amount float64) (*models.SessionResponse, error)
	CancelSession(sessionID string) error
}

// DefaultService implements Service over the Redis session store.
type DefaultService struct {
	Store  *SessionStore
	Engine *Engine
}

var _ Service = (*DefaultService)(nil)
