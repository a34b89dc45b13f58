package negotiation

import (
	"context"
	"fmt"

	"festivo/models"
	"festivo/services/pricing"

	"github.com/google/uuid"
)

func (s *DefaultService) view(session *models.BookingSession) *models.SessionResponse {
	return &models.SessionResponse{
		Session: session,
		Invoice: pricing.InvoiceForSession(session),
	}
}

// StartSession creates a new booking session, assigns it a unique SessionID,
// and stores it in Redis.
func (s *DefaultService) StartSession(userID string, input CartInput) (*models.SessionResponse, error) {
	ctx := context.Background()

	session := &models.BookingSession{
		SessionID:   uuid.New().String(),
		UserID:      userID,
		VendorID:    input.VendorID,
		Cart:        input.Cart,
		MemberCount: input.MemberCount,
		Negotiation: models.NegotiationState{Phase: models.PhaseIdle},
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store booking session: %w", err)
	}
	return s.view(session), nil
}

func (s *DefaultService) GetSession(sessionID string) (*models.SessionResponse, error) {
	session, err := s.Store.Get(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// UpdateCart replaces the cart and selections. Any in-flight negotiation is
// reset to idle: the offers were computed against the old cart.
func (s *DefaultService) UpdateCart(sessionID string, input CartInput) (*models.SessionResponse, error) {
	return s.mutate(sessionID, func(session *models.BookingSession) error {
		session.Cart = input.Cart
		session.MemberCount = input.MemberCount
		if input.VendorID != "" {
			session.VendorID = input.VendorID
		}
		session.Negotiation = models.NegotiationState{Phase: models.PhaseIdle}
		return nil
	})
}

func (s *DefaultService) Negotiate(sessionID string) (*models.SessionResponse, error) {
	return s.mutate(sessionID, func(session *models.BookingSession) error {
		return negotiate(session, s.Engine)
	})
}

func (s *DefaultService) Accept(sessionID string) (*models.SessionResponse, error) {
	return s.mutate(sessionID, accept)
}

func (s *DefaultService) CancelOffer(sessionID string) (*models.SessionResponse, error) {
	return s.mutate(sessionID, cancelOffer)
}

func (s *DefaultService) Renegotiate(sessionID string) (*models.SessionResponse, error) {
	return s.mutate(sessionID, func(session *models.BookingSession) error {
		return renegotiate(session, s.Engine)
	})
}

func (s *DefaultService) ApplyFinalOffer(sessionID string) (*models.SessionResponse, error) {
	return s.mutate(sessionID, func(session *models.BookingSession) error {
		return applyFinalOffer(session, s.Engine)
	})
}

func (s *DefaultService) SetUserBudget(sessionID string, amount float64) (*models.SessionResponse, error) {
	return s.mutate(sessionID, func(session *models.BookingSession) error {
		return setUserBudget(session, amount)
	})
}

// CancelSession discards the session outright (modal closed, cart abandoned).
func (s *DefaultService) CancelSession(sessionID string) error {
	if err := s.Store.Delete(context.Background(), sessionID); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// mutate loads the session, applies op, and saves it back, refreshing the TTL.
func (s *DefaultService) mutate(sessionID string, op func(*models.BookingSession) error) (*models.SessionResponse, error) {
	ctx := context.Background()

	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := op(session); err != nil {
		return nil, err
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update booking session: %w", err)
	}
	return s.view(session), nil
}
