package negotiation

import (
	"errors"
	"fmt"

	"festivo/models"
	"festivo/services/pricing"
)

// ErrInvalidTransition is returned when an operation does not apply to the
// session's current phase.
var ErrInvalidTransition = errors.New("operation not allowed in current negotiation phase")

func transitionErr(op string, phase models.NegotiationPhase) error {
	return fmt.Errorf("%w: %s from %q", ErrInvalidTransition, op, phase)
}

func pricingContext(s *models.BookingSession) pricing.Context {
	return pricing.Context{MemberCount: s.MemberCount}
}

// negotiate computes the first offer and opens the protocol.
func negotiate(s *models.BookingSession, e *Engine) error {
	if s.Negotiation.Phase != "" && s.Negotiation.Phase != models.PhaseIdle {
		return transitionErr("negotiate", s.Negotiation.Phase)
	}
	offer := e.ComputeOffer(s.Cart, pricingContext(s), OfferPhaseFirst)
	s.Negotiation = models.NegotiationState{
		Phase:             models.PhaseNegotiating,
		Round:             0,
		FirstOfferPrice:   offer.Total,
		CurrentOfferPrice: offer.Total,
		Breakdown:         offer.Items,
	}
	return nil
}

// accept freezes the current offer.
func accept(s *models.BookingSession) error {
	n := &s.Negotiation
	if n.Phase != models.PhaseNegotiating && n.Phase != models.PhaseRenegotiating {
		return transitionErr("accept", n.Phase)
	}
	n.FinalizedPrice = n.CurrentOfferPrice
	n.Phase = models.PhaseFinalized
	return nil
}

// cancelOffer rejects the current offer. The first-offer price is kept for
// comparison display; whether the next step is a renegotiation or the final
// offer depends on IsFinalOffer.
func cancelOffer(s *models.BookingSession) error {
	n := &s.Negotiation
	if n.Phase != models.PhaseNegotiating && n.Phase != models.PhaseRenegotiating {
		return transitionErr("cancel", n.Phase)
	}
	n.CurrentOfferPrice = 0
	n.Phase = models.PhaseCancelled
	return nil
}

// renegotiate runs the single allowed renegotiation round; afterwards only
// the final offer remains.
func renegotiate(s *models.BookingSession, e *Engine) error {
	n := &s.Negotiation
	if n.Phase != models.PhaseCancelled || n.IsFinalOffer {
		return transitionErr("renegotiate", n.Phase)
	}
	offer := e.ComputeOffer(s.Cart, pricingContext(s), OfferPhaseRenegotiation)
	n.Round++
	if n.Round >= 1 {
		n.IsFinalOffer = true
	}
	n.CurrentOfferPrice = offer.Total
	n.Breakdown = offer.Items
	n.Phase = models.PhaseRenegotiating
	return nil
}

// applyFinalOffer passes through the vendor's full discount and freezes it.
func applyFinalOffer(s *models.BookingSession, e *Engine) error {
	n := &s.Negotiation
	if n.Phase != models.PhaseCancelled || !n.IsFinalOffer {
		return transitionErr("final offer", n.Phase)
	}
	offer := e.ComputeOffer(s.Cart, pricingContext(s), OfferPhaseFinal)
	n.CurrentOfferPrice = offer.Total
	n.FinalizedPrice = offer.Total
	n.Breakdown = offer.Items
	n.FinalOfferApplied = true
	n.Phase = models.PhaseFinalized
	return nil
}

// setUserBudget records a manual customer budget on a finalized session. The
// override wins over the negotiated price at submission and deliberately
// skips the profitability floor.
func setUserBudget(s *models.BookingSession, amount float64) error {
	n := &s.Negotiation
	if n.Phase != models.PhaseFinalized {
		return transitionErr("set budget", n.Phase)
	}
	n.UserBudget = &amount
	return nil
}
