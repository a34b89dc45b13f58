package models

// NegotiationPhase is the single source of truth for where a session stands in
// the discount protocol; it replaces the scattered boolean flags the client
// used to juggle.
type NegotiationPhase string

const (
	PhaseIdle          NegotiationPhase = "idle"
	PhaseNegotiating   NegotiationPhase = "negotiating"
	PhaseCancelled     NegotiationPhase = "cancelled"
	PhaseRenegotiating NegotiationPhase = "renegotiating"
	PhaseFinalized     NegotiationPhase = "finalized"
)

// ItemOffer is the per-package line of a discounted offer.
type ItemOffer struct {
	PackageName     string  `json:"packageName"`
	Category        string  `json:"category"`
	BasePrice       float64 `json:"basePrice"`
	OfferPrice      float64 `json:"offerPrice"`
	DiscountPercent float64 `json:"discountPercent"`
	IsFixedPrice    bool    `json:"isFixedPrice"`
}

// Offer is one round's output of the discount heuristic. Items are keyed by
// "{packageName}_{category}" for display and debugging.
type Offer struct {
	Total float64              `json:"total"`
	Items map[string]ItemOffer `json:"items"`
}

// NegotiationState tracks the multi-round discount protocol for one session.
// Round only ever increases; after the single allowed renegotiation,
// IsFinalOffer is set and the next recomputation is the vendor's last word.
type NegotiationState struct {
	Phase             NegotiationPhase     `json:"phase"`
	Round             int                  `json:"round"`
	FirstOfferPrice   float64              `json:"firstOfferPrice,omitempty"`
	CurrentOfferPrice float64              `json:"currentOfferPrice,omitempty"`
	Breakdown         map[string]ItemOffer `json:"breakdown,omitempty"`
	IsFinalOffer      bool                 `json:"isFinalOffer,omitempty"`
	FinalOfferApplied bool                 `json:"finalOfferApplied,omitempty"`
	FinalizedPrice    float64              `json:"finalizedPrice,omitempty"`
	UserBudget        *float64             `json:"userBudget,omitempty"`
}

// Finalized reports whether the negotiated price is frozen.
func (n NegotiationState) Finalized() bool {
	return n.Phase == PhaseFinalized
}

// Active reports whether a live, not-yet-frozen offer should drive the
// invoice total instead of the plain subtotal.
func (n NegotiationState) Active() bool {
	return (n.Phase == PhaseNegotiating || n.Phase == PhaseRenegotiating) && n.CurrentOfferPrice > 0
}
