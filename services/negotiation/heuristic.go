package negotiation

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"festivo/models"
	"festivo/services/pricing"
)

// OfferPhase selects how much of the vendor's own discount is passed through.
type OfferPhase string

const (
	OfferPhaseFirst         OfferPhase = "first_offer"
	OfferPhaseRenegotiation OfferPhase = "renegotiation"
	OfferPhaseFinal         OfferPhase = "final_offer"
)

// profitFloorRate caps every discount: no offer may drop below 90% of the
// original price, regardless of how generous the vendor's nominal discount is.
const profitFloorRate = 0.9

// Engine computes discounted offers. The random source only feeds the
// fallback branch for plain-priced packages, so tests can pin it.
type Engine struct {
	rng *rand.Rand
}

// NewEngine builds an engine; a nil source seeds from the clock.
func NewEngine(src rand.Source) *Engine {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Engine{rng: rand.New(src)}
}

func (e *Engine) vendorFraction(phase OfferPhase) float64 {
	switch phase {
	case OfferPhaseRenegotiation:
		return 0.5
	case OfferPhaseFinal:
		return 1.0
	default:
		return 0.2
	}
}

// fallbackPercent is the small platform-side discount for packages without a
// vendor discount field: 1-2% on the first offer, 3-5% afterwards. This
// branch never scales with a vendor discount, so the final phase behaves
// like a renegotiation.
func (e *Engine) fallbackPercent(phase OfferPhase) float64 {
	if phase == OfferPhaseFirst {
		return 1 + e.rng.Float64()
	}
	return 3 + 2*e.rng.Float64()
}

func (e *Engine) componentPrice(c pricing.Component, phase OfferPhase) float64 {
	if c.HasVendorDiscount && c.VendorDiscount == 0 {
		// Fixed price: immune to discounting in every phase.
		return c.Base
	}

	var applied float64
	if c.HasVendorDiscount {
		applied = e.vendorFraction(phase) * c.VendorDiscount / 100
	} else {
		applied = e.fallbackPercent(phase) / 100
	}

	candidate := math.Round(c.Base * (1 - applied))
	floor := math.Round(c.Base * profitFloorRate)
	return math.Max(candidate, floor)
}

// ComputeOffer prices the whole cart for one negotiation phase. Items are
// keyed "{packageName}_{category}"; a catering package with mixed fixed and
// discounted meals is discounted per meal leaf.
func (e *Engine) ComputeOffer(cart models.Cart, ctx pricing.Context, phase OfferPhase) models.Offer {
	offer := models.Offer{Items: make(map[string]models.ItemOffer, len(cart))}

	for _, item := range cart {
		comps := pricing.Components(item.Package, item.Selection, ctx)

		var base, price float64
		fixed := len(comps) > 0
		for _, c := range comps {
			base += c.Base
			price += e.componentPrice(c, phase)
			if !c.HasVendorDiscount || c.VendorDiscount != 0 {
				fixed = false
			}
		}

		var pct float64
		if base > 0 {
			pct = (1 - price/base) * 100
		}

		category := item.Package.Category()
		key := fmt.Sprintf("%s_%s", item.Package.PackageName, category)
		offer.Items[key] = models.ItemOffer{
			PackageName:     item.Package.PackageName,
			Category:        category,
			BasePrice:       base,
			OfferPrice:      price,
			DiscountPercent: pct,
			IsFixedPrice:    fixed,
		}
		offer.Total += price
	}

	return offer
}
