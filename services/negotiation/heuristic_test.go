package negotiation

import (
	"math"
	"math/rand"
	"testing"

	"festivo/models"
	"festivo/services/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(price, discount float64) *models.PriceLeaf {
	return &models.PriceLeaf{OriginalPrice: price, Discount: discount}
}

func cateringCart() models.Cart {
	return models.Cart{{
		Package: models.Package{
			ID:          "pkg-catering",
			PackageName: "Royal Feast",
			Meals: &models.MealsPricing{
				Breakfast: leaf(200, 0),
				Lunch:     leaf(300, 20),
				Dinner:    leaf(400, 0),
			},
		},
	}}
}

func testEngine() *Engine {
	return NewEngine(rand.NewSource(42))
}

func TestComputeOffer_FirstOffer(t *testing.T) {
	offer := testEngine().ComputeOffer(cateringCart(), pricing.Context{}, OfferPhaseFirst)

	// Breakfast and dinner are fixed (600); lunch gets 20% of the vendor's
	// 20% discount: 300*0.96 = 288, above the 270 floor.
	assert.Equal(t, 888.0, offer.Total)

	item, ok := offer.Items["Royal Feast_catering"]
	require.True(t, ok, "breakdown keyed by packageName_category")
	assert.Equal(t, 900.0, item.BasePrice)
	assert.Equal(t, 888.0, item.OfferPrice)
	assert.False(t, item.IsFixedPrice)
}

func TestComputeOffer_RenegotiationHitsFloorExactly(t *testing.T) {
	offer := testEngine().ComputeOffer(cateringCart(), pricing.Context{}, OfferPhaseRenegotiation)

	// Lunch: 50% of 20% = 10% -> 270, which is exactly the 90% floor.
	assert.Equal(t, 870.0, offer.Total)
}

func TestComputeOffer_FinalOfferCappedByFloor(t *testing.T) {
	offer := testEngine().ComputeOffer(cateringCart(), pricing.Context{}, OfferPhaseFinal)

	// Lunch at the vendor's full 20% would be 240; the floor holds it at 270.
	assert.Equal(t, 870.0, offer.Total)
}

func TestComputeOffer_FixedPricePassthroughEveryPhase(t *testing.T) {
	cart := models.Cart{{
		Package: models.Package{
			PackageName: "Plated Dinner",
			Meals:       &models.MealsPricing{Dinner: leaf(400, 0)},
		},
	}}

	for _, phase := range []OfferPhase{OfferPhaseFirst, OfferPhaseRenegotiation, OfferPhaseFinal} {
		offer := testEngine().ComputeOffer(cart, pricing.Context{}, phase)
		assert.Equal(t, 400.0, offer.Total, "phase %s", phase)
		assert.True(t, offer.Items["Plated Dinner_catering"].IsFixedPrice)
	}
}

func TestComputeOffer_MonotonicImprovement(t *testing.T) {
	cart := models.Cart{
		{Package: models.Package{
			PackageName: "Candid Shots",
			Photography: &models.EventPricing{PerEvent: leaf(5000, 8)},
		}},
		{Package: models.Package{
			PackageName: "Hill Station Trip",
			Travel:      &models.TravelPricing{GroupPricing: leaf(15000, 12)},
		}},
	}
	ctx := pricing.Context{}
	e := testEngine()

	first := e.ComputeOffer(cart, ctx, OfferPhaseFirst).Total
	second := e.ComputeOffer(cart, ctx, OfferPhaseRenegotiation).Total
	final := e.ComputeOffer(cart, ctx, OfferPhaseFinal).Total

	assert.LessOrEqual(t, second, first)
	assert.LessOrEqual(t, final, second)
}

func TestComputeOffer_ProfitabilityFloorNeverCrossed(t *testing.T) {
	carts := []models.Cart{
		cateringCart(),
		{{Package: models.Package{
			PackageName: "Deep Discount Cake",
			Cakes:       &models.UnitPricing{Unit: leaf(1000, 80)},
		}}},
		{{Package: models.Package{PackageName: "Plain", OriginalPrice: 500}}},
	}

	for _, cart := range carts {
		for _, phase := range []OfferPhase{OfferPhaseFirst, OfferPhaseRenegotiation, OfferPhaseFinal} {
			offer := testEngine().ComputeOffer(cart, pricing.Context{}, phase)
			for key, item := range offer.Items {
				floor := math.Round(item.BasePrice * 0.9)
				assert.GreaterOrEqual(t, item.OfferPrice, floor, "%s in phase %s", key, phase)
			}
		}
	}
}

func TestComputeOffer_PlainFallbackUsesBoundedRandomDiscount(t *testing.T) {
	cart := models.Cart{{Package: models.Package{PackageName: "Venue Hire", OriginalPrice: 10000}}}

	first := testEngine().ComputeOffer(cart, pricing.Context{}, OfferPhaseFirst).Total
	// 1-2% off on the first offer.
	assert.GreaterOrEqual(t, first, math.Round(10000*0.98))
	assert.LessOrEqual(t, first, math.Round(10000*0.99))

	second := testEngine().ComputeOffer(cart, pricing.Context{}, OfferPhaseRenegotiation).Total
	// 3-5% off on renegotiation.
	assert.GreaterOrEqual(t, second, math.Round(10000*0.95))
	assert.LessOrEqual(t, second, math.Round(10000*0.97))
}

func TestComputeOffer_SeededEngineIsDeterministic(t *testing.T) {
	cart := models.Cart{{Package: models.Package{PackageName: "Venue Hire", OriginalPrice: 10000}}}

	a := NewEngine(rand.NewSource(7)).ComputeOffer(cart, pricing.Context{}, OfferPhaseFirst)
	b := NewEngine(rand.NewSource(7)).ComputeOffer(cart, pricing.Context{}, OfferPhaseFirst)
	assert.Equal(t, a, b)
}
