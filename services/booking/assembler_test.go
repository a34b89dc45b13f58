package booking

import (
	"testing"

	"festivo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(price, discount float64) *models.PriceLeaf {
	return &models.PriceLeaf{OriginalPrice: price, Discount: discount}
}

func cateringItem() models.CartItem {
	return models.CartItem{Package: models.Package{
		ID:          "pkg-catering",
		PackageName: "Royal Feast",
		Meals: &models.MealsPricing{
			Breakfast: leaf(200, 0),
			Lunch:     leaf(300, 20),
			Dinner:    leaf(400, 0),
		},
	}}
}

func travelItem() models.CartItem {
	return models.CartItem{Package: models.Package{
		PackageName: "Hill Station Trip",
		Travel: &models.TravelPricing{
			PersonPricing: leaf(2000, 10),
			GroupPricing:  leaf(15000, 10),
		},
	}}
}

func validCustomer() models.CustomerDetails {
	return models.CustomerDetails{
		Name:             "Asha Rao",
		Phone:            "9876543210",
		Email:            "asha@example.com",
		EventDate:        "2026-10-12",
		EventLocation:    "Bengaluru",
		EventDescription: "Wedding reception",
		GuestCount:       120,
	}
}

func cateringSession() *models.BookingSession {
	return &models.BookingSession{
		SessionID: "sess-1",
		UserID:    "user-1",
		VendorID:  "vendor-1",
		Cart:      models.Cart{cateringItem()},
	}
}

func TestValidateSubmission(t *testing.T) {
	travelCustomer := validCustomer()
	travelCustomer.EventDate = ""
	travelCustomer.EventLocation = ""
	travelCustomer.EventDescription = ""
	travelCustomer.AadharNumber = "1234-5678-9012"
	travelCustomer.TravelStartDate = "2026-11-01"
	travelCustomer.TravelEndDate = "2026-11-05"

	noContact := validCustomer()
	noContact.Email = ""

	noGuests := validCustomer()
	noGuests.GuestCount = 0

	tests := []struct {
		name     string
		cart     models.Cart
		customer models.CustomerDetails
		wantErr  error
	}{
		{"empty cart", models.Cart{}, validCustomer(), ErrNoPackages},
		{"missing contact", models.Cart{cateringItem()}, noContact, ErrContactRequired},
		{"catering needs event details", models.Cart{cateringItem()}, models.CustomerDetails{
			Name: "A", Phone: "1", Email: "a@b.c", GuestCount: 10,
		}, ErrEventDetailsRequired},
		{"catering needs guest count", models.Cart{cateringItem()}, noGuests, ErrGuestCountRequired},
		{"travel needs aadhar and dates", models.Cart{travelItem()}, validCustomer(), ErrTravelDetailsRequired},
		{"travel cart skips event details", models.Cart{travelItem()}, travelCustomer, nil},
		{"valid catering submission", models.Cart{cateringItem()}, validCustomer(), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSubmission(tt.cart, tt.customer)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidationError(err))
			}
		})
	}
}

func TestGuestCountNotRequiredForGuestIndependentCart(t *testing.T) {
	cart := models.Cart{{Package: models.Package{
		PackageName: "Candid Shots",
		Photography: &models.EventPricing{PerEvent: leaf(5000, 10)},
	}}}

	customer := validCustomer()
	customer.GuestCount = 0
	assert.NoError(t, validateSubmission(cart, customer))
}

func TestAssembleBooking_PlainInvoice(t *testing.T) {
	record := AssembleBooking(cateringSession(), validCustomer())

	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "vendor-1", record.VendorID)
	assert.Equal(t, 900.0, record.Subtotal)
	assert.Equal(t, 9.0, record.ConvenienceFee)
	assert.Equal(t, 909.0, record.OriginalPrice)
	assert.Equal(t, 909.0, record.TotalAmount)
	assert.False(t, record.IsNegotiated)
	assert.Equal(t, models.BookingStatusPending, record.Status)

	require.Len(t, record.Packages, 1)
	pkg := record.Packages[0]
	assert.Equal(t, "Royal Feast", pkg.PackageName)
	assert.Equal(t, models.CategoryCatering, pkg.Category)
	assert.Equal(t, 900.0, pkg.BasePrice)
	assert.ElementsMatch(t, []string{"breakfast", "lunch", "dinner"}, pkg.Summary.Meals)
}

func TestAssembleBooking_NegotiatedPriceWins(t *testing.T) {
	session := cateringSession()
	session.Negotiation = models.NegotiationState{
		Phase:          models.PhaseFinalized,
		FinalizedPrice: 870,
	}

	record := AssembleBooking(session, validCustomer())
	assert.Equal(t, 909.0, record.OriginalPrice)
	assert.Equal(t, 870.0, record.TotalAmount)
	assert.True(t, record.IsNegotiated)
}

func TestAssembleBooking_BudgetOverrideWinsOverNegotiatedPrice(t *testing.T) {
	budget := 800.0
	session := cateringSession()
	session.Negotiation = models.NegotiationState{
		Phase:          models.PhaseFinalized,
		FinalizedPrice: 870,
		UserBudget:     &budget,
	}

	record := AssembleBooking(session, validCustomer())
	assert.Equal(t, 800.0, record.TotalAmount)
	assert.True(t, record.IsNegotiated)
}

func TestAssembleBooking_ActiveOfferIgnoredUntilFinalized(t *testing.T) {
	session := cateringSession()
	session.Negotiation = models.NegotiationState{
		Phase:             models.PhaseNegotiating,
		CurrentOfferPrice: 888,
	}

	record := AssembleBooking(session, validCustomer())
	assert.Equal(t, 909.0, record.TotalAmount)
	assert.False(t, record.IsNegotiated)
}

func TestSummarize_PerCategoryFields(t *testing.T) {
	hourly := models.CartItem{
		Package: models.Package{
			PackageName: "Club Night",
			DJ:          &models.EventPricing{PerHour: leaf(800, 0)},
		},
		Selection: models.Selection{EventType: models.EventTypePerHour, Hours: 4},
	}
	sum := summarize(hourly, 0)
	assert.Equal(t, models.EventTypePerHour, sum.EventType)
	assert.Equal(t, 4, sum.Hours)

	cakes := models.CartItem{
		Package:   models.Package{PackageName: "Tiered Cake", Cakes: &models.UnitPricing{Unit: leaf(1000, 0)}},
		Selection: models.Selection{Quantity: 2},
	}
	assert.Equal(t, 2, summarize(cakes, 0).Quantity)

	trip := travelItem()
	sum = summarize(trip, 4)
	assert.Equal(t, models.PricingTypePerson, sum.PricingType)
	assert.Equal(t, 4, sum.MemberCount)

	trip.Selection = models.Selection{PricingType: models.PricingTypeGroup}
	sum = summarize(trip, 4)
	assert.Equal(t, models.PricingTypeGroup, sum.PricingType)
	assert.Zero(t, sum.MemberCount)

	partial := cateringItem()
	partial.Selection = models.Selection{Meals: &models.MealSelection{Lunch: true}}
	assert.Equal(t, []string{"lunch"}, summarize(partial, 0).Meals)
}

func TestAssembleBooking_TravelSharedMemberCount(t *testing.T) {
	session := &models.BookingSession{
		UserID:      "user-1",
		Cart:        models.Cart{travelItem()},
		MemberCount: 4,
	}

	record := AssembleBooking(session, validCustomer())
	require.Len(t, record.Packages, 1)
	assert.Equal(t, 8000.0, record.Packages[0].BasePrice)
	assert.Equal(t, 8000.0, record.Subtotal)
	assert.Equal(t, 80.0, record.ConvenienceFee)
}
