package booking

import (
	"festivo/models"
	"festivo/services/pricing"
)

// resolveFinalAmount picks what the customer actually pays, highest priority
// first: manual budget override, frozen negotiated price, plain invoice total.
// The budget override deliberately skips the profitability floor.
func resolveFinalAmount(session *models.BookingSession, invoice *models.Invoice) float64 {
	n := session.Negotiation
	if n.UserBudget != nil {
		return *n.UserBudget
	}
	if n.Finalized() {
		return n.FinalizedPrice
	}
	return invoice.FinalTotal
}

// summarize produces the display-ready selection summary for one cart line so
// downstream consumers never re-run pricing logic.
func summarize(item models.CartItem, memberCount int) models.SelectionSummary {
	sel := item.Selection.Normalize(item.Package)
	var sum models.SelectionSummary

	switch item.Package.Category() {
	case models.CategoryCatering:
		if sel.Meals.Breakfast && item.Package.Meals.Breakfast != nil {
			sum.Meals = append(sum.Meals, "breakfast")
		}
		if sel.Meals.Lunch && item.Package.Meals.Lunch != nil {
			sum.Meals = append(sum.Meals, "lunch")
		}
		if sel.Meals.Dinner && item.Package.Meals.Dinner != nil {
			sum.Meals = append(sum.Meals, "dinner")
		}
	case models.CategoryPhotography, models.CategoryDJ:
		sum.EventType = sel.EventType
		if sel.EventType == models.EventTypePerHour {
			sum.Hours = sel.Hours
		}
	case models.CategoryDecoration, models.CategoryCakes:
		sum.Quantity = sel.Quantity
	case models.CategoryTravel:
		sum.PricingType = sel.PricingType
		if sel.PricingType == models.PricingTypePerson {
			sum.MemberCount = memberCount
		}
	}
	return sum
}

// AssembleBooking builds the persisted booking snapshot from a session and
// the validated customer fields. It does not write anything.
func AssembleBooking(session *models.BookingSession, customer models.CustomerDetails) *models.BookingRecord {
	ctx := pricing.Context{MemberCount: session.MemberCount}
	invoice := pricing.ComputeInvoice(session.Cart, ctx)

	packages := make([]models.BookedPackage, 0, len(session.Cart))
	for _, item := range session.Cart {
		packages = append(packages, models.BookedPackage{
			PackageID:   item.Package.ID,
			PackageName: item.Package.PackageName,
			Category:    item.Package.Category(),
			Selection:   item.Selection.Normalize(item.Package),
			Summary:     summarize(item, session.MemberCount),
			BasePrice:   pricing.ResolveBasePrice(item.Package, item.Selection, ctx),
		})
	}

	return &models.BookingRecord{
		UserID:         session.UserID,
		VendorID:       session.VendorID,
		Customer:       customer,
		Packages:       packages,
		MemberCount:    session.MemberCount,
		Subtotal:       invoice.Subtotal,
		ConvenienceFee: invoice.ConvenienceFee,
		OriginalPrice:  invoice.FinalTotal,
		TotalAmount:    resolveFinalAmount(session, invoice),
		IsNegotiated:   session.Negotiation.Finalized(),
		Status:         models.BookingStatusPending,
	}
}
