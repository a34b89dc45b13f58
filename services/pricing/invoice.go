package pricing

import "festivo/models"

// ConvenienceFeeRate is the platform fee applied on top of the subtotal.
const ConvenienceFeeRate = 0.01

// ComputeInvoice derives the invoice for a cart. It returns nil for an empty
// cart so callers can distinguish "nothing selected" from a zero total. The
// fee stays an unrounded float; rounding is a display concern.
func ComputeInvoice(cart models.Cart, ctx Context) *models.Invoice {
	if len(cart) == 0 {
		return nil
	}
	var subtotal float64
	for _, item := range cart {
		subtotal += ResolveBasePrice(item.Package, item.Selection, ctx)
	}
	fee := subtotal * ConvenienceFeeRate
	return &models.Invoice{
		Subtotal:       subtotal,
		ConvenienceFee: fee,
		FinalTotal:     subtotal + fee,
	}
}

// InvoiceForSession derives the invoice the client should see for a session:
// while a live negotiation offer exists the offer price replaces the subtotal
// in the final total. Discounting never leaks into the base invoice itself.
func InvoiceForSession(session *models.BookingSession) *models.Invoice {
	ctx := Context{MemberCount: session.MemberCount}
	inv := ComputeInvoice(session.Cart, ctx)
	if inv == nil {
		return nil
	}
	if session.Negotiation.Active() {
		inv.FinalTotal = session.Negotiation.CurrentOfferPrice + inv.ConvenienceFee
	}
	return inv
}
