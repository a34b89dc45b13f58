package models

// CartItem pairs a selected package with the customer's configuration for it.
type CartItem struct {
	Package   Package   `bson:"package" json:"package"`
	Selection Selection `bson:"selection" json:"selection"`
}

// Cart is the working set of selected packages for one booking session. It is
// built incrementally in the client and replaced wholesale on every update.
type Cart []CartItem

// HasTravel reports whether any travel package is in the cart.
func (c Cart) HasTravel() bool {
	for _, item := range c {
		if item.Package.Category() == CategoryTravel {
			return true
		}
	}
	return false
}

// RequiresGuestCount reports whether the cart contains a package whose service
// is sized by guest count. Photography, DJ, decoration, cake and travel
// packages are priced independently of guests.
func (c Cart) RequiresGuestCount() bool {
	for _, item := range c {
		switch item.Package.Category() {
		case CategoryPhotography, CategoryDJ, CategoryDecoration, CategoryCakes, CategoryTravel:
			continue
		default:
			return true
		}
	}
	return false
}
