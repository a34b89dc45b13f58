package models

// Package categories, in resolver dispatch order.
const (
	CategoryCatering    = "catering"
	CategoryPhotography = "photography"
	CategoryDJ          = "dj"
	CategoryDecoration  = "decoration"
	CategoryCakes       = "cakes"
	CategoryTravel      = "travel"
	CategoryGeneral     = "general"
)

// PriceLeaf is a single vendor-set price point inside a package. Discount is
// the vendor's nominal sale percentage (0-100); it is negotiation input, not a
// figure shown to the customer directly.
type PriceLeaf struct {
	OriginalPrice float64 `bson:"originalPrice" json:"originalPrice"`
	Discount      float64 `bson:"discount" json:"discount"`
}

// MealsPricing prices a catering package per meal. A nil leaf means the vendor
// does not offer that meal.
type MealsPricing struct {
	Breakfast *PriceLeaf `bson:"breakfast,omitempty" json:"breakfast,omitempty"`
	Lunch     *PriceLeaf `bson:"lunch,omitempty" json:"lunch,omitempty"`
	Dinner    *PriceLeaf `bson:"dinner,omitempty" json:"dinner,omitempty"`
}

// EventPricing prices photography and DJ packages either per event or per hour.
type EventPricing struct {
	PerEvent *PriceLeaf `bson:"perEvent,omitempty" json:"perEvent,omitempty"`
	PerHour  *PriceLeaf `bson:"perHour,omitempty" json:"perHour,omitempty"`
}

// UnitPricing prices decoration and cake packages per unit.
type UnitPricing struct {
	Unit *PriceLeaf `bson:"unit,omitempty" json:"unit,omitempty"`
}

// TravelPricing prices travel packages per person or as a flat group rate.
type TravelPricing struct {
	PersonPricing *PriceLeaf `bson:"personPricing,omitempty" json:"personPricing,omitempty"`
	GroupPricing  *PriceLeaf `bson:"groupPricing,omitempty" json:"groupPricing,omitempty"`
}

// Package is a vendor-defined offering. Exactly one pricing variant should be
// populated; when none is, OriginalPrice (or Price) is the plain fallback.
type Package struct {
	ID          string   `bson:"id" json:"id"`
	VendorID    string   `bson:"vendorId" json:"vendorId"`
	PackageName string   `bson:"packageName" json:"packageName"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	ImageURLs   []string `bson:"imageUrls,omitempty" json:"imageUrls,omitempty"`

	Meals       *MealsPricing  `bson:"meals,omitempty" json:"meals,omitempty"`
	Photography *EventPricing  `bson:"photography,omitempty" json:"photography,omitempty"`
	DJ          *EventPricing  `bson:"dj,omitempty" json:"dj,omitempty"`
	Decoration  *UnitPricing   `bson:"decoration,omitempty" json:"decoration,omitempty"`
	Cakes       *UnitPricing   `bson:"cakes,omitempty" json:"cakes,omitempty"`
	Travel      *TravelPricing `bson:"travel,omitempty" json:"travel,omitempty"`

	// Plain fallback pricing for packages without a category variant.
	OriginalPrice float64 `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	Price         float64 `bson:"price,omitempty" json:"price,omitempty"`
}

// Category reports which pricing variant is active, first-match order:
// meals, photography, dj, decoration, cakes, travel, plain fallback.
func (p Package) Category() string {
	switch {
	case p.Meals != nil:
		return CategoryCatering
	case p.Photography != nil:
		return CategoryPhotography
	case p.DJ != nil:
		return CategoryDJ
	case p.Decoration != nil:
		return CategoryDecoration
	case p.Cakes != nil:
		return CategoryCakes
	case p.Travel != nil:
		return CategoryTravel
	default:
		return CategoryGeneral
	}
}
