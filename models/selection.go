package models

// Billing modes for hour-based and travel packages.
const (
	EventTypePerEvent = "per_event"
	EventTypePerHour  = "per_hour"

	PricingTypePerson = "person"
	PricingTypeGroup  = "group"
)

// MealSelection marks which meals the customer keeps in a catering package.
type MealSelection struct {
	Breakfast bool `bson:"breakfast" json:"breakfast"`
	Lunch     bool `bson:"lunch" json:"lunch"`
	Dinner    bool `bson:"dinner" json:"dinner"`
}

// Selection is the customer's per-package configuration. Fields that do not
// apply to the package's category are ignored by the resolvers.
type Selection struct {
	Meals       *MealSelection `bson:"meals,omitempty" json:"meals,omitempty"`
	EventType   string         `bson:"eventType,omitempty" json:"eventType,omitempty"`
	Hours       int            `bson:"hours,omitempty" json:"hours,omitempty"`
	Quantity    int            `bson:"quantity,omitempty" json:"quantity,omitempty"`
	PricingType string         `bson:"pricingType,omitempty" json:"pricingType,omitempty"`
}

// DefaultSelectionFor builds the selection used when the customer has not
// configured the package: all offered meals included, per-event billing,
// one hour, one unit, per-person travel pricing.
func DefaultSelectionFor(pkg Package) Selection {
	sel := Selection{
		EventType:   EventTypePerEvent,
		Hours:       1,
		Quantity:    1,
		PricingType: PricingTypePerson,
	}
	if pkg.Meals != nil {
		sel.Meals = &MealSelection{Breakfast: true, Lunch: true, Dinner: true}
	}
	return sel
}

// Normalize fills zero-valued fields with their defaults so downstream pricing
// never branches on missing input.
func (s Selection) Normalize(pkg Package) Selection {
	def := DefaultSelectionFor(pkg)
	if s.Meals == nil {
		s.Meals = def.Meals
	}
	if s.EventType == "" {
		s.EventType = def.EventType
	}
	if s.Hours < 1 {
		s.Hours = def.Hours
	}
	if s.Quantity < 1 {
		s.Quantity = def.Quantity
	}
	if s.PricingType == "" {
		s.PricingType = def.PricingType
	}
	return s
}
