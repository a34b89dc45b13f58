package pricing

import "festivo/models"

// Context carries booking-level pricing inputs. MemberCount applies to every
// travel package in the cart; it is not a per-package figure.
type Context struct {
	MemberCount int
}

func (c Context) members() int {
	if c.MemberCount < 1 {
		return 1
	}
	return c.MemberCount
}

// Component is one billable element of a package: a meal leaf, an hourly
// block, a unit run. HasVendorDiscount is false only for the plain-price
// fallback, which carries no per-leaf discount field at all.
type Component struct {
	Base              float64
	VendorDiscount    float64
	HasVendorDiscount bool
}

// resolverEntry binds a category tag to its pricing rule. Adding a category
// means adding one entry here; dispatch order matches Package.Category.
type resolverEntry struct {
	category string
	applies  func(models.Package) bool
	resolve  func(models.Package, models.Selection, Context) []Component
}

var resolvers = []resolverEntry{
	{
		category: models.CategoryCatering,
		applies:  func(p models.Package) bool { return p.Meals != nil },
		resolve:  resolveMeals,
	},
	{
		category: models.CategoryPhotography,
		applies:  func(p models.Package) bool { return p.Photography != nil },
		resolve: func(p models.Package, s models.Selection, c Context) []Component {
			return resolveEvent(p.Photography, s)
		},
	},
	{
		category: models.CategoryDJ,
		applies:  func(p models.Package) bool { return p.DJ != nil },
		resolve: func(p models.Package, s models.Selection, c Context) []Component {
			return resolveEvent(p.DJ, s)
		},
	},
	{
		category: models.CategoryDecoration,
		applies:  func(p models.Package) bool { return p.Decoration != nil },
		resolve: func(p models.Package, s models.Selection, c Context) []Component {
			return resolveUnit(p.Decoration, s)
		},
	},
	{
		category: models.CategoryCakes,
		applies:  func(p models.Package) bool { return p.Cakes != nil },
		resolve: func(p models.Package, s models.Selection, c Context) []Component {
			return resolveUnit(p.Cakes, s)
		},
	},
	{
		category: models.CategoryTravel,
		applies:  func(p models.Package) bool { return p.Travel != nil },
		resolve:  resolveTravel,
	},
	{
		category: models.CategoryGeneral,
		applies:  func(models.Package) bool { return true },
		resolve:  resolvePlain,
	},
}

// Components resolves a package + selection into its billable components.
// Pure; missing nested fields contribute nothing rather than erroring.
func Components(pkg models.Package, sel models.Selection, ctx Context) []Component {
	sel = sel.Normalize(pkg)
	for _, r := range resolvers {
		if r.applies(pkg) {
			return r.resolve(pkg, sel, ctx)
		}
	}
	return nil
}

// ResolveBasePrice returns the undiscounted price of one package under the
// given selection.
func ResolveBasePrice(pkg models.Package, sel models.Selection, ctx Context) float64 {
	var total float64
	for _, c := range Components(pkg, sel, ctx) {
		total += c.Base
	}
	return total
}

func leafComponent(leaf *models.PriceLeaf, multiplier float64) []Component {
	if leaf == nil {
		return nil
	}
	return []Component{{
		Base:              leaf.OriginalPrice * multiplier,
		VendorDiscount:    leaf.Discount,
		HasVendorDiscount: true,
	}}
}

func resolveMeals(pkg models.Package, sel models.Selection, _ Context) []Component {
	var out []Component
	if sel.Meals.Breakfast {
		out = append(out, leafComponent(pkg.Meals.Breakfast, 1)...)
	}
	if sel.Meals.Lunch {
		out = append(out, leafComponent(pkg.Meals.Lunch, 1)...)
	}
	if sel.Meals.Dinner {
		out = append(out, leafComponent(pkg.Meals.Dinner, 1)...)
	}
	return out
}

func resolveEvent(pricing *models.EventPricing, sel models.Selection) []Component {
	if sel.EventType == models.EventTypePerHour {
		return leafComponent(pricing.PerHour, float64(sel.Hours))
	}
	return leafComponent(pricing.PerEvent, 1)
}

func resolveUnit(pricing *models.UnitPricing, sel models.Selection) []Component {
	return leafComponent(pricing.Unit, float64(sel.Quantity))
}

func resolveTravel(pkg models.Package, sel models.Selection, ctx Context) []Component {
	if sel.PricingType == models.PricingTypeGroup {
		return leafComponent(pkg.Travel.GroupPricing, 1)
	}
	return leafComponent(pkg.Travel.PersonPricing, float64(ctx.members()))
}

func resolvePlain(pkg models.Package, _ models.Selection, _ Context) []Component {
	base := pkg.OriginalPrice
	if base == 0 {
		base = pkg.Price
	}
	return []Component{{Base: base}}
}
