package booking

import (
	"errors"

	"festivo/models"
)

// Validation errors surfaced to the customer; any one of them blocks
// submission outright, nothing is partially written.
var (
	ErrNoPackages            = errors.New("select at least one package")
	ErrContactRequired       = errors.New("name, phone and email are required")
	ErrTravelDetailsRequired = errors.New("aadhar number and travel dates are required for travel bookings")
	ErrEventDetailsRequired  = errors.New("event date, location and description are required")
	ErrGuestCountRequired    = errors.New("guest count must be greater than zero")
)

// IsValidationError reports whether err is a customer-input problem rather
// than an infrastructure failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoPackages) ||
		errors.Is(err, ErrContactRequired) ||
		errors.Is(err, ErrTravelDetailsRequired) ||
		errors.Is(err, ErrEventDetailsRequired) ||
		errors.Is(err, ErrGuestCountRequired)
}

// validateSubmission checks the customer fields against the cart composition.
func validateSubmission(cart models.Cart, customer models.CustomerDetails) error {
	if len(cart) == 0 {
		return ErrNoPackages
	}
	if customer.Name == "" || customer.Phone == "" || customer.Email == "" {
		return ErrContactRequired
	}
	if cart.HasTravel() {
		if customer.AadharNumber == "" || customer.TravelStartDate == "" || customer.TravelEndDate == "" {
			return ErrTravelDetailsRequired
		}
	} else {
		if customer.EventDate == "" || customer.EventLocation == "" || customer.EventDescription == "" {
			return ErrEventDetailsRequired
		}
	}
	if cart.RequiresGuestCount() && customer.GuestCount <= 0 {
		return ErrGuestCountRequired
	}
	return nil
}
