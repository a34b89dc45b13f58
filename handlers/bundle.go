package handlers

// HandlerBundle aggregates the handlers wired in main for route registration.
type HandlerBundle struct {
	Booking *BookingHandler
	Catalog *CatalogHandler
}
