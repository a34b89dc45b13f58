package routes

import (
	"net/http"
	"time"

	"festivo/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the read-only package catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/packages", hb.Catalog.ListVendorPackages)
		api.GET("/packages/:id", hb.Catalog.GetPackage)
	}
}

// RegisterBookingRoutes sets up the endpoints for the negotiation engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.Booking.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.PUT("/session/:sessionID/cart", hb.Booking.UpdateCart)
		bookingGroup.POST("/session/:sessionID/negotiate", hb.Booking.Negotiate)
		bookingGroup.POST("/session/:sessionID/accept", hb.Booking.Accept)
		bookingGroup.POST("/session/:sessionID/cancel-offer", hb.Booking.CancelOffer)
		bookingGroup.POST("/session/:sessionID/renegotiate", hb.Booking.Renegotiate)
		bookingGroup.POST("/session/:sessionID/final-offer", hb.Booking.ApplyFinalOffer)
		bookingGroup.POST("/session/:sessionID/budget", hb.Booking.SetBudget)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)
		bookingGroup.POST("/submit", hb.Booking.SubmitBooking)
		bookingGroup.GET("/user/:userID", hb.Booking.ListUserBookings)
		bookingGroup.GET("/vendor/:vendorID", hb.Booking.ListVendorBookings)
		bookingGroup.GET("/:id", hb.Booking.GetBooking)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Festivo"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
