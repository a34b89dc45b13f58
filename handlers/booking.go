package handlers

import (
	"errors"
	"net/http"

	"festivo/models"
	"festivo/services/booking"
	"festivo/services/negotiation"
	"festivo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the negotiation session and submission endpoints.
type BookingHandler struct {
	Negotiation negotiation.Service
	Booking     booking.Service
	Logger      *zap.Logger
}

func NewBookingHandler(negSvc negotiation.Service, bookSvc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Negotiation: negSvc, Booking: bookSvc, Logger: logger}
}

func (h *BookingHandler) respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, negotiation.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, negotiation.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		h.Logger.Error("session operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "session operation failed", err.Error())
	}
}

// StartSession creates a new booking session from the customer's cart.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		UserID string                `json:"userId"`
		Cart   negotiation.CartInput `json:"cartInput"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Negotiation.StartSession(input.UserID, input.Cart)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession returns the session with its derived invoice.
func (h *BookingHandler) GetSession(c *gin.Context) {
	resp, err := h.Negotiation.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateCart replaces the session's cart and selections.
func (h *BookingHandler) UpdateCart(c *gin.Context) {
	var input negotiation.CartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Negotiation.UpdateCart(c.Param("sessionID"), input)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) sessionOp(c *gin.Context, op func(string) (*models.SessionResponse, error)) {
	resp, err := op(c.Param("sessionID"))
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Negotiate asks for the first discounted offer.
func (h *BookingHandler) Negotiate(c *gin.Context) {
	h.sessionOp(c, h.Negotiation.Negotiate)
}

// Accept freezes the current offer.
func (h *BookingHandler) Accept(c *gin.Context) {
	h.sessionOp(c, h.Negotiation.Accept)
}

// CancelOffer rejects the current offer, keeping the session open.
func (h *BookingHandler) CancelOffer(c *gin.Context) {
	h.sessionOp(c, h.Negotiation.CancelOffer)
}

// Renegotiate requests the single improved offer.
func (h *BookingHandler) Renegotiate(c *gin.Context) {
	h.sessionOp(c, h.Negotiation.Renegotiate)
}

// ApplyFinalOffer applies the vendor's last-word price.
func (h *BookingHandler) ApplyFinalOffer(c *gin.Context) {
	h.sessionOp(c, h.Negotiation.ApplyFinalOffer)
}

// SetBudget records a manual customer budget on a finalized session.
func (h *BookingHandler) SetBudget(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Negotiation.SetUserBudget(c.Param("sessionID"), input.Amount)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelSession discards the session outright.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Negotiation.CancelSession(c.Param("sessionID")); err != nil {
		h.respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// SubmitBooking validates and persists the final booking record.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var input struct {
		SessionID string                 `json:"sessionID"`
		Customer  models.CustomerDetails `json:"customer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := h.Booking.SubmitBooking(input.SessionID, input.Customer)
	if err != nil {
		switch {
		case booking.IsValidationError(err):
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		case errors.Is(err, negotiation.ErrSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		default:
			// Session is preserved; the client may simply retry.
			h.Logger.Error("booking submission failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "booking submission failed, please retry", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// GetBooking fetches one persisted booking record.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	record, err := h.Booking.GetBooking(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// ListUserBookings returns every booking a customer has submitted.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	records, err := h.Booking.ListUserBookings(c.Param("userID"))
	if err != nil {
		h.Logger.Error("failed to list user bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// ListVendorBookings returns every booking addressed to a vendor.
func (h *BookingHandler) ListVendorBookings(c *gin.Context) {
	records, err := h.Booking.ListVendorBookings(c.Param("vendorID"))
	if err != nil {
		h.Logger.Error("failed to list vendor bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}
