package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"festivo/models"
	"festivo/services/booking"
	"festivo/services/negotiation"
	"festivo/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type negotiationMock struct {
	getSessionFn func(string) (*models.SessionResponse, error)
	negotiateFn  func(string) (*models.SessionResponse, error)
}

func (m *negotiationMock) StartSession(string, negotiation.CartInput) (*models.SessionResponse, error) {
	return nil, nil
}
func (m *negotiationMock) GetSession(id string) (*models.SessionResponse, error) {
	return m.getSessionFn(id)
}
func (m *negotiationMock) UpdateCart(string, negotiation.CartInput) (*models.SessionResponse, error) {
	return nil, nil
}
func (m *negotiationMock) Negotiate(id string) (*models.SessionResponse, error) {
	return m.negotiateFn(id)
}
func (m *negotiationMock) Accept(string) (*models.SessionResponse, error)          { return nil, nil }
func (m *negotiationMock) CancelOffer(string) (*models.SessionResponse, error)     { return nil, nil }
func (m *negotiationMock) Renegotiate(string) (*models.SessionResponse, error)     { return nil, nil }
func (m *negotiationMock) ApplyFinalOffer(string) (*models.SessionResponse, error) { return nil, nil }
func (m *negotiationMock) SetUserBudget(string, float64) (*models.SessionResponse, error) {
	return nil, nil
}
func (m *negotiationMock) CancelSession(string) error { return nil }

type bookingMock struct {
	submitFn func(string, models.CustomerDetails) (*models.BookingRecord, error)
}

func (m *bookingMock) SubmitBooking(id string, customer models.CustomerDetails) (*models.BookingRecord, error) {
	return m.submitFn(id, customer)
}
func (m *bookingMock) GetBooking(string) (*models.BookingRecord, error)          { return nil, nil }
func (m *bookingMock) ListUserBookings(string) ([]models.BookingRecord, error)   { return nil, nil }
func (m *bookingMock) ListVendorBookings(string) ([]models.BookingRecord, error) { return nil, nil }

func newTestRouter(negSvc negotiation.Service, bookSvc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(negSvc, bookSvc, zap.NewNop())

	r := gin.New()
	r.GET("/api/booking/session/:sessionID", h.GetSession)
	r.POST("/api/booking/session/:sessionID/negotiate", h.Negotiate)
	r.POST("/api/booking/submit", h.SubmitBooking)
	return r
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetSession_UnknownSessionReturnsStructuredNotFound(t *testing.T) {
	r := newTestRouter(&negotiationMock{
		getSessionFn: func(string) (*models.SessionResponse, error) {
			return nil, negotiation.ErrSessionNotFound
		},
	}, &bookingMock{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/session/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, negotiation.ErrSessionNotFound.Error(), decodeError(t, w).Message)
}

func TestNegotiate_InvalidTransitionReturnsStructuredConflict(t *testing.T) {
	r := newTestRouter(&negotiationMock{
		negotiateFn: func(string) (*models.SessionResponse, error) {
			return nil, negotiation.ErrInvalidTransition
		},
	}, &bookingMock{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/session/sess-1/negotiate", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, negotiation.ErrInvalidTransition.Error(), decodeError(t, w).Message)
}

func TestSubmitBooking_ValidationFailureReturnsStructuredBadRequest(t *testing.T) {
	r := newTestRouter(&negotiationMock{}, &bookingMock{
		submitFn: func(string, models.CustomerDetails) (*models.BookingRecord, error) {
			return nil, booking.ErrContactRequired
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/submit",
		strings.NewReader(`{"sessionID":"sess-1","customer":{}}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, booking.ErrContactRequired.Error(), decodeError(t, w).Message)
}

func TestSubmitBooking_StorageFailureReturnsRetryableError(t *testing.T) {
	r := newTestRouter(&negotiationMock{}, &bookingMock{
		submitFn: func(string, models.CustomerDetails) (*models.BookingRecord, error) {
			return nil, errors.New("mongo write timeout")
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/submit",
		strings.NewReader(`{"sessionID":"sess-1","customer":{}}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "booking submission failed, please retry", body.Message)
	assert.NotContains(t, body.Details, "mongo")
}

func TestSubmitBooking_MalformedBodyReturnsStructuredBadRequest(t *testing.T) {
	r := newTestRouter(&negotiationMock{}, &bookingMock{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/submit", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid input", decodeError(t, w).Message)
}
