package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"luxride/models"
	"luxride/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePaymentService returns scripted results for handler tests.
type fakePaymentService struct {
	checkout    *models.CheckoutResult
	checkoutErr error
	status      *models.CheckoutStatus
	statusErr   error
	webhookErr  error

	webhookPayload   []byte
	webhookSignature string
}

func (f *fakePaymentService) CreateCheckout(_ context.Context, _, _ string) (*models.CheckoutResult, error) {
	return f.checkout, f.checkoutErr
}

func (f *fakePaymentService) PollStatus(_ context.Context, _ string) (*models.CheckoutStatus, error) {
	return f.status, f.statusErr
}

func (f *fakePaymentService) HandleWebhook(_ context.Context, payload []byte, signature string) error {
	f.webhookPayload = payload
	f.webhookSignature = signature
	return f.webhookErr
}

func paymentRouter(svc payment.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPaymentHandler(svc)
	r.POST("/api/payments/checkout", h.CreateCheckoutHandler)
	r.GET("/api/payments/status/:sessionID", h.PaymentStatusHandler)
	r.POST("/api/webhook/stripe", h.StripeWebhookHandler)
	return r
}

const checkoutJSON = `{"booking_id": "bk-1", "origin_url": "https://example.com"}`

func postCheckout(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/checkout", strings.NewReader(checkoutJSON))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutHandlerSuccess(t *testing.T) {
	svc := &fakePaymentService{checkout: &models.CheckoutResult{URL: "https://stripe.test/cs_123", SessionID: "cs_123"}}
	w := postCheckout(paymentRouter(svc))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cs_123")
}

func TestCheckoutHandlerNotFound(t *testing.T) {
	svc := &fakePaymentService{checkoutErr: payment.ErrBookingNotFound}
	w := postCheckout(paymentRouter(svc))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Booking not found")
}

func TestCheckoutHandlerAlreadyPaid(t *testing.T) {
	svc := &fakePaymentService{checkoutErr: payment.ErrAlreadyPaid}
	w := postCheckout(paymentRouter(svc))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Booking already paid")
}

func TestCheckoutHandlerUnconfigured(t *testing.T) {
	svc := &fakePaymentService{checkoutErr: payment.ErrProviderUnconfigured}
	w := postCheckout(paymentRouter(svc))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Stripe API key not configured")
}

func TestPaymentStatusHandler(t *testing.T) {
	svc := &fakePaymentService{status: &models.CheckoutStatus{
		Status:        "complete",
		PaymentStatus: "paid",
		AmountTotal:   15000,
		Currency:      "usd",
	}}
	r := paymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments/status/cs_123", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"payment_status":"paid"`)
	assert.Contains(t, w.Body.String(), `"amount_total":15000`)
}

func TestPaymentStatusHandlerProviderError(t *testing.T) {
	svc := &fakePaymentService{statusErr: errors.New("stripe unavailable")}
	r := paymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payments/status/cs_123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWebhookHandlerAck(t *testing.T) {
	svc := &fakePaymentService{}
	r := paymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/stripe", strings.NewReader(`{"id":"evt_1"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"success"`)
	assert.Equal(t, []byte(`{"id":"evt_1"}`), svc.webhookPayload)
	assert.Equal(t, "t=1,v1=abc", svc.webhookSignature)
}

func TestWebhookHandlerBadSignature(t *testing.T) {
	svc := &fakePaymentService{webhookErr: payment.InvalidSignatureError{Err: errors.New("bad signature")}}
	r := paymentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/webhook/stripe", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "forged")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
