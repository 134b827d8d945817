package handlers

import (
	"errors"
	"io"
	"net/http"

	"luxride/models"
	"luxride/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes checkout, status poll and webhook endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateCheckoutHandler handles POST /api/payments/checkout.
func (h *PaymentHandler) CreateCheckoutHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid checkout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.CreateCheckout(c.Request.Context(), input.BookingID, input.OriginURL)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, payment.ErrAlreadyPaid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Booking already paid"})
		case errors.Is(err, payment.ErrProviderUnconfigured):
			logger.Error("Checkout attempted without Stripe configuration")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe API key not configured"})
		default:
			logger.Error("Failed to create checkout session", zap.String("bookingID", input.BookingID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// PaymentStatusHandler handles GET /api/payments/status/:sessionID.
func (h *PaymentHandler) PaymentStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	sessionID := c.Param("sessionID")

	status, err := h.Service.PollStatus(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, payment.ErrProviderUnconfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe API key not configured"})
			return
		}
		logger.Error("Failed to poll payment status", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}

// StripeWebhookHandler handles POST /api/webhook/stripe.
func (h *PaymentHandler) StripeWebhookHandler(c *gin.Context) {
	logger := getLogger(c)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}
	signature := c.GetHeader("Stripe-Signature")

	if err := h.Service.HandleWebhook(c.Request.Context(), payload, signature); err != nil {
		var sigErr payment.InvalidSignatureError
		if errors.As(err, &sigErr) {
			logger.Warn("Webhook signature verification failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, payment.ErrProviderUnconfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe API key not configured"})
			return
		}
		logger.Error("Webhook processing failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
