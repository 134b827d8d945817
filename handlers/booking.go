package handlers

import (
	"errors"
	"net/http"

	"luxride/models"
	"luxride/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking endpoints over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid booking creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), input)
	if err != nil {
		var verr booking.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
			return
		}
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListBookingsHandler handles GET /api/bookings?date=.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	date := c.Query("date")

	bookings, err := h.Service.ListBookings(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to list bookings", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CheckAvailabilityHandler handles GET /api/bookings/check-availability.
func (h *BookingHandler) CheckAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)

	date := c.Query("date")
	startTime := c.Query("start_time")
	endTime := c.Query("end_time")
	if date == "" || startTime == "" || endTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, start_time and end_time are required"})
		return
	}

	result, err := h.Service.CheckAvailability(c.Request.Context(), date, startTime, endTime)
	if err != nil {
		var verr booking.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Reason})
			return
		}
		logger.Error("Failed to check availability", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check availability"})
		return
	}
	c.JSON(http.StatusOK, result)
}
