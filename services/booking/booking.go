package booking

import (
	"context"
	"time"

	"luxride/models"
	"luxride/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MinDurationHours is the minimum length of a chauffeur booking.
const MinDurationHours = 2.0

// CreateBooking validates and persists a new reservation with status "pending".
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if input.DurationHours < MinDurationHours {
		return nil, ValidationError{Reason: "Minimum booking duration is 2 hours"}
	}

	booking := models.Booking{
		ID:              uuid.New().String(),
		Date:            input.Date,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		PickupLocation:  input.PickupLocation,
		DropoffLocation: input.DropoffLocation,
		FullName:        input.FullName,
		Email:           input.Email,
		Phone:           input.Phone,
		DurationHours:   input.DurationHours,
		TotalPrice:      input.TotalPrice,
		DepositAmount:   input.DepositAmount,
		PaymentStatus:   models.PaymentStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := s.Repo.Create(ctx, booking); err != nil {
		logger.Error("failed to persist booking", zap.String("bookingID", booking.ID), zap.Error(err))
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("date", booking.Date),
		zap.String("start", booking.StartTime),
		zap.String("end", booking.EndTime))
	return &booking, nil
}

// ListBookings returns bookings, optionally filtered by date.
func (s *DefaultBookingService) ListBookings(ctx context.Context, date string) ([]models.Booking, error) {
	bookings, err := s.Repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
