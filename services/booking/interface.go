package booking

import (
	"context"

	bookingRepo "luxride/database/repository/booking"
	"luxride/models"
)

// BookingService manages reservation records and slot availability.
type BookingService interface {
	CreateBooking(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	ListBookings(ctx context.Context, date string) ([]models.Booking, error)
	CheckAvailability(ctx context.Context, date, startTime, endTime string) (*models.AvailabilityResult, error)
}

// DefaultBookingService is the production implementation backed by the
// booking repository.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
