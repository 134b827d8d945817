package booking

import (
	"context"
	"fmt"

	"luxride/models"
	"luxride/utils"
)

// BufferMinutes is the mandatory gap after a booking's end during which the
// vehicle is still occupied (return trip, cleaning, repositioning).
const BufferMinutes = 90

// CheckAvailability decides whether a requested interval on a date is free.
// An existing booking occupies [start, end+buffer); the request conflicts
// unless it ends at or before the booking's start, or starts at or after the
// buffered end. Both pending and paid bookings block the slot.
func (s *DefaultBookingService) CheckAvailability(ctx context.Context, date, startTime, endTime string) (*models.AvailabilityResult, error) {
	requestedStart, err := utils.TimeToMinutes(startTime)
	if err != nil {
		return nil, ValidationError{Reason: err.Error()}
	}
	requestedEnd, err := utils.TimeToMinutes(endTime)
	if err != nil {
		return nil, ValidationError{Reason: err.Error()}
	}

	bookings, err := s.Repo.ListBlockingByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	for _, b := range bookings {
		bookingStart, err := utils.TimeToMinutes(b.StartTime)
		if err != nil {
			return nil, fmt.Errorf("stored booking %s has bad start time: %w", b.ID, err)
		}
		bookingEnd, err := utils.TimeToMinutes(b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("stored booking %s has bad end time: %w", b.ID, err)
		}
		bufferedEnd := bookingEnd + BufferMinutes

		if requestedEnd <= bookingStart || requestedStart >= bufferedEnd {
			continue
		}
		return &models.AvailabilityResult{
			Available: false,
			Message: fmt.Sprintf("Time slot conflicts with existing booking. Vehicle available after %s",
				utils.MinutesToTime(bufferedEnd)),
		}, nil
	}

	return &models.AvailabilityResult{
		Available: true,
		Message:   "Time slot is available",
	}, nil
}
