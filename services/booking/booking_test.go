package booking

import (
	"context"
	"testing"

	"luxride/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() models.BookingInput {
	return models.BookingInput{
		Date:            "2025-06-01",
		StartTime:       "09:00 AM",
		EndTime:         "11:00 AM",
		PickupLocation:  "Airport",
		DropoffLocation: "Downtown",
		FullName:        "Ada Lovelace",
		Email:           "ada@example.com",
		Phone:           "+1-555-0100",
		DurationHours:   2,
		TotalPrice:      300,
		DepositAmount:   150,
	}
}

func TestCreateBookingRejectsShortDuration(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo}

	input := validInput()
	input.DurationHours = 1.5

	_, err := svc.CreateBooking(context.Background(), input)
	var verr ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Minimum booking duration is 2 hours", verr.Reason)

	// Nothing persisted.
	assert.Empty(t, repo.bookings)
}

func TestCreateBookingPersistsPending(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo}

	created, err := svc.CreateBooking(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.PaymentStatusPending, created.PaymentStatus)
	assert.Empty(t, created.SessionID)
	assert.False(t, created.CreatedAt.IsZero())

	require.Len(t, repo.bookings, 1)
	assert.Equal(t, created.ID, repo.bookings[0].ID)
}

func TestCreateBookingExactMinimumDuration(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	input := validInput()
	input.DurationHours = 2.0

	_, err := svc.CreateBooking(context.Background(), input)
	require.NoError(t, err)
}

func TestListBookingsFiltersByDate(t *testing.T) {
	repo := newFakeBookingRepo(
		existingBooking("2025-06-01", "09:00 AM", "11:00 AM"),
		existingBooking("2025-06-02", "09:00 AM", "11:00 AM"),
	)
	svc := &DefaultBookingService{Repo: repo}

	all, err := svc.ListBookings(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	day, err := svc.ListBookings(context.Background(), "2025-06-01")
	require.NoError(t, err)
	assert.Len(t, day, 1)

	none, err := svc.ListBookings(context.Background(), "2025-07-01")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
