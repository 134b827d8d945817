package booking

import (
	"context"
	"testing"

	bookingRepo "luxride/database/repository/booking"
	"luxride/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository for service tests.
type fakeBookingRepo struct {
	bookings []models.Booking
	sessions map[string]string // bookingID -> sessionID
}

func newFakeBookingRepo(bookings ...models.Booking) *fakeBookingRepo {
	return &fakeBookingRepo{bookings: bookings, sessions: map[string]string{}}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking models.Booking) (string, error) {
	f.bookings = append(f.bookings, booking)
	return booking.ID, nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (f *fakeBookingRepo) ListByDate(_ context.Context, date string) ([]models.Booking, error) {
	if date == "" {
		return f.bookings, nil
	}
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListBlockingByDate(_ context.Context, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date && (b.PaymentStatus == models.PaymentStatusPaid || b.PaymentStatus == models.PaymentStatusPending) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) AttachSession(_ context.Context, bookingID, sessionID string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == bookingID {
			f.bookings[i].SessionID = sessionID
			f.sessions[bookingID] = sessionID
			return nil
		}
	}
	return bookingRepo.ErrNotFound
}

func (f *fakeBookingRepo) EnsureIndexes() error { return nil }

func existingBooking(date, start, end string) models.Booking {
	return models.Booking{
		ID:            "existing",
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		PaymentStatus: models.PaymentStatusPending,
	}
}

func TestCheckAvailabilityEmptyDate(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	res, err := svc.CheckAvailability(context.Background(), "2025-06-01", "09:00 AM", "11:00 AM")
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, "Time slot is available", res.Message)
}

func TestCheckAvailabilitySameInterval(t *testing.T) {
	repo := newFakeBookingRepo(existingBooking("2025-06-01", "09:00 AM", "11:00 AM"))
	svc := &DefaultBookingService{Repo: repo}

	res, err := svc.CheckAvailability(context.Background(), "2025-06-01", "09:00 AM", "11:00 AM")
	require.NoError(t, err)
	assert.False(t, res.Available)
}

func TestCheckAvailabilityBufferedExample(t *testing.T) {
	// Booking 05:00-07:00; buffered end 08:30.
	repo := newFakeBookingRepo(existingBooking("2025-06-01", "05:00 AM", "07:00 AM"))
	svc := &DefaultBookingService{Repo: repo}

	res, err := svc.CheckAvailability(context.Background(), "2025-06-01", "08:00 AM", "10:00 AM")
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Contains(t, res.Message, "08:30 AM")

	res, err = svc.CheckAvailability(context.Background(), "2025-06-01", "08:30 AM", "10:00 AM")
	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestCheckAvailabilityBoundaries(t *testing.T) {
	repo := newFakeBookingRepo(existingBooking("2025-06-01", "01:00 PM", "03:00 PM"))
	svc := &DefaultBookingService{Repo: repo}

	cases := []struct {
		name      string
		start     string
		end       string
		available bool
	}{
		{"ends exactly at booking start", "11:00 AM", "01:00 PM", true},
		{"ends one minute into booking", "11:00 AM", "01:01 PM", false},
		{"starts inside buffer", "04:00 PM", "06:00 PM", false},
		{"starts exactly at buffered end", "04:30 PM", "06:30 PM", true},
		{"fully inside booking", "01:30 PM", "02:30 PM", false},
		{"spans whole occupancy", "12:00 PM", "05:00 PM", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.CheckAvailability(context.Background(), "2025-06-01", tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.available, res.Available)
		})
	}
}

func TestCheckAvailabilityOtherDateDoesNotBlock(t *testing.T) {
	repo := newFakeBookingRepo(existingBooking("2025-06-01", "09:00 AM", "11:00 AM"))
	svc := &DefaultBookingService{Repo: repo}

	res, err := svc.CheckAvailability(context.Background(), "2025-06-02", "09:00 AM", "11:00 AM")
	require.NoError(t, err)
	assert.True(t, res.Available)
}

func TestCheckAvailabilityPaidBookingBlocks(t *testing.T) {
	b := existingBooking("2025-06-01", "09:00 AM", "11:00 AM")
	b.PaymentStatus = models.PaymentStatusPaid
	svc := &DefaultBookingService{Repo: newFakeBookingRepo(b)}

	res, err := svc.CheckAvailability(context.Background(), "2025-06-01", "10:00 AM", "12:00 PM")
	require.NoError(t, err)
	assert.False(t, res.Available)
}

func TestCheckAvailabilityRejectsMalformedTimes(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo()}

	_, err := svc.CheckAvailability(context.Background(), "2025-06-01", "nine am", "11:00 AM")
	var verr ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.CheckAvailability(context.Background(), "2025-06-01", "09:00 AM", "eleven")
	require.ErrorAs(t, err, &verr)
}

func TestCreatedBookingBlocksItsOwnSlot(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo}

	_, err := svc.CreateBooking(context.Background(), models.BookingInput{
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
	})
	require.NoError(t, err)

	res, err := svc.CheckAvailability(context.Background(), "2025-06-01", "09:00 AM", "11:00 AM")
	require.NoError(t, err)
	assert.False(t, res.Available)
}
