package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bookingRepo "luxride/database/repository/booking"
	"luxride/models"
	"luxride/services/tasks"
	"luxride/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// sweepDelay is how long after checkout creation the delayed status sweep runs.
const sweepDelay = time.Hour

// CreateCheckout starts a provider checkout session collecting the deposit
// for a booking. The transaction record and the session attachment both
// complete before the result is returned, so a status poll or webhook for
// the session always finds its transaction.
func (s *DefaultPaymentService) CreateCheckout(ctx context.Context, bookingID, originURL string) (*models.CheckoutResult, error) {
	logger := utils.GetLogger()

	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}
	if booking.PaymentStatus == models.PaymentStatusPaid {
		return nil, ErrAlreadyPaid
	}
	if s.Provider == nil || !s.Provider.Configured() {
		return nil, ErrProviderUnconfigured
	}

	origin := strings.TrimRight(originURL, "/")
	metadata := map[string]string{
		"booking_id":     booking.ID,
		"customer_email": booking.Email,
		"customer_name":  booking.FullName,
	}

	result, err := s.Provider.CreateSession(ctx, SessionRequest{
		Amount:   booking.DepositAmount,
		Currency: "usd",
		// {CHECKOUT_SESSION_ID} is substituted by the provider on redirect.
		SuccessURL: origin + "/booking-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  origin + "/booking",
		Metadata:   metadata,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := models.PaymentTransaction{
		ID:            uuid.New().String(),
		SessionID:     result.SessionID,
		BookingID:     booking.ID,
		Amount:        booking.DepositAmount,
		Currency:      "usd",
		PaymentStatus: models.PaymentStatusPending,
		Metadata:      metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := s.TxnRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to record payment transaction: %w", err)
	}
	if err := s.BookingRepo.AttachSession(ctx, booking.ID, result.SessionID); err != nil {
		return nil, fmt.Errorf("failed to attach session to booking: %w", err)
	}

	s.scheduleSweep(result.SessionID)

	logger.Info("checkout session created",
		zap.String("bookingID", booking.ID),
		zap.String("sessionID", result.SessionID),
		zap.Float64("amount", booking.DepositAmount))
	return result, nil
}

// scheduleSweep enqueues a delayed self-poll of the session. Failures are
// logged only: the sweep is a safety net, not part of the checkout contract.
func (s *DefaultPaymentService) scheduleSweep(sessionID string) {
	if s.SweepClient == nil {
		return
	}
	task, opts, err := tasks.NewPaymentSweepTask(sessionID, time.Now().Add(sweepDelay))
	if err == nil {
		_, err = s.SweepClient.Enqueue(task, opts...)
	}
	if err != nil {
		utils.GetLogger().Warn("failed to enqueue payment sweep",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}
