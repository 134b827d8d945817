package payment

import (
	"context"

	bookingRepo "luxride/database/repository/booking"
	paymentRepo "luxride/database/repository/payment"
	"luxride/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// SessionRequest describes a checkout session to be created at the provider.
type SessionRequest struct {
	Amount     float64
	Currency   string
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// WebhookEvent is the verified payload of a provider webhook delivery.
// SessionID and PaymentStatus are empty for event types this service
// does not act on.
type WebhookEvent struct {
	EventID       string
	SessionID     string
	PaymentStatus string
}

// CheckoutProvider abstracts the external payment provider.
type CheckoutProvider interface {
	Configured() bool
	CreateSession(ctx context.Context, req SessionRequest) (*models.CheckoutResult, error)
	GetStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error)
	VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// PaymentService drives the deposit checkout flow and reconciles provider
// payment state into local records.
type PaymentService interface {
	CreateCheckout(ctx context.Context, bookingID, originURL string) (*models.CheckoutResult, error)
	PollStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

// DefaultPaymentService is the production implementation. Cache and
// SweepClient are optional: dedupe and delayed sweeps are skipped when nil.
type DefaultPaymentService struct {
	Provider    CheckoutProvider
	TxnRepo     paymentRepo.PaymentRepository
	BookingRepo bookingRepo.BookingRepository
	Cache       *redis.Client
	SweepClient *asynq.Client
}
