package payment

import "errors"

var (
	// ErrBookingNotFound is returned when a checkout references an unknown booking.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrAlreadyPaid is returned when a checkout is attempted for a paid booking.
	ErrAlreadyPaid = errors.New("booking already paid")
	// ErrProviderUnconfigured is returned when no Stripe API key is configured.
	// This is detected before any external call is made.
	ErrProviderUnconfigured = errors.New("stripe API key not configured")
)

// InvalidSignatureError signals a webhook that failed signature verification.
// It is a caller fault and never reaches reconciliation.
type InvalidSignatureError struct {
	Err error
}

func (e InvalidSignatureError) Error() string {
	return "webhook signature verification failed: " + e.Err.Error()
}

func (e InvalidSignatureError) Unwrap() error {
	return e.Err
}
