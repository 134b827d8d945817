package models

import "time"

// PaymentTransaction records one checkout attempt against a booking. The
// session ID correlates the booking, the transaction and provider-side state.
type PaymentTransaction struct {
	ID            string            `bson:"id" json:"id"`
	SessionID     string            `bson:"session_id" json:"session_id"`
	BookingID     string            `bson:"booking_id" json:"booking_id"`
	Amount        float64           `bson:"amount" json:"amount"`
	Currency      string            `bson:"currency" json:"currency"`
	PaymentStatus string            `bson:"payment_status" json:"payment_status"` // "pending" or "paid"; paid is terminal
	Metadata      map[string]string `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time         `bson:"updated_at" json:"updated_at"`
}

// CheckoutInput is the client payload for starting a checkout session.
type CheckoutInput struct {
	BookingID string `json:"booking_id" binding:"required"`
	OriginURL string `json:"origin_url" binding:"required"`
}

// CheckoutResult carries the provider redirect URL for a created session.
type CheckoutResult struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// CheckoutStatus is the provider's view of a checkout session.
type CheckoutStatus struct {
	Status        string `json:"status"`         // e.g. "open", "complete", "expired"
	PaymentStatus string `json:"payment_status"` // e.g. "paid", "unpaid"
	AmountTotal   int64  `json:"amount_total"`   // Smallest currency unit, as reported by the provider
	Currency      string `json:"currency"`
}
