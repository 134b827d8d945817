package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"luxride/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeProvider implements CheckoutProvider against the Stripe API.
type StripeProvider struct {
	api           *client.API
	webhookSecret string
	configured    bool
}

// NewStripeProvider constructs a Stripe-backed checkout provider. An empty
// API key yields an unconfigured provider; callers must check Configured()
// before use.
func NewStripeProvider(apiKey, webhookSecret string) *StripeProvider {
	api := &client.API{}
	if apiKey != "" {
		api.Init(apiKey, nil)
	}
	return &StripeProvider{
		api:           api,
		webhookSecret: webhookSecret,
		configured:    apiKey != "",
	}
}

func (p *StripeProvider) Configured() bool {
	return p.configured
}

// CreateSession creates a Stripe Checkout session for the deposit amount.
func (p *StripeProvider) CreateSession(ctx context.Context, req SessionRequest) (*models.CheckoutResult, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Chauffeur Booking Deposit"),
					},
					// Stripe amounts are in the smallest currency unit.
					UnitAmount: stripe.Int64(int64(math.Round(req.Amount * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session creation failed: %w", err)
	}
	return &models.CheckoutResult{
		URL:       sess.URL,
		SessionID: sess.ID,
	}, nil
}

// GetStatus fetches the current truth for a checkout session from Stripe.
func (p *StripeProvider) GetStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := p.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout status fetch failed: %w", err)
	}
	return &models.CheckoutStatus{
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
	}, nil
}

// VerifyWebhook checks the Stripe signature and extracts the session state
// from checkout session events. Other event types are returned with empty
// session fields so callers can ack them without action.
func (p *StripeProvider) VerifyWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, p.webhookSecret)
	if err != nil {
		return nil, InvalidSignatureError{Err: err}
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return nil, fmt.Errorf("failed to decode checkout session event: %w", err)
		}
		return &WebhookEvent{
			EventID:       event.ID,
			SessionID:     sess.ID,
			PaymentStatus: string(sess.PaymentStatus),
		}, nil
	default:
		return &WebhookEvent{EventID: event.ID}, nil
	}
}
