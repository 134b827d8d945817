package payment

import (
	"context"
	"time"

	"luxride/models"
	"luxride/utils"

	"go.uber.org/zap"
)

// eventDedupeTTL bounds how long processed webhook event IDs are remembered.
const eventDedupeTTL = 24 * time.Hour

// PollStatus queries the provider for a session's current truth and
// reconciles local records when it reports paid.
func (s *DefaultPaymentService) PollStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error) {
	if s.Provider == nil || !s.Provider.Configured() {
		return nil, ErrProviderUnconfigured
	}

	status, err := s.Provider.GetStatus(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.reconcile(ctx, sessionID, status.PaymentStatus); err != nil {
		return nil, err
	}
	return status, nil
}

// HandleWebhook verifies a provider webhook delivery and reconciles the
// session it reports on. Deliveries with an already-seen event ID are acked
// without re-entering reconciliation.
func (s *DefaultPaymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if s.Provider == nil || !s.Provider.Configured() {
		return ErrProviderUnconfigured
	}

	event, err := s.Provider.VerifyWebhook(payload, signature)
	if err != nil {
		return err
	}
	if event.SessionID == "" {
		// Event type this service does not act on.
		return nil
	}

	if s.isDuplicateEvent(ctx, event.EventID) {
		utils.GetLogger().Info("duplicate webhook event acked",
			zap.String("eventID", event.EventID), zap.String("sessionID", event.SessionID))
		return nil
	}

	return s.reconcile(ctx, event.SessionID, event.PaymentStatus)
}

// reconcile idempotently propagates a provider-confirmed paid status into the
// transaction and booking records. Any status other than paid is a no-op;
// failed or expired sessions deliberately leave the pending booking in place.
func (s *DefaultPaymentService) reconcile(ctx context.Context, sessionID, paymentStatus string) error {
	if paymentStatus != models.PaymentStatusPaid {
		return nil
	}

	transitioned, err := s.TxnRepo.MarkSessionPaid(ctx, sessionID)
	if err != nil {
		return err
	}
	if transitioned {
		utils.GetLogger().Info("payment reconciled",
			zap.String("sessionID", sessionID))
	}
	return nil
}

// isDuplicateEvent records the event ID in Redis and reports whether it was
// already present. Without a cache client every delivery is treated as new;
// reconciliation stays idempotent either way.
func (s *DefaultPaymentService) isDuplicateEvent(ctx context.Context, eventID string) bool {
	if s.Cache == nil || eventID == "" {
		return false
	}
	set, err := s.Cache.SetNX(ctx, "stripe:event:"+eventID, 1, eventDedupeTTL).Result()
	if err != nil {
		// Ignore a cache failure rather than drop the event.
		utils.GetLogger().Warn("webhook dedupe check failed", zap.Error(err))
		return false
	}
	return !set
}
