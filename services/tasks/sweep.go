package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypePaymentSweep = "payment:sweep"

// PaymentSweepPayload identifies the checkout session a sweep should poll.
type PaymentSweepPayload struct {
	SessionID string `json:"session_id"`
}

// NewPaymentSweepTask builds a delayed task that re-polls a checkout session
// and reconciles it, covering webhook deliveries that never arrived.
func NewPaymentSweepTask(sessionID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(PaymentSweepPayload{SessionID: sessionID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePaymentSweep, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt), asynq.MaxRetry(3)}

	return task, opts, nil
}
