package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"luxride/config"
	"luxride/services/payment"
	"luxride/services/tasks"

	"github.com/hibiken/asynq"
)

// InitPaymentSweepWorker runs the async worker in background. It consumes
// delayed payment:sweep tasks and re-polls the provider for sessions whose
// webhook may never have arrived.
func InitPaymentSweepWorker(paymentSvc payment.PaymentService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePaymentSweep, handleSweepTask(paymentSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[PaymentSweep] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[PaymentSweep] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[PaymentSweep] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSweepTask(paymentSvc payment.PaymentService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.PaymentSweepPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PaymentSweep] invalid payload: %v", err)
			return err
		}

		// PollStatus reconciles when the provider reports paid; repeating it
		// for an already-reconciled session is a no-op.
		status, err := paymentSvc.PollStatus(ctx, p.SessionID)
		if err != nil {
			log.Printf("[PaymentSweep] poll failed for session %s: %v", p.SessionID, err)
			return err
		}

		log.Printf("[PaymentSweep] session %s swept: status=%s payment_status=%s",
			p.SessionID, status.Status, status.PaymentStatus)
		return nil
	}
}
