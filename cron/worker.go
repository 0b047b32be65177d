package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"consultly/catalog"
	"consultly/config"
	"consultly/models"
	"consultly/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReceiptWorker runs the async receipt worker in background. The handler
// is the email-summary stub: it only logs what a mail integration would send.
func InitReceiptWorker(logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingReceipt, handleReceiptTask(logger))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReceiptWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReceiptWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReceiptWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReceiptTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReceiptPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid receipt payload", zap.Error(err))
			return err
		}

		logger.Info("booking receipt sent",
			zap.String("bookingID", p.BookingID),
			zap.String("expert", p.ExpertName),
			zap.String("service", p.ServiceName),
			zap.Strings("slots", p.SlotIDs),
			zap.Float64("total", p.Total),
		)
		return nil
	}
}

// StartSlotRefresher periodically regenerates the demo slot inventory so the
// bookable window keeps tracking the current day.
func StartSlotRefresher(store *catalog.SlotStore, interval time.Duration, logger *zap.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			store.Refresh(time.Now())
			logger.Info("slot inventory refreshed")
		}
	}()
}
