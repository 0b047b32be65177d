package tasks

import (
	"context"
	"encoding/json"

	"consultly/models"

	"github.com/hibiken/asynq"
)

const TypeBookingReceipt = "booking:receipt"

// NewReceiptTask builds the asynq task carrying the booking receipt payload.
func NewReceiptTask(payload models.ReceiptPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingReceipt, b), nil
}

// AsynqReceiptEnqueuer pushes receipt tasks onto the Redis-backed queue.
type AsynqReceiptEnqueuer struct {
	Client *asynq.Client
}

// EnqueueReceipt implements booking.ReceiptEnqueuer.
func (e *AsynqReceiptEnqueuer) EnqueueReceipt(ctx context.Context, payload models.ReceiptPayload) error {
	task, err := NewReceiptTask(payload)
	if err != nil {
		return err
	}
	_, err = e.Client.EnqueueContext(ctx, task)
	return err
}
