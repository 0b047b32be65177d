package booking

import (
	"context"
	"time"

	"consultly/catalog"
	"consultly/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// BookingSessionService defines the interface for managing a stateful booking
// session: one linear wizard from service selection to confirmation.
type BookingSessionService interface {
	Initiate(variant string) (*SessionView, error)
	Get(sessionID string) (*SessionView, error)
	AdvanceStep(sessionID string, step models.BookingStep) (*SessionView, error)
	SetService(sessionID, serviceID string) (*SessionView, error)
	SetDate(sessionID, date string) (*SessionView, error)
	SetTimeSlot(sessionID, slotID string) (*SessionView, error)
	AddPackageSlot(sessionID, slotID string) (*SessionView, error)
	RemovePackageSlot(sessionID, slotID string) (*SessionView, error)
	Summary(sessionID string) (*models.PriceQuote, error)
	Confirm(sessionID string) (*models.BookingConfirmationResponse, error)
	Reset(sessionID string) (*SessionView, error)
	Cancel(sessionID string) error
}

// ReceiptEnqueuer schedules the post-confirmation email-summary stub.
type ReceiptEnqueuer interface {
	EnqueueReceipt(ctx context.Context, payload models.ReceiptPayload) error
}

// DefaultBookingSessionService implements BookingSessionService on top of the
// in-memory catalog repositories and a Redis-backed session store.
type DefaultBookingSessionService struct {
	Experts  catalog.ExpertRepository
	Services catalog.ServiceRepository
	Slots    catalog.SlotRepository

	Cache      *redis.Client
	SessionTTL time.Duration

	ExpertID       string
	DefaultVariant string

	Receipts ReceiptEnqueuer
	Logger   *zap.Logger
}
