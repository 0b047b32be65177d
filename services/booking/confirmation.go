package booking

import (
	"context"
	"time"

	"consultly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Confirm finalizes the booking: it re-checks that the session carries a
// complete selection, builds the booking record and payment summary, enqueues
// the email-summary receipt stub, and deletes the session.
//
// Payment, stale-availability detection and idempotent submission are
// external-collaborator work and intentionally absent here.
func (s *DefaultBookingSessionService) Confirm(sessionID string) (*models.BookingConfirmationResponse, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step != models.StepConfirm {
		return nil, NewFlowError(CodeInvalidTransition,
			"booking can only be confirmed from the %q step, session is at %q", models.StepConfirm, session.Step)
	}
	if err := s.selectionSatisfied(session); err != nil {
		return nil, err
	}

	svc, err := s.Services.GetServiceByID(session.ServiceID)
	if err != nil {
		return nil, err
	}

	slotIDs := session.PackageSlotIDs
	if len(slotIDs) == 0 {
		slotIDs = []string{session.SelectedSlotID}
	}

	booking := models.Booking{
		ID:          uuid.New().String(),
		ExpertID:    session.ExpertID,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		SlotIDs:     slotIDs,
		Quote:       QuoteForService(svc),
		Status:      "confirmed",
		CreatedAt:   time.Now(),
	}

	s.enqueueReceipt(ctx, &booking)

	if err := s.Cache.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		s.Logger.Warn("failed to delete booking session after confirmation",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	return &models.BookingConfirmationResponse{
		BookingID:    booking.ID,
		ExpertID:     booking.ExpertID,
		ServiceID:    booking.ServiceID,
		SlotIDs:      booking.SlotIDs,
		Quote:        booking.Quote,
		Confirmation: "Booking confirmed",
		CreatedAt:    booking.CreatedAt,
	}, nil
}

// enqueueReceipt schedules the email-summary stub. The receipt is best effort;
// a queue failure never fails the booking.
func (s *DefaultBookingSessionService) enqueueReceipt(ctx context.Context, booking *models.Booking) {
	if s.Receipts == nil {
		return
	}

	expertName := booking.ExpertID
	if expert, err := s.Experts.GetExpert(booking.ExpertID); err == nil {
		expertName = expert.Name
	}

	payload := models.ReceiptPayload{
		BookingID:   booking.ID,
		ExpertName:  expertName,
		ServiceName: booking.ServiceName,
		SlotIDs:     booking.SlotIDs,
		Total:       booking.Quote.Total,
	}
	if err := s.Receipts.EnqueueReceipt(ctx, payload); err != nil {
		s.Logger.Warn("failed to enqueue booking receipt",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
