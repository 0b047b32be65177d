// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"consultly/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Initiate creates a new booking session at the initial step, assigns it a
// unique SessionID, and stores it in Redis.
func (s *DefaultBookingSessionService) Initiate(variant string) (*SessionView, error) {
	ctx := context.Background()

	session := models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      models.StepService,
		ExpertID:  s.ExpertID,
		Variant:   s.resolveVariant(variant),
		CreatedAt: time.Now(),
	}

	if err := s.saveSession(ctx, &session); err != nil {
		return nil, err
	}
	return s.buildView(&session)
}

// Get returns the current session snapshot plus the derived view data
// (availability for the selected date, package plan and progress).
func (s *DefaultBookingSessionService) Get(sessionID string) (*SessionView, error) {
	session, err := s.loadSession(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildView(session)
}

// AdvanceStep moves the wizard to the requested step after validating the
// transition guards.
func (s *DefaultBookingSessionService) AdvanceStep(sessionID string, step models.BookingStep) (*SessionView, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.validateTransition(session, step); err != nil {
		return nil, err
	}
	session.Step = step

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(session)
}

// SetService records the chosen service. Other selections are left intact;
// the transition guards re-check them before confirmation.
func (s *DefaultBookingSessionService) SetService(sessionID, serviceID string) (*SessionView, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.Services.GetServiceByID(serviceID); err != nil {
		return nil, err
	}
	session.ServiceID = serviceID

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(session)
}

// SetDate records the chosen calendar day and clears any previously selected
// slot, so a stale slot can never outlive its date.
func (s *DefaultBookingSessionService) SetDate(sessionID, date string) (*SessionView, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse(models.SlotDateFormat, date); err != nil {
		return nil, NewFlowError(CodeInvalidDate, "invalid date %q, expected YYYY-MM-DD", date)
	}
	session.SelectedDate = date
	session.SelectedSlotID = ""

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(session)
}

// SetTimeSlot records the single chosen slot. The slot must exist, be
// available at selection time, and belong to the session's selected date.
func (s *DefaultBookingSessionService) SetTimeSlot(sessionID, slotID string) (*SessionView, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	slot, err := s.Slots.GetSlotByID(slotID)
	if err != nil {
		return nil, err
	}
	if !slot.Available {
		return nil, NewFlowError(CodeSlotUnavailable, "time slot %s is not available", slotID)
	}
	if session.SelectedDate == "" || slot.Date() != session.SelectedDate {
		return nil, NewFlowError(CodeDateMismatch,
			"time slot %s does not fall on the selected date %q", slotID, session.SelectedDate)
	}
	session.SelectedSlotID = slotID

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(session)
}

// Summary returns the payment summary for the session's selected service.
func (s *DefaultBookingSessionService) Summary(sessionID string) (*models.PriceQuote, error) {
	session, err := s.loadSession(context.Background(), sessionID)
	if err != nil {
		return nil, err
	}
	if session.ServiceID == "" {
		return nil, NewFlowError(CodeServiceRequired, "no service selected")
	}
	svc, err := s.Services.GetServiceByID(session.ServiceID)
	if err != nil {
		return nil, err
	}
	quote := QuoteForService(svc)
	return &quote, nil
}

// Reset returns the session to its defaults, clearing every selection.
func (s *DefaultBookingSessionService) Reset(sessionID string) (*SessionView, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Step = models.StepService
	session.ClearSelections()

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(session)
}

// Cancel deletes the session from the cache.
func (s *DefaultBookingSessionService) Cancel(sessionID string) error {
	if err := s.Cache.Del(context.Background(), sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) resolveVariant(variant string) string {
	if variant == "" {
		variant = s.DefaultVariant
	}
	return VariantOptions(variant).Name
}

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}

	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// saveSession writes the whole session record back with a refreshed TTL, so
// every view reads one atomic snapshot.
func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, s.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
