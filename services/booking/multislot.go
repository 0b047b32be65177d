package booking

import (
	"context"
	"time"

	"consultly/models"
)

// AddPackageSlot accumulates one session slot for a multi-slot package
// selection. The slot must be available, not already chosen, and fall inside
// the package's booking window; the selection never exceeds the required
// session count.
func (s *DefaultBookingSessionService) AddPackageSlot(sessionID, slotID string) (*SessionView, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	svc, plan, err := s.packagePlan(session)
	if err != nil {
		return nil, err
	}

	if len(session.PackageSlotIDs) >= plan.RequiredSessions {
		return nil, NewFlowError(CodeSelectionFull,
			"%s requires exactly %d sessions", svc.Name, plan.RequiredSessions)
	}
	if session.HasPackageSlot(slotID) {
		return nil, NewFlowError(CodeSlotUnavailable, "time slot %s is already selected", slotID)
	}

	slot, err := s.Slots.GetSlotByID(slotID)
	if err != nil {
		return nil, err
	}
	if !slot.Available {
		return nil, NewFlowError(CodeSlotUnavailable, "time slot %s is not available", slotID)
	}
	if !withinWindow(slot, time.Now(), plan.WindowDays) {
		return nil, NewFlowError(CodeOutsideWindow,
			"time slot %s falls outside the %d-day booking window", slotID, plan.WindowDays)
	}

	session.PackageSlotIDs = append(session.PackageSlotIDs, slotID)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(session)
}

// RemovePackageSlot drops a previously chosen slot, returning it to the
// availability pool.
func (s *DefaultBookingSessionService) RemovePackageSlot(sessionID, slotID string) (*SessionView, error) {
	ctx := context.Background()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if _, _, err := s.packagePlan(session); err != nil {
		return nil, err
	}
	if !session.HasPackageSlot(slotID) {
		return nil, NewFlowError(CodeSlotNotSelected, "time slot %s is not part of the selection", slotID)
	}

	kept := session.PackageSlotIDs[:0]
	for _, id := range session.PackageSlotIDs {
		if id != slotID {
			kept = append(kept, id)
		}
	}
	session.PackageSlotIDs = kept

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return s.buildView(session)
}

// packagePlan resolves the session's service and verifies the multi-slot flow
// applies to it.
func (s *DefaultBookingSessionService) packagePlan(session *models.BookingSession) (*models.Service, PackagePlan, error) {
	if session.ServiceID == "" {
		return nil, PackagePlan{}, NewFlowError(CodeServiceRequired, "no service selected")
	}
	svc, err := s.Services.GetServiceByID(session.ServiceID)
	if err != nil {
		return nil, PackagePlan{}, err
	}
	if !svc.IsPackage() || !VariantOptions(session.Variant).PackageMultiSlot {
		return nil, PackagePlan{}, NewFlowError(CodeNotPackage,
			"service %s does not use multi-slot selection", svc.ID)
	}
	return svc, PlanForService(*svc), nil
}

// withinWindow reports whether the slot's day falls in [today, today+windowDays].
func withinWindow(slot *models.TimeSlot, now time.Time, windowDays int) bool {
	date := slot.Date()
	if date == "" {
		return false
	}
	today := now.Format(models.SlotDateFormat)
	last := now.AddDate(0, 0, windowDays).Format(models.SlotDateFormat)
	return date >= today && date <= last
}
