package booking

import "consultly/models"

// validateTransition enforces the wizard's step machine:
//
//	service  -> expert-profile (detour, and back)
//	service  -> schedule       (requires a chosen service)
//	schedule -> confirm        (requires a complete slot selection)
//
// plus the backwards edges the views expose. Reset handles confirm -> service.
func (s *DefaultBookingSessionService) validateTransition(session *models.BookingSession, next models.BookingStep) error {
	if !next.Valid() {
		return NewFlowError(CodeUnknownStep, "unknown booking step %q", next)
	}
	if next == session.Step {
		return nil
	}

	switch session.Step {
	case models.StepService:
		switch next {
		case models.StepExpertProfile:
			return nil
		case models.StepSchedule:
			if session.ServiceID == "" {
				return NewFlowError(CodeServiceRequired, "a service must be selected before scheduling")
			}
			return nil
		}
	case models.StepExpertProfile:
		if next == models.StepService {
			return nil
		}
	case models.StepSchedule:
		switch next {
		case models.StepService:
			return nil
		case models.StepConfirm:
			return s.selectionSatisfied(session)
		}
	case models.StepConfirm:
		if next == models.StepSchedule {
			return nil
		}
	}

	return NewFlowError(CodeInvalidTransition, "cannot move from %q to %q", session.Step, next)
}

// selectionSatisfied checks the forward guard into the confirm step: a single
// slot for quick services, or the full multi-slot selection for packages when
// the flow variant routes them through the multi-slot calendar.
func (s *DefaultBookingSessionService) selectionSatisfied(session *models.BookingSession) error {
	if session.ServiceID == "" {
		return NewFlowError(CodeServiceRequired, "a service must be selected before confirming")
	}
	svc, err := s.Services.GetServiceByID(session.ServiceID)
	if err != nil {
		return err
	}

	if svc.IsPackage() && VariantOptions(session.Variant).PackageMultiSlot {
		plan := PlanForService(*svc)
		if len(session.PackageSlotIDs) != plan.RequiredSessions {
			return NewFlowError(CodeSelectionIncomplete,
				"package requires %d sessions, %d selected", plan.RequiredSessions, len(session.PackageSlotIDs))
		}
		return nil
	}

	if session.SelectedSlotID == "" {
		return NewFlowError(CodeSlotRequired, "a time slot must be selected before confirming")
	}
	return nil
}
