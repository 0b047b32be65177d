package models

import "time"

// BookingStep identifies one state of the booking wizard.
type BookingStep string

const (
	StepService       BookingStep = "service"
	StepExpertProfile BookingStep = "expert-profile"
	StepSchedule      BookingStep = "schedule"
	StepConfirm       BookingStep = "confirm"
)

// Valid reports whether the step is one of the known wizard states.
func (s BookingStep) Valid() bool {
	switch s {
	case StepService, StepExpertProfile, StepSchedule, StepConfirm:
		return true
	}
	return false
}

// BookingSession holds the wizard state between the first step and confirmation.
// It is the only mutable record in the system; all mutation goes through the
// booking session service.
type BookingSession struct {
	SessionID      string      `json:"sessionId"`
	Step           BookingStep `json:"step"`
	ExpertID       string      `json:"expertId"`
	ServiceID      string      `json:"serviceId,omitempty"`
	SelectedDate   string      `json:"selectedDate,omitempty"` // "2006-01-02"
	SelectedSlotID string      `json:"selectedTimeSlotId,omitempty"`
	PackageSlotIDs []string    `json:"packageSlotIds,omitempty"`
	Variant        string      `json:"variant"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// HasPackageSlot reports whether the given slot is already part of the
// session's package selection.
func (s *BookingSession) HasPackageSlot(slotID string) bool {
	for _, id := range s.PackageSlotIDs {
		if id == slotID {
			return true
		}
	}
	return false
}

// ClearSelections drops every selection while keeping identity fields intact.
func (s *BookingSession) ClearSelections() {
	s.ServiceID = ""
	s.SelectedDate = ""
	s.SelectedSlotID = ""
	s.PackageSlotIDs = nil
}
