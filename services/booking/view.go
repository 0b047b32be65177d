package booking

import (
	"time"

	"consultly/models"
)

// SessionView is the snapshot returned to clients: the raw session plus the
// derived data the step views render (availability for the selected date,
// selectable dates, package plan and progress).
type SessionView struct {
	Session models.BookingSession `json:"session"`

	// Availability lists the selected date's open slots grouped by display
	// hour, excluding slots already chosen in this session.
	Availability []models.HourGroup `json:"availability,omitempty"`

	// AvailableDates lists the calendar days that can still be picked. For
	// multi-slot packages the range is clipped to the booking window.
	AvailableDates []string `json:"availableDates,omitempty"`

	Plan              *PackagePlan `json:"packagePlan,omitempty"`
	SelectedCount     int          `json:"selectedCount,omitempty"`
	SelectionComplete bool         `json:"selectionComplete,omitempty"`
}

func (s *DefaultBookingSessionService) buildView(session *models.BookingSession) (*SessionView, error) {
	view := &SessionView{Session: *session}

	chosen := make(map[string]bool, len(session.PackageSlotIDs))
	for _, id := range session.PackageSlotIDs {
		chosen[id] = true
	}

	multiSlot := false
	if session.ServiceID != "" {
		svc, err := s.Services.GetServiceByID(session.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc.IsPackage() && VariantOptions(session.Variant).PackageMultiSlot {
			plan := PlanForService(*svc)
			view.Plan = &plan
			view.SelectedCount = len(session.PackageSlotIDs)
			view.SelectionComplete = len(session.PackageSlotIDs) == plan.RequiredSessions
			multiSlot = true
		}
	}

	dates := s.Slots.DatesWithAvailability(chosen)
	if multiSlot {
		dates = clipToWindow(dates, time.Now(), view.Plan.WindowDays)
	}
	view.AvailableDates = dates

	if session.SelectedDate != "" {
		slots := s.Slots.AvailableOnDate(session.SelectedDate)
		var open []models.TimeSlot
		for _, slot := range slots {
			if !chosen[slot.ID] {
				open = append(open, slot)
			}
		}
		view.Availability = GroupSlotsByHour(open)
	}

	return view, nil
}

// clipToWindow keeps the dates inside [today, today+windowDays].
func clipToWindow(dates []string, now time.Time, windowDays int) []string {
	today := now.Format(models.SlotDateFormat)
	last := now.AddDate(0, 0, windowDays).Format(models.SlotDateFormat)

	var out []string
	for _, date := range dates {
		if date >= today && date <= last {
			out = append(out, date)
		}
	}
	return out
}

// GroupSlotsByHour buckets slots by their display hour ("9 AM", "2 PM"),
// preserving start order, the way the schedule views present a day.
func GroupSlotsByHour(slots []models.TimeSlot) []models.HourGroup {
	var groups []models.HourGroup
	index := make(map[string]int)

	for _, slot := range slots {
		start, err := slot.Start()
		if err != nil {
			continue
		}
		hour := start.Format("3 PM")
		i, ok := index[hour]
		if !ok {
			groups = append(groups, models.HourGroup{Hour: hour})
			i = len(groups) - 1
			index[hour] = i
		}
		groups[i].Slots = append(groups[i].Slots, slot)
	}

	return groups
}
