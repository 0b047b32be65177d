package models

import "time"

// SlotDateFormat is the calendar-day format used across the booking flow.
const SlotDateFormat = "2006-01-02"

// TimeSlot represents a fixed-length bookable interval.
type TimeSlot struct {
	ID        string `json:"id"`        // e.g. "slot-2025-09-01-09-30"
	StartTime string `json:"startTime"` // RFC 3339 instant
	EndTime   string `json:"endTime"`   // RFC 3339 instant
	Available bool   `json:"available"`
}

// Start parses the slot's start instant.
func (t *TimeSlot) Start() (time.Time, error) {
	return time.Parse(time.RFC3339, t.StartTime)
}

// Date returns the slot's calendar day in SlotDateFormat, or "" when the
// start instant cannot be parsed.
func (t *TimeSlot) Date() string {
	start, err := t.Start()
	if err != nil {
		return ""
	}
	return start.Format(SlotDateFormat)
}

// HourGroup buckets the slots of one display hour (e.g. "9 AM"), matching how
// the schedule views present a day.
type HourGroup struct {
	Hour  string     `json:"hour"`
	Slots []TimeSlot `json:"slots"`
}
