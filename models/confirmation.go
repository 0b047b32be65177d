// File: models/confirmation.go
package models

import "time"

// BookingConfirmationResponse represents the final response returned after a
// booking is confirmed. Payment is out of scope, so the response is an
// acknowledgment only.
type BookingConfirmationResponse struct {
	BookingID    string     `json:"bookingId"`
	ExpertID     string     `json:"expertId"`
	ServiceID    string     `json:"serviceId"`
	SlotIDs      []string   `json:"slotIds"`
	Quote        PriceQuote `json:"quote"`
	Confirmation string     `json:"confirmation"`
	CreatedAt    time.Time  `json:"createdAt"`
}
