package models

import "time"

// PriceQuote is the payment summary for a selected service: list price plus a
// flat 5% processing fee. Display fields carry the two-decimal rendering used
// by the confirmation views.
type PriceQuote struct {
	ServiceID     string  `json:"serviceId"`
	ServiceName   string  `json:"serviceName"`
	Price         float64 `json:"price"`
	ProcessingFee float64 `json:"processingFee"`
	Total         float64 `json:"total"`

	PriceDisplay string `json:"priceDisplay"`
	FeeDisplay   string `json:"feeDisplay"`
	TotalDisplay string `json:"totalDisplay"`

	// PackageSavings is the cosmetic savings figure shown for packages,
	// compared to booking the sessions individually.
	PackageSavings int `json:"packageSavings,omitempty"`
}

// Booking represents a confirmed booking record.
type Booking struct {
	ID          string     `json:"id"`
	ExpertID    string     `json:"expertId"`
	ServiceID   string     `json:"serviceId"`
	ServiceName string     `json:"serviceName"`
	SlotIDs     []string   `json:"slotIds"`
	Quote       PriceQuote `json:"quote"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ReceiptPayload is the asynq task payload for the post-confirmation
// email-summary stub.
type ReceiptPayload struct {
	BookingID   string   `json:"bookingId"`
	ExpertName  string   `json:"expertName"`
	ServiceName string   `json:"serviceName"`
	SlotIDs     []string `json:"slotIds"`
	Total       float64  `json:"total"`
}
