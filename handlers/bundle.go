// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler into one struct so route
// registration takes a single value.
type HandlerBundle struct {
	// Catalog endpoints
	GetExpert          gin.HandlerFunc
	ListServices       gin.HandlerFunc
	GetService         gin.HandlerFunc
	ListFAQ            gin.HandlerFunc
	ListAvailableSlots gin.HandlerFunc

	// Booking session endpoints
	InitiateSession   gin.HandlerFunc
	GetSession        gin.HandlerFunc
	AdvanceStep       gin.HandlerFunc
	SetService        gin.HandlerFunc
	SetDate           gin.HandlerFunc
	SetTimeSlot       gin.HandlerFunc
	AddPackageSlot    gin.HandlerFunc
	RemovePackageSlot gin.HandlerFunc
	GetSummary        gin.HandlerFunc
	ConfirmBooking    gin.HandlerFunc
	ResetSession      gin.HandlerFunc
	CancelSession     gin.HandlerFunc
}

// NewHandlerBundle wires the catalog and booking handlers into a bundle.
func NewHandlerBundle(catalog *CatalogHandler, booking *BookingHandler) *HandlerBundle {
	return &HandlerBundle{
		GetExpert:          catalog.GetExpert,
		ListServices:       catalog.ListServices,
		GetService:         catalog.GetService,
		ListFAQ:            catalog.ListFAQ,
		ListAvailableSlots: catalog.ListAvailableSlots,

		InitiateSession:   booking.InitiateSession,
		GetSession:        booking.GetSession,
		AdvanceStep:       booking.AdvanceStep,
		SetService:        booking.SetService,
		SetDate:           booking.SetDate,
		SetTimeSlot:       booking.SetTimeSlot,
		AddPackageSlot:    booking.AddPackageSlot,
		RemovePackageSlot: booking.RemovePackageSlot,
		GetSummary:        booking.GetSummary,
		ConfirmBooking:    booking.ConfirmBooking,
		ResetSession:      booking.ResetSession,
		CancelSession:     booking.CancelSession,
	}
}
