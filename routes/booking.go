package routes

import (
	"consultly/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", hb.InitiateSession)
		booking.GET("/session/:sessionID", hb.GetSession)
		booking.PUT("/session/:sessionID/step", hb.AdvanceStep)
		booking.PUT("/session/:sessionID/service", hb.SetService)
		booking.PUT("/session/:sessionID/date", hb.SetDate)
		booking.PUT("/session/:sessionID/slot", hb.SetTimeSlot)
		booking.POST("/session/:sessionID/package-slots", hb.AddPackageSlot)
		booking.DELETE("/session/:sessionID/package-slots/:slotID", hb.RemovePackageSlot)
		booking.GET("/session/:sessionID/summary", hb.GetSummary)
		booking.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		booking.POST("/session/:sessionID/reset", hb.ResetSession)
		booking.DELETE("/session/:sessionID", hb.CancelSession)
	}
}
