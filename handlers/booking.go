package handlers

import (
	"errors"
	"net/http"

	"consultly/catalog"
	"consultly/models"
	booking "consultly/services/booking"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session wizard over HTTP.
type BookingHandler struct {
	Svc    booking.BookingSessionService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input struct {
		Variant string `json:"variant"`
	}
	// The body is optional; an empty one starts the default flow variant.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
	}

	view, err := h.Svc.Initiate(input.Variant)
	if err != nil {
		h.Logger.Error("InitiateSession: failed to create booking session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking session", err.Error())
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	view, err := h.Svc.Get(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AdvanceStep handles PUT /api/booking/session/:sessionID/step.
func (h *BookingHandler) AdvanceStep(c *gin.Context) {
	var input struct {
		Step models.BookingStep `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Svc.AdvanceStep(c.Param("sessionID"), input.Step)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetService handles PUT /api/booking/session/:sessionID/service.
func (h *BookingHandler) SetService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Svc.SetService(c.Param("sessionID"), input.ServiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetDate handles PUT /api/booking/session/:sessionID/date.
func (h *BookingHandler) SetDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Svc.SetDate(c.Param("sessionID"), input.Date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetTimeSlot handles PUT /api/booking/session/:sessionID/slot.
func (h *BookingHandler) SetTimeSlot(c *gin.Context) {
	var input struct {
		TimeSlotID string `json:"timeSlotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Svc.SetTimeSlot(c.Param("sessionID"), input.TimeSlotID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AddPackageSlot handles POST /api/booking/session/:sessionID/package-slots.
func (h *BookingHandler) AddPackageSlot(c *gin.Context) {
	var input struct {
		TimeSlotID string `json:"timeSlotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	view, err := h.Svc.AddPackageSlot(c.Param("sessionID"), input.TimeSlotID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RemovePackageSlot handles DELETE /api/booking/session/:sessionID/package-slots/:slotID.
func (h *BookingHandler) RemovePackageSlot(c *gin.Context) {
	view, err := h.Svc.RemovePackageSlot(c.Param("sessionID"), c.Param("slotID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetSummary handles GET /api/booking/session/:sessionID/summary.
func (h *BookingHandler) GetSummary(c *gin.Context) {
	quote, err := h.Svc.Summary(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ConfirmBooking handles POST /api/booking/session/:sessionID/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	resp, err := h.Svc.Confirm(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResetSession handles POST /api/booking/session/:sessionID/reset.
func (h *BookingHandler) ResetSession(c *gin.Context) {
	view, err := h.Svc.Reset(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Svc.Cancel(c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}

// respondError maps service errors to HTTP statuses: missing sessions to 404,
// rejected wizard operations to 409 (or 400 for malformed input), everything
// else to 500.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, booking.ErrSessionNotFound) {
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
		return
	}
	if errors.Is(err, catalog.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		return
	}

	var flowErr *booking.FlowError
	if errors.As(err, &flowErr) {
		status := http.StatusConflict
		switch flowErr.Code {
		case booking.CodeUnknownStep, booking.CodeInvalidDate:
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": flowErr.Code, "message": flowErr.Message})
		return
	}

	h.Logger.Error("booking session operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "booking session operation failed", err.Error())
}
