package handlers

import (
	"errors"
	"net/http"

	"consultly/catalog"
	booking "consultly/services/booking"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the read-only reference data the booking views render:
// the expert profile, the service catalog, FAQ entries, and slot availability.
type CatalogHandler struct {
	Experts  catalog.ExpertRepository
	Services catalog.ServiceRepository
	FAQ      catalog.FAQRepository
	Slots    catalog.SlotRepository
	Logger   *zap.Logger
}

func NewCatalogHandler(
	experts catalog.ExpertRepository,
	services catalog.ServiceRepository,
	faq catalog.FAQRepository,
	slots catalog.SlotRepository,
	logger *zap.Logger,
) *CatalogHandler {
	return &CatalogHandler{Experts: experts, Services: services, FAQ: faq, Slots: slots, Logger: logger}
}

// GetExpert handles GET /api/experts/:expertID.
func (h *CatalogHandler) GetExpert(c *gin.Context) {
	expert, err := h.Experts.GetExpert(c.Param("expertID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expert)
}

// ListServices handles GET /api/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Services.ListServices()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /api/services/:serviceID. The response pairs the
// catalog entry with its payment summary.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Services.GetServiceByID(c.Param("serviceID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	quote := booking.QuoteForService(svc)
	c.JSON(http.StatusOK, gin.H{"service": svc, "quote": quote})
}

// ListFAQ handles GET /api/faq?serviceType=quick|package.
func (h *CatalogHandler) ListFAQ(c *gin.Context) {
	items, err := h.FAQ.ListFAQ(c.Query("serviceType"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListAvailableSlots handles GET /api/slots. With ?date=YYYY-MM-DD it returns
// that day's open slots grouped by hour; with ?from=&to= it returns the open
// slots in the date range; with no filter it returns the selectable dates.
func (h *CatalogHandler) ListAvailableSlots(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		slots := h.Slots.AvailableOnDate(date)
		c.JSON(http.StatusOK, gin.H{
			"date":         date,
			"availability": booking.GroupSlotsByHour(slots),
		})
		return
	}

	from, to := c.Query("from"), c.Query("to")
	if from != "" || to != "" {
		if from == "" || to == "" {
			utils.JSONError(c, http.StatusBadRequest, "both from and to are required for a range query", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{"slots": h.Slots.AvailableInRange(from, to)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"availableDates": h.Slots.DatesWithAvailability(nil)})
}

func (h *CatalogHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
		return
	}
	h.Logger.Error("catalog lookup failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "catalog lookup failed", err.Error())
}
