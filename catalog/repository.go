package catalog

import (
	"errors"

	"consultly/models"
)

// ErrNotFound is wrapped by repository lookups for unknown IDs.
var ErrNotFound = errors.New("not found")

// ExpertRepository exposes read access to expert reference data.
type ExpertRepository interface {
	GetExpert(id string) (*models.Expert, error)
}

// ServiceRepository exposes read access to the service catalog.
type ServiceRepository interface {
	ListServices() ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
}

// FAQRepository exposes read access to FAQ entries, optionally filtered by
// service type ("" returns everything).
type FAQRepository interface {
	ListFAQ(serviceType string) ([]models.FAQItem, error)
}

// SlotRepository exposes read access to the bookable slot inventory.
type SlotRepository interface {
	GetSlotByID(id string) (*models.TimeSlot, error)
	AvailableOnDate(date string) []models.TimeSlot
	AvailableInRange(from, to string) []models.TimeSlot
	DatesWithAvailability(exclude map[string]bool) []string
}
