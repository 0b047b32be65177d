package catalog

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"consultly/models"
)

// SlotStore holds the generated slot inventory. It is read by every schedule
// view and rebuilt by Refresh, so access is guarded by a RWMutex.
type SlotStore struct {
	mu    sync.RWMutex
	slots []models.TimeSlot
	rng   *randSource
}

type randSource struct {
	seed int64
}

// NewSlotStore creates a store and generates the initial inventory from base.
// seed=0 produces a time-seeded (non-reproducible) inventory.
func NewSlotStore(seed int64, base time.Time) *SlotStore {
	store := &SlotStore{rng: &randSource{seed: seed}}
	store.Refresh(base)
	return store
}

// Refresh regenerates the slot inventory for the window starting at base.
func (s *SlotStore) Refresh(base time.Time) {
	generated := GenerateTimeSlots(base, NewSlotRand(s.rng.seed))

	s.mu.Lock()
	s.slots = generated
	s.mu.Unlock()
}

// All returns a copy of the full inventory, available or not.
func (s *SlotStore) All() []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TimeSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

// GetSlotByID returns the slot with the given ID.
func (s *SlotStore) GetSlotByID(id string) (*models.TimeSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, slot := range s.slots {
		if slot.ID == id {
			found := slot
			return &found, nil
		}
	}
	return nil, fmt.Errorf("time slot %q: %w", id, ErrNotFound)
}

// AvailableOnDate returns the available slots for one calendar day
// ("2006-01-02"), in start order.
func (s *SlotStore) AvailableOnDate(date string) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.TimeSlot
	for _, slot := range s.slots {
		if slot.Available && slot.Date() == date {
			out = append(out, slot)
		}
	}
	return out
}

// AvailableInRange returns the available slots whose date falls inside the
// inclusive [from, to] range. Empty bounds leave that side open.
func (s *SlotStore) AvailableInRange(from, to string) []models.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.TimeSlot
	for _, slot := range s.slots {
		if !slot.Available {
			continue
		}
		date := slot.Date()
		if from != "" && date < from {
			continue
		}
		if to != "" && date > to {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// DatesWithAvailability returns the sorted calendar days that still have at
// least one available slot not present in exclude (slot IDs already chosen in
// a session).
func (s *SlotStore) DatesWithAvailability(exclude map[string]bool) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool)
	for _, slot := range s.slots {
		if !slot.Available || exclude[slot.ID] {
			continue
		}
		if date := slot.Date(); date != "" {
			seen[date] = true
		}
	}
	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
