package catalog

import (
	"fmt"
	"math/rand"
	"time"

	"consultly/models"
)

// Demo slot generation parameters: the next 14 calendar days, weekdays only,
// working hours 9:00-17:00 in 30-minute slots.
const (
	slotWindowDays    = 14
	slotStartHour     = 9
	slotEndHour       = 17
	slotLengthMinutes = 30

	// availabilityRate is the independent probability that a generated slot
	// is bookable.
	availabilityRate = 0.7
)

// GenerateTimeSlots synthesizes the demo slot inventory starting at base.
// The rng drives only the availability flags, so a fixed seed yields a
// reproducible inventory for a given base day.
func GenerateTimeSlots(base time.Time, rng *rand.Rand) []models.TimeSlot {
	var slots []models.TimeSlot
	day := time.Date(base.Year(), base.Month(), base.Day(), 0, 0, 0, 0, base.Location())

	for d := 0; d < slotWindowDays; d++ {
		current := day.AddDate(0, 0, d)

		// Skip weekends.
		if wd := current.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		for hour := slotStartHour; hour < slotEndHour; hour++ {
			for _, minute := range []int{0, 30} {
				start := time.Date(current.Year(), current.Month(), current.Day(), hour, minute, 0, 0, current.Location())
				end := start.Add(slotLengthMinutes * time.Minute)

				slots = append(slots, models.TimeSlot{
					ID:        fmt.Sprintf("slot-%s", start.Format("2006-01-02-15-04")),
					StartTime: start.Format(time.RFC3339),
					EndTime:   end.Format(time.RFC3339),
					Available: rng.Float64() < availabilityRate,
				})
			}
		}
	}

	return slots
}

// NewSlotRand returns the RNG used for slot generation. A zero seed falls back
// to the current time, matching the original non-deterministic behaviour.
func NewSlotRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
