package catalog

import (
	"testing"
	"time"

	"consultly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-09-07 is a Monday, so the 14-day window holds exactly 10 weekdays.
var slotTestBase = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func TestGenerateTimeSlotsShape(t *testing.T) {
	slots := GenerateTimeSlots(slotTestBase, NewSlotRand(42))

	// 10 weekdays x 8 working hours x 2 half-hour slots.
	require.Len(t, slots, 160)

	for _, slot := range slots {
		start, err := slot.Start()
		require.NoError(t, err)
		end, err := time.Parse(time.RFC3339, slot.EndTime)
		require.NoError(t, err)

		assert.NotEqual(t, time.Saturday, start.Weekday())
		assert.NotEqual(t, time.Sunday, start.Weekday())
		assert.GreaterOrEqual(t, start.Hour(), 9)
		assert.Less(t, start.Hour(), 17)
		assert.Contains(t, []int{0, 30}, start.Minute())
		assert.Equal(t, 30*time.Minute, end.Sub(start))
		assert.Equal(t, "slot-"+start.Format("2006-01-02-15-04"), slot.ID)
	}
}

func TestGenerateTimeSlotsDeterministicWithSeed(t *testing.T) {
	first := GenerateTimeSlots(slotTestBase, NewSlotRand(42))
	second := GenerateTimeSlots(slotTestBase, NewSlotRand(42))
	assert.Equal(t, first, second)
}

func TestSlotStoreLookups(t *testing.T) {
	store := NewSlotStore(42, slotTestBase)
	slots := store.All()
	require.NotEmpty(t, slots)

	found, err := store.GetSlotByID(slots[0].ID)
	require.NoError(t, err)
	assert.Equal(t, slots[0], *found)

	_, err = store.GetSlotByID("slot-nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSlotStoreAvailableOnDate(t *testing.T) {
	store := NewSlotStore(42, slotTestBase)
	date := slotTestBase.Format(models.SlotDateFormat)

	for _, slot := range store.AvailableOnDate(date) {
		assert.True(t, slot.Available)
		assert.Equal(t, date, slot.Date())
	}
}

func TestSlotStoreAvailableInRange(t *testing.T) {
	store := NewSlotStore(42, slotTestBase)
	from := slotTestBase.Format(models.SlotDateFormat)
	to := slotTestBase.AddDate(0, 0, 2).Format(models.SlotDateFormat)

	for _, slot := range store.AvailableInRange(from, to) {
		assert.True(t, slot.Available)
		assert.GreaterOrEqual(t, slot.Date(), from)
		assert.LessOrEqual(t, slot.Date(), to)
	}

	// Open bounds return the whole available inventory.
	open := store.AvailableInRange("", "")
	var available int
	for _, slot := range store.All() {
		if slot.Available {
			available++
		}
	}
	assert.Len(t, open, available)
}

func TestSlotStoreDatesWithAvailability(t *testing.T) {
	store := NewSlotStore(42, slotTestBase)

	dates := store.DatesWithAvailability(nil)
	require.NotEmpty(t, dates)
	assert.IsIncreasing(t, dates)

	// Weekends never appear.
	for _, date := range dates {
		day, err := time.Parse(models.SlotDateFormat, date)
		require.NoError(t, err)
		assert.NotEqual(t, time.Saturday, day.Weekday())
		assert.NotEqual(t, time.Sunday, day.Weekday())
	}

	// Excluding every slot on a day removes that day from the list.
	first := dates[0]
	exclude := make(map[string]bool)
	for _, slot := range store.AvailableOnDate(first) {
		exclude[slot.ID] = true
	}
	assert.NotContains(t, store.DatesWithAvailability(exclude), first)
}

func TestSlotStoreRefreshMovesWindow(t *testing.T) {
	store := NewSlotStore(42, slotTestBase)
	before := store.All()

	store.Refresh(slotTestBase.AddDate(0, 0, 7))
	after := store.All()

	require.NotEmpty(t, after)
	assert.NotEqual(t, before[0].ID, after[0].ID)
	assert.Len(t, after, 160)
}

func TestServiceRepoSeed(t *testing.T) {
	repo := NewInMemoryServiceRepo()

	services, err := repo.ListServices()
	require.NoError(t, err)
	require.Len(t, services, 5)

	svc, err := repo.GetServiceByID("service-4")
	require.NoError(t, err)
	assert.True(t, svc.IsPackage())
	assert.Contains(t, svc.Features, "Three 60-minute sessions")

	_, err = repo.GetServiceByID("service-99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFAQFiltering(t *testing.T) {
	repo := NewInMemoryServiceRepo()

	all, err := repo.ListFAQ("")
	require.NoError(t, err)
	require.NotEmpty(t, all)

	quick, err := repo.ListFAQ("quick")
	require.NoError(t, err)
	assert.NotEmpty(t, quick)
	for _, item := range quick {
		assert.True(t, item.AppliesTo("quick"))
	}
	assert.LessOrEqual(t, len(quick), len(all))
}

func TestExpertRepoSeed(t *testing.T) {
	repo := NewInMemoryExpertRepo()

	expert, err := repo.GetExpert("exp-1")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Johnson", expert.Name)
	assert.NotEmpty(t, expert.Reviews)
	assert.NotEmpty(t, expert.Credentials)

	_, err = repo.GetExpert("exp-2")
	assert.ErrorIs(t, err, ErrNotFound)
}
