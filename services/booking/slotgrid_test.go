package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridDays(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	days := GridDays(now)

	require.Len(t, days, 7)
	assert.Equal(t, "2026-03-10", days[0])
	assert.Equal(t, "2026-03-16", days[6])
}

func TestDaySlotsFutureDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 45, 0, 0, time.UTC)
	slots := DaySlots("2026-03-12", now)

	// 10:00 through 20:30 at half-hour steps.
	require.Len(t, slots, 22)
	assert.Equal(t, "10:00 AM", slots[0])
	assert.Equal(t, "08:30 PM", slots[len(slots)-1])
}

func TestDaySlotsTodayStartsAtNextBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 17, 0, 0, time.UTC)
	slots := DaySlots("2026-03-10", now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "02:30 PM", slots[0])
	assert.NotContains(t, slots, "02:00 PM")
}

func TestDaySlotsTodayOnBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	slots := DaySlots("2026-03-10", now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "02:30 PM", slots[0])
}

func TestDaySlotsTodayInNonAlignedZone(t *testing.T) {
	// UTC+5:45 puts absolute half-hour boundaries on :15/:45 wall-clock
	// minutes; the grid must stay anchored to the local 10:00 opening.
	kathmandu := time.FixedZone("UTC+0545", 5*3600+45*60)
	now := time.Date(2026, 3, 10, 14, 17, 0, 0, kathmandu)
	slots := DaySlots("2026-03-10", now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "02:30 PM", slots[0])
	assert.True(t, ValidSlot("2026-03-10", "02:30 PM", now))
	assert.False(t, ValidSlot("2026-03-10", "02:45 PM", now))
}

func TestDaySlotsTodayBeforeOpening(t *testing.T) {
	now := time.Date(2026, 3, 10, 7, 5, 0, 0, time.UTC)
	slots := DaySlots("2026-03-10", now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "10:00 AM", slots[0])
}

func TestDaySlotsTodayAfterClosing(t *testing.T) {
	now := time.Date(2026, 3, 10, 21, 10, 0, 0, time.UTC)
	assert.Empty(t, DaySlots("2026-03-10", now))
}

func TestDaySlotsPastDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	assert.Empty(t, DaySlots("2026-03-09", now))
}

func TestValidSlot(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.True(t, ValidSlot("2026-03-11", "10:00 AM", now))
	assert.True(t, ValidSlot("2026-03-16", "08:30 PM", now), "last day of the horizon")

	assert.False(t, ValidSlot("2026-03-09", "10:00 AM", now), "past day")
	assert.False(t, ValidSlot("2026-03-17", "10:00 AM", now), "beyond the horizon")
	assert.False(t, ValidSlot("2026-03-11", "10:15 AM", now), "off-grid label")
	assert.False(t, ValidSlot("2026-03-11", "09:00 PM", now), "closing time itself")
	assert.False(t, ValidSlot("11-03-2026", "10:00 AM", now), "malformed day")

	afternoon := time.Date(2026, 3, 10, 14, 17, 0, 0, time.UTC)
	assert.False(t, ValidSlot("2026-03-10", "11:00 AM", afternoon), "already passed today")
	assert.True(t, ValidSlot("2026-03-10", "02:30 PM", afternoon))
}

func TestSlotStart(t *testing.T) {
	start, err := SlotStart("2026-03-11", "02:30 PM", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 11, 14, 30, 0, 0, time.UTC), start)

	_, err = SlotStart("2026-03-11", "25:00", time.UTC)
	assert.Error(t, err)
}
