package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func TestPickupSlotsToday(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantFirst TimeOfDay
		wantCount int
	}{
		{"mid-slot rounds up", date(2024, 3, 15, 10, 7, 0), 10*60 + 30, 27},
		{"on boundary stays", date(2024, 3, 15, 10, 30, 0), 10*60 + 30, 27},
		{"seconds past boundary round up", date(2024, 3, 15, 10, 30, 45), 11 * 60, 26},
		{"rounds to next hour", date(2024, 3, 15, 10, 45, 0), 11 * 60, 26},
		{"midnight lists whole day", date(2024, 3, 15, 0, 0, 0), 0, 48},
		{"last slot at 23:30", date(2024, 3, 15, 23, 10, 0), 23*60 + 30, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := PickupSlots(tt.now, tt.now)
			require.Len(t, slots, tt.wantCount)
			assert.Equal(t, tt.wantFirst, slots[0].Start)
		})
	}
}

func TestPickupSlotsNoneLeftToday(t *testing.T) {
	now := date(2024, 3, 15, 23, 40, 0)
	assert.Empty(t, PickupSlots(now, now), "past 23:30 there is no same-day pickup")
}

func TestPickupSlotsFutureDate(t *testing.T) {
	now := date(2024, 3, 15, 18, 45, 0)
	slots := PickupSlots(date(2024, 3, 16, 0, 0, 0), now)
	require.Len(t, slots, 48)
	assert.Equal(t, TimeOfDay(0), slots[0].Start)
	assert.Equal(t, TimeOfDay(23*60+30), slots[len(slots)-1].Start)
}

func TestPickupSlotsPastDate(t *testing.T) {
	now := date(2024, 3, 15, 9, 0, 0)
	assert.Empty(t, PickupSlots(date(2024, 3, 14, 0, 0, 0), now))
}

func TestPickupSlotsAligned(t *testing.T) {
	now := date(2024, 3, 15, 7, 19, 0)
	for _, s := range PickupSlots(now, now) {
		assert.Zero(t, s.Start%30, "slot start %s not on a 30-minute boundary", s.Start)
		assert.Equal(t, s.Start+30, s.End)
		assert.GreaterOrEqual(t, s.Start, TimeOfDay(7*60+30), "slot before now offered")
	}
}
