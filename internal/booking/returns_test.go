package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnOptionsStartAtSlotEnd(t *testing.T) {
	slot := SlotStartingAt(10 * 60) // 10:00-10:30
	opts := ReturnOptions(slot)
	require.NotEmpty(t, opts)

	assert.Equal(t, slot.End, opts[0].Time, "first option must equal the slot end exactly")
	assert.Equal(t, "1 hour", opts[0].Label)
	for i := 1; i < len(opts); i++ {
		assert.Equal(t, opts[i-1].Time+60, opts[i].Time, "options must be 60 minutes apart")
	}
}

func TestReturnOptionsRunToDayEnd(t *testing.T) {
	// Slot 22:30-23:00 leaves candidates 23:00 and 24:00.
	opts := ReturnOptions(SlotStartingAt(22*60 + 30))
	require.Len(t, opts, 2)
	assert.Equal(t, TimeOfDay(23*60), opts[0].Time)
	assert.Equal(t, EndOfDay, opts[1].Time)
	assert.Equal(t, "00:00", opts[1].Time.String(), "day end rides the 00:00 encoding")
	assert.Equal(t, "2 hours", opts[1].Label)
}

func TestReturnOptionsEmptyAtDayEnd(t *testing.T) {
	// The 23:30 slot ends at 24:00; its single candidate is the day end itself,
	// so there is nothing to offer.
	assert.Empty(t, ReturnOptions(SlotStartingAt(23*60+30)))
}

func TestReturnOptionLabels(t *testing.T) {
	opts := ReturnOptions(SlotStartingAt(20 * 60)) // slot end 20:30
	require.Len(t, opts, 4)                        // 20:30, 21:30, 22:30, 23:30
	assert.Equal(t, "4 hours", opts[3].Label)
}
