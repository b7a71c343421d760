package booking

import "time"

// PickupSlot is a fixed 30-minute window during which a rental may begin.
type PickupSlot struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// SlotStartingAt returns the pickup slot whose start is the given boundary.
func SlotStartingAt(start TimeOfDay) PickupSlot {
	return PickupSlot{Start: start, End: start + SlotDuration}
}

// PickupSlots returns the selectable pickup slots for the target date, earliest
// first. If the date is today, slots begin at the next 30-minute boundary at or
// after now; a future date lists the whole day from 00:00. An empty result
// means no same-day pickup is available (e.g. now is past 23:30).
func PickupSlots(date, now time.Time) []PickupSlot {
	first := TimeOfDay(0)
	if sameDate(date, now) {
		at := timeOfDayAt(now)
		if now.Second() > 0 || now.Nanosecond() > 0 {
			// The truncated minute has already begun, so a slot starting on
			// it would lie in the past.
			at++
		}
		first = nextSlotBoundary(at)
	} else if date.Before(now) {
		// A past date never has selectable slots.
		return nil
	}

	var slots []PickupSlot
	for start := first; start+SlotDuration <= EndOfDay; start += SlotDuration {
		slots = append(slots, SlotStartingAt(start))
	}
	return slots
}

// nextSlotBoundary rounds a clock time up to the next 30-minute boundary.
// Times already on a boundary are kept as-is.
func nextSlotBoundary(t TimeOfDay) TimeOfDay {
	return (t + SlotDuration - 1) / SlotDuration * SlotDuration
}
