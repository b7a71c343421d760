package booking

import "fmt"

// ReturnOption is a selectable end-of-rental time for hourly bookings,
// generated in whole-hour steps relative to the pickup slot's end.
type ReturnOption struct {
	Time  TimeOfDay `json:"time"`
	Label string    `json:"label"`
}

// ReturnOptions enumerates the return times offered for an hourly rental that
// begins with the given pickup slot. The sequence starts exactly at the slot's
// end (billing origin) and continues in 1-hour increments until the end of the
// calendar day. A slot whose end is already 24:00 offers no return times.
func ReturnOptions(slot PickupSlot) []ReturnOption {
	if slot.End >= EndOfDay {
		return nil
	}
	var opts []ReturnOption
	for i, t := 0, slot.End; t <= EndOfDay; i, t = i+1, t+60 {
		opts = append(opts, ReturnOption{
			Time:  t,
			Label: durationLabel(i + 1),
		})
	}
	return opts
}

func durationLabel(hours int) string {
	if hours == 1 {
		return "1 hour"
	}
	return fmt.Sprintf("%d hours", hours)
}
