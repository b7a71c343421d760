package booking

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time expressed as whole minutes since midnight.
// The value 1440 (EndOfDay) means 24:00, i.e. the end of the calendar day.
// The wire format renders EndOfDay as "00:00", which is how clients have
// always encoded a day-end return time.
type TimeOfDay int

const (
	minutesPerDay = 24 * 60

	// EndOfDay is the exclusive upper bound of a day, 24:00.
	EndOfDay TimeOfDay = minutesPerDay

	// SlotDuration is the length of a pickup slot.
	SlotDuration TimeOfDay = 30
)

// ParseTimeOfDay parses an "HH:MM" clock time between 00:00 and 23:59.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// ParseReturnTime parses a return time, mapping "00:00" to EndOfDay. A return
// of midnight always means the end of the rental day, never its start.
func ParseReturnTime(s string) (TimeOfDay, error) {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return 0, err
	}
	if t == 0 {
		return EndOfDay, nil
	}
	return t, nil
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Valid reports whether t is within a single day, day-end included.
func (t TimeOfDay) Valid() bool { return t >= 0 && t <= EndOfDay }

func (t TimeOfDay) String() string {
	if t == EndOfDay {
		return "00:00"
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalJSON renders the clock string, keeping the "00:00" day-end encoding.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// On anchors t to the given calendar date, returning a full timestamp.
// EndOfDay maps to midnight of the following day.
func (t TimeOfDay) On(date time.Time) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.Add(time.Duration(t) * time.Minute)
}

// timeOfDayAt truncates a timestamp to its minutes-since-midnight component.
func timeOfDayAt(ts time.Time) TimeOfDay {
	return TimeOfDay(ts.Hour()*60 + ts.Minute())
}

// sameDate reports whether two timestamps fall on the same calendar date.
func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
