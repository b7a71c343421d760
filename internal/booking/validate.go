package booking

import "time"

const hoursPerDay = 24

// ValidHourlyDuration reports whether an hourly rental from start to end, both
// on the same calendar day, lasts at least one hour. An end of EndOfDay counts
// as the full 1440 minutes.
func ValidHourlyDuration(start, end TimeOfDay) bool {
	return end-start >= 60
}

// DayCount returns the whole-day difference between two calendar dates,
// ignoring time-of-day, rounded down.
func DayCount(startDate, endDate time.Time) int {
	start := midnightOf(startDate)
	end := midnightOf(endDate)
	return int(end.Sub(start).Hours() / hoursPerDay)
}

// ValidDailyDuration reports whether a daily rental spans at least one day.
func ValidDailyDuration(startDate, endDate time.Time) bool {
	return DayCount(startDate, endDate) >= 1
}

func midnightOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
