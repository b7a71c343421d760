package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidHourlyDuration(t *testing.T) {
	tests := []struct {
		start, end string
		want       bool
	}{
		{"10:00", "11:00", true},
		{"10:00", "10:59", false},
		{"10:00", "12:30", true},
		{"23:00", "23:30", false},
	}
	for _, tt := range tests {
		t.Run(tt.start+"-"+tt.end, func(t *testing.T) {
			start, err := ParseTimeOfDay(tt.start)
			require.NoError(t, err)
			end, err := ParseTimeOfDay(tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ValidHourlyDuration(start, end))
		})
	}
}

func TestValidHourlyDurationDayEnd(t *testing.T) {
	// A "00:00" return means 24:00, so 23:00 -> day end is a full hour.
	end, err := ParseReturnTime("00:00")
	require.NoError(t, err)
	assert.Equal(t, EndOfDay, end)
	assert.True(t, ValidHourlyDuration(23*60, end))
	assert.False(t, ValidHourlyDuration(23*60+30, end))
}

func TestValidDailyDuration(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"one day", "2024-01-01", "2024-01-02", true},
		{"same date", "2024-01-01", "2024-01-01", false},
		{"inverted", "2024-01-02", "2024-01-01", false},
		{"across month", "2024-01-31", "2024-02-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseDate(tt.start)
			require.NoError(t, err)
			end, err := ParseDate(tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ValidDailyDuration(start, end))
		})
	}
}

func TestDayCountIgnoresTimeOfDay(t *testing.T) {
	start := date(2024, 1, 1, 23, 0, 0)
	end := date(2024, 1, 2, 1, 0, 0)
	assert.Equal(t, 1, DayCount(start, end))
}
