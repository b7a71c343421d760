package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rates = RateCard{PricePerHour: 10000, PricePerDay: 500000}

func TestHourlyQuote(t *testing.T) {
	tests := []struct {
		name      string
		slotStart TimeOfDay
		returnAt  TimeOfDay
		wantHours int
		wantTotal int
	}{
		// Slot 10:00-10:30, return 12:00: 90 minutes bills as 2 hours.
		{"partial hour rounds up", 10 * 60, 12 * 60, 2, 20000},
		{"exact hour", 10 * 60, 11*60 + 30, 1, 10000},
		{"zero duration floors to one hour", 10 * 60, 10*60 + 30, 1, 10000},
		{"day-end return", 22 * 60, EndOfDay, 2, 20000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := HourlyQuote(SlotStartingAt(tt.slotStart), tt.returnAt, rates)
			require.NoError(t, err)
			assert.Equal(t, tt.wantHours, q.BilledUnits)
			assert.Equal(t, tt.wantTotal, q.TotalCost)
			assert.Equal(t, q.BaseCost, q.TotalCost)
		})
	}
}

func TestHourlyQuoteRejectsReturnBeforeSlotEnd(t *testing.T) {
	_, err := HourlyQuote(SlotStartingAt(10*60), 10*60, rates)
	assert.Error(t, err)
}

func TestDailyQuote(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantDays int
	}{
		{"two whole days", date(2024, 1, 1, 9, 0, 0), date(2024, 1, 3, 9, 0, 0), 2},
		{"partial day rounds up", date(2024, 1, 1, 9, 0, 0), date(2024, 1, 3, 10, 0, 0), 3},
		{"under a day floors to one", date(2024, 1, 1, 9, 0, 0), date(2024, 1, 1, 15, 0, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := DailyQuote(tt.start, tt.end, rates)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, q.BilledUnits)
			assert.Equal(t, tt.wantDays*rates.PricePerDay, q.TotalCost)
		})
	}
}

func TestDailyQuoteRejectsInvertedWindow(t *testing.T) {
	_, err := DailyQuote(date(2024, 1, 3, 9, 0, 0), date(2024, 1, 1, 9, 0, 0), rates)
	assert.Error(t, err)
}

func TestQuoteIdempotent(t *testing.T) {
	req := RentalRequest{
		Mode:       ModeHourly,
		StartDate:  date(2024, 1, 1, 0, 0, 0),
		EndDate:    date(2024, 1, 1, 0, 0, 0),
		Slot:       SlotStartingAt(10 * 60),
		ReturnTime: 12 * 60,
	}
	first, err := Quote(req, rates)
	require.NoError(t, err)
	second, err := Quote(req, rates)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQuoteUnknownMode(t *testing.T) {
	_, err := Quote(RentalRequest{Mode: "weekly"}, rates)
	assert.Error(t, err)
}
