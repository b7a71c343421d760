package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{"00:00", 0, false},
		{"10:30", 10*60 + 30, false},
		{"23:59", 23*60 + 59, false},
		{"24:00", 0, true},
		{"10:60", 0, true},
		{"banana", 0, true},
		{"10:30xyz", 0, true},
		{"9:5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "09:05", TimeOfDay(9*60+5).String())
	assert.Equal(t, "00:00", TimeOfDay(0).String())
	assert.Equal(t, "00:00", EndOfDay.String(), "day end keeps the legacy 00:00 encoding")
}

func TestTimeOfDayOn(t *testing.T) {
	d := date(2024, 3, 15, 0, 0, 0)

	at := TimeOfDay(10*60 + 30).On(d)
	assert.Equal(t, date(2024, 3, 15, 10, 30, 0), at)

	// EndOfDay rolls over to the next day's midnight.
	rolled := EndOfDay.On(d)
	assert.Equal(t, date(2024, 3, 16, 0, 0, 0), rolled)
	assert.Equal(t, 24*time.Hour, rolled.Sub(TimeOfDay(0).On(d)))
}

func TestTimeOfDayJSON(t *testing.T) {
	b, err := EndOfDay.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"00:00"`, string(b))
}
