package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePrice(t *testing.T) {
	tests := []struct {
		name      string
		clock     string
		duration  int
		courtType string
		want      int64
		wantErr   error
	}{
		{name: "indoor day", clock: "09:00", duration: 2, courtType: "indoor", want: 160000},
		{name: "indoor night", clock: "19:00", duration: 1, courtType: "indoor", want: 100000},
		{name: "default court is indoor", clock: "19:00", duration: 1, want: 100000},
		{name: "day ends before 17", clock: "16:30", duration: 1, courtType: "indoor", want: 80000},
		{name: "17 is night", clock: "17:00", duration: 1, courtType: "indoor", want: 100000},
		{name: "outdoor day", clock: "08:00", duration: 3, courtType: "outdoor", want: 300000},
		{name: "outdoor night", clock: "21:00", duration: 2, courtType: "outdoor", want: 240000},
		{name: "vip day", clock: "10:00", duration: 4, courtType: "vip", want: 480000},
		{name: "vip night", clock: "22:00", duration: 1, courtType: "vip", want: 150000},
		{name: "empty time", clock: "", duration: 1, wantErr: ErrInvalidTime},
		{name: "garbage time", clock: "noon", duration: 1, wantErr: ErrInvalidTime},
		{name: "zero duration", clock: "09:00", duration: 0, wantErr: ErrInvalidDuration},
		{name: "five hours", clock: "09:00", duration: 5, wantErr: ErrInvalidDuration},
		{name: "unknown court", clock: "09:00", duration: 1, courtType: "grass", wantErr: ErrInvalidCourtType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputePrice(tt.clock, tt.duration, tt.courtType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputePrice_IndoorPeriods(t *testing.T) {
	for hour := 8; hour <= 22; hour++ {
		for d := MinDuration; d <= MaxDuration; d++ {
			clock := fmt.Sprintf("%02d:00", hour)

			got, err := ComputePrice(clock, d, "indoor")
			require.NoError(t, err)

			if hour < 17 {
				assert.Equal(t, int64(80000*d), got, clock)
			} else {
				assert.Equal(t, int64(100000*d), got, clock)
			}
		}
	}
}

func TestComputePrice_MonotonicInDuration(t *testing.T) {
	for _, court := range CourtTypes() {
		for _, slot := range AllowedSlots() {
			var prev int64

			for d := MinDuration; d <= MaxDuration; d++ {
				got, err := ComputePrice(slot, d, court)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got, prev)

				prev = got
			}
		}
	}
}

func TestNormalizeCourtType(t *testing.T) {
	got, err := NormalizeCourtType("")
	require.NoError(t, err)
	assert.Equal(t, "indoor", got)

	got, err = NormalizeCourtType("vip")
	require.NoError(t, err)
	assert.Equal(t, "vip", got)

	_, err = NormalizeCourtType("VIP")
	assert.ErrorIs(t, err, ErrInvalidCourtType)
}

func TestHourlyRate(t *testing.T) {
	rate, err := HourlyRate("18:30", "outdoor")
	require.NoError(t, err)
	assert.Equal(t, int64(120000), rate)
}

func TestRateFor(t *testing.T) {
	r, err := RateFor("vip")
	require.NoError(t, err)
	assert.Equal(t, Rate{Day: 120000, Night: 150000}, r)

	_, err = RateFor("")
	assert.ErrorIs(t, err, ErrInvalidCourtType)

	start, end := DayHours()
	assert.Equal(t, 8, start)
	assert.Equal(t, 17, end)
}
