package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedSlots(t *testing.T) {
	slots := AllowedSlots()

	require.Len(t, slots, 29)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "08:30", slots[1])
	assert.Equal(t, "22:00", slots[len(slots)-1])

	for _, s := range slots {
		assert.True(t, IsAllowedSlot(s), s)
	}
}

func TestIsAllowedSlot(t *testing.T) {
	tests := map[string]bool{
		"08:00": true,
		"21:30": true,
		"22:00": true,
		"07:30": false,
		"22:30": false,
		"09:15": false,
		"9:00":  false,
		"":      false,
		"25:00": false,
	}

	for clock, want := range tests {
		assert.Equal(t, want, IsAllowedSlot(clock), clock)
	}
}

func TestExpandOccupiedSlots(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		duration int
		want     []string
	}{
		{name: "two hours", start: "18:00", duration: 2, want: []string{"18:00", "19:00"}},
		{name: "one hour", start: "08:00", duration: 1, want: []string{"08:00"}},
		{name: "half hour start uses the start hour", start: "18:30", duration: 2, want: []string{"18:00", "19:00"}},
		{name: "late half hour start", start: "21:30", duration: 2, want: []string{"21:00", "22:00"}},
		{name: "hours after closing are dropped", start: "22:00", duration: 4, want: []string{"22:00"}},
		{name: "invalid time", start: "xx", duration: 2, want: nil},
		{name: "zero duration", start: "18:00", duration: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandOccupiedSlots(tt.start, tt.duration))
		})
	}
}

func TestOccupiedSlots(t *testing.T) {
	got := OccupiedSlots([]Reservation{
		{Time: "19:00", Duration: 2},
		{Time: "18:00", Duration: 2},
		{Time: "09:00", Duration: 1},
	})

	assert.Equal(t, []string{"09:00", "18:00", "19:00", "20:00"}, got)
	assert.Empty(t, OccupiedSlots(nil))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Reservation
		want bool
	}{
		{name: "same slot", a: Reservation{"18:00", 1}, b: Reservation{"18:00", 1}, want: true},
		{name: "back to back", a: Reservation{"18:00", 1}, b: Reservation{"19:00", 1}, want: false},
		{name: "half hour inside", a: Reservation{"18:00", 2}, b: Reservation{"19:30", 1}, want: true},
		{name: "ends at start", a: Reservation{"20:00", 1}, b: Reservation{"18:00", 2}, want: false},
		{name: "invalid", a: Reservation{"", 1}, b: Reservation{"18:00", 2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestAvailableStartTimes(t *testing.T) {
	got := AvailableStartTimes(1, []Reservation{{Time: "18:00", Duration: 2}})

	assert.NotContains(t, got, "17:30")
	assert.NotContains(t, got, "18:00")
	assert.NotContains(t, got, "19:30")
	assert.Contains(t, got, "17:00")
	assert.Contains(t, got, "20:00")
	assert.Len(t, got, 29-5)

	assert.Len(t, AvailableStartTimes(2, nil), 29)
	assert.Empty(t, AvailableStartTimes(0, nil))
}
