package pricing

import (
	"sort"

	"github.com/savioruz/futsal/pkg/constant"
	"github.com/savioruz/futsal/pkg/helper"
)

const (
	firstSlotMinutes = 8 * constant.MinutesPerHour
	lastSlotMinutes  = 22 * constant.MinutesPerHour
	slotStepMinutes  = 30
)

// Reservation is the part of a booking that occupies a court.
type Reservation struct {
	Time     string
	Duration int
}

// Window is a half-open interval of minutes since midnight.
type Window struct {
	Start int
	End   int
}

func (w Window) Overlaps(other Window) bool {
	return w.Start < other.End && other.Start < w.End
}

func NewWindow(clock string, duration int) (Window, error) {
	start, err := helper.MinutesOfDay(clock)
	if err != nil {
		return Window{}, ErrInvalidTime
	}

	if !IsValidDuration(duration) {
		return Window{}, ErrInvalidDuration
	}

	return Window{Start: start, End: start + duration*constant.MinutesPerHour}, nil
}

// Overlaps reports whether two reservations share at least one minute.
func Overlaps(a, b Reservation) bool {
	wa, err := NewWindow(a.Time, a.Duration)
	if err != nil {
		return false
	}

	wb, err := NewWindow(b.Time, b.Duration)
	if err != nil {
		return false
	}

	return wa.Overlaps(wb)
}

// AllowedSlots returns the bookable start times from 08:00 to 22:00 every 30 minutes.
func AllowedSlots() []string {
	slots := make([]string, 0, (lastSlotMinutes-firstSlotMinutes)/slotStepMinutes+1)
	for m := firstSlotMinutes; m <= lastSlotMinutes; m += slotStepMinutes {
		slots = append(slots, helper.ClockFromMinutes(m))
	}

	return slots
}

func IsAllowedSlot(clock string) bool {
	if len(clock) != len(constant.HoursFormat) {
		return false
	}

	m, err := helper.MinutesOfDay(clock)
	if err != nil {
		return false
	}

	return m >= firstSlotMinutes && m <= lastSlotMinutes && (m-firstSlotMinutes)%slotStepMinutes == 0
}

// ExpandOccupiedSlots lists the "HH:00" labels covered by a booking, counted
// from its start hour ("18:30", 2 gives 18:00 and 19:00). Hours after the last
// slot are dropped so a late booking never wraps past midnight. Invalid input
// covers nothing.
func ExpandOccupiedSlots(startTime string, duration int) []string {
	start, err := helper.MinutesOfDay(startTime)
	if err != nil || duration <= 0 {
		return nil
	}

	hour := start / constant.MinutesPerHour
	slots := make([]string, 0, duration)

	for i := 0; i < duration; i++ {
		m := (hour + i) * constant.MinutesPerHour
		if m > lastSlotMinutes {
			break
		}

		slots = append(slots, helper.ClockFromMinutes(m))
	}

	return slots
}

// OccupiedSlots is the sorted, de-duplicated union of ExpandOccupiedSlots.
func OccupiedSlots(reservations []Reservation) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, r := range reservations {
		for _, slot := range ExpandOccupiedSlots(r.Time, r.Duration) {
			if _, ok := seen[slot]; ok {
				continue
			}

			seen[slot] = struct{}{}
			out = append(out, slot)
		}
	}

	sort.Strings(out)

	return out
}

// AvailableStartTimes returns the allowed slots where a booking of duration hours
// would not overlap any of the reservations.
func AvailableStartTimes(duration int, reservations []Reservation) []string {
	out := make([]string, 0)
	if !IsValidDuration(duration) {
		return out
	}

	taken := make([]Window, 0, len(reservations))
	for _, r := range reservations {
		w, err := NewWindow(r.Time, r.Duration)
		if err != nil {
			continue
		}

		taken = append(taken, w)
	}

	for _, slot := range AllowedSlots() {
		candidate, _ := NewWindow(slot, duration)

		free := true
		for _, w := range taken {
			if candidate.Overlaps(w) {
				free = false

				break
			}
		}

		if free {
			out = append(out, slot)
		}
	}

	return out
}
