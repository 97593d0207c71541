package helper

import (
	"time"

	"github.com/savioruz/futsal/pkg/constant"
)

// CalculateTotalPrice multiplies an hourly rate by the booked hours.
func CalculateTotalPrice(pricePerHour int64, durationHours int) int64 {
	if pricePerHour <= 0 || durationHours <= 0 {
		return 0
	}

	return pricePerHour * int64(durationHours)
}

// MinutesOfDay parses a "15:04" clock into minutes since midnight.
func MinutesOfDay(clock string) (int, error) {
	t, err := time.Parse(constant.HoursFormat, clock)
	if err != nil {
		return 0, err
	}

	return t.Hour()*60 + t.Minute(), nil
}

// ClockFromMinutes formats minutes since midnight as "15:04", wrapping past midnight.
func ClockFromMinutes(minutes int) string {
	const day = 24 * 60

	minutes = ((minutes % day) + day) % day

	return time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format(constant.HoursFormat)
}
