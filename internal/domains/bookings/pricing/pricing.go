// Package pricing derives booking prices and slot availability. Every function is
// pure so it can be shared by the service, the stores and the tests.
package pricing

import (
	"errors"

	"github.com/savioruz/futsal/pkg/constant"
	"github.com/savioruz/futsal/pkg/helper"
)

const (
	MinDuration = 1
	MaxDuration = 4

	dayStartHour = 8
	dayEndHour   = 17
)

var (
	ErrInvalidTime      = errors.New("pricing: invalid time")
	ErrInvalidDuration  = errors.New("pricing: duration must be between 1 and 4 hours")
	ErrInvalidCourtType = errors.New("pricing: unknown court type")
)

// Rate is the hourly price of a court type for each period of the day.
type Rate struct {
	Day   int64
	Night int64
}

var rates = map[string]Rate{
	constant.CourtTypeIndoor:  {Day: 80000, Night: 100000},
	constant.CourtTypeOutdoor: {Day: 100000, Night: 120000},
	constant.CourtTypeVIP:     {Day: 120000, Night: 150000},
}

// CourtTypes lists the known court types in display order.
func CourtTypes() []string {
	return []string{constant.CourtTypeIndoor, constant.CourtTypeOutdoor, constant.CourtTypeVIP}
}

// NormalizeCourtType maps an empty court type to indoor and rejects unknown ones.
func NormalizeCourtType(courtType string) (string, error) {
	if courtType == "" {
		return constant.CourtTypeIndoor, nil
	}

	if _, ok := rates[courtType]; !ok {
		return "", ErrInvalidCourtType
	}

	return courtType, nil
}

// RateFor returns the hourly rates of a court type.
func RateFor(courtType string) (Rate, error) {
	r, ok := rates[courtType]
	if !ok {
		return Rate{}, ErrInvalidCourtType
	}

	return r, nil
}

// DayHours is the window, in whole hours, where the day rate applies.
func DayHours() (start, end int) {
	return dayStartHour, dayEndHour
}

func IsValidCourtType(courtType string) bool {
	_, ok := rates[courtType]

	return ok
}

func IsValidDuration(duration int) bool {
	return duration >= MinDuration && duration <= MaxDuration
}

// HourlyRate returns the per-hour price applied to a booking starting at clock.
// Hours in [08, 17) use the day rate, everything else the night rate.
func HourlyRate(clock, courtType string) (int64, error) {
	if clock == "" {
		return 0, ErrInvalidTime
	}

	minutes, err := helper.MinutesOfDay(clock)
	if err != nil {
		return 0, ErrInvalidTime
	}

	courtType, err = NormalizeCourtType(courtType)
	if err != nil {
		return 0, err
	}

	rate := rates[courtType]

	hour := minutes / constant.MinutesPerHour
	if hour >= dayStartHour && hour < dayEndHour {
		return rate.Day, nil
	}

	return rate.Night, nil
}

// ComputePrice returns rate x duration. A zero price is always paired with an error
// and must never be persisted.
func ComputePrice(clock string, duration int, courtType string) (int64, error) {
	rate, err := HourlyRate(clock, courtType)
	if err != nil {
		return 0, err
	}

	if !IsValidDuration(duration) {
		return 0, ErrInvalidDuration
	}

	return helper.CalculateTotalPrice(rate, duration), nil
}
