package dto

import (
	"fmt"

	"github.com/savioruz/futsal/internal/domains/bookings/pricing"
)

type CourtResponse struct {
	Type      string `json:"type" example:"indoor"`
	DayRate   int64  `json:"day_rate" example:"80000"`
	NightRate int64  `json:"night_rate" example:"100000"`
	DayHours  string `json:"day_hours" example:"08:00-17:00"`
}

func (c CourtResponse) FromRate(courtType string, rate pricing.Rate) CourtResponse {
	start, end := pricing.DayHours()

	return CourtResponse{
		Type:      courtType,
		DayRate:   rate.Day,
		NightRate: rate.Night,
		DayHours:  fmt.Sprintf("%02d:00-%02d:00", start, end),
	}
}

// GetCourtsResponse is everything a booking form needs to render its selects.
type GetCourtsResponse struct {
	Courts      []CourtResponse `json:"courts"`
	Slots       []string        `json:"slots" example:"08:00,08:30"`
	MinDuration int             `json:"min_duration" example:"1"`
	MaxDuration int             `json:"max_duration" example:"4"`
}
