package dto

import (
	"github.com/savioruz/futsal/internal/domains/bookings/repository"
	"github.com/savioruz/futsal/pkg/constant"
)

type BookingResponse struct {
	ID        int64  `json:"id" example:"1748746800000"`
	Name      string `json:"name" example:"Budi"`
	Phone     string `json:"phone" example:"081234567890"`
	Date      string `json:"date" example:"2025-06-01"`
	Time      string `json:"time" example:"09:00"`
	Duration  int    `json:"duration" example:"2"`
	CourtType string `json:"court_type" example:"indoor"`
	Price     int64  `json:"price" example:"160000"`
	Status    string `json:"status" example:"confirmed"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (b BookingResponse) FromModel(model repository.Booking) BookingResponse {
	return BookingResponse{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		Date:      model.Date,
		Time:      model.Time,
		Duration:  model.Duration,
		CourtType: model.CourtType,
		Price:     model.Price,
		Status:    model.Status,
		CreatedAt: model.CreatedAt.Format(constant.FullDateFormat),
		UpdatedAt: model.UpdatedAt.Format(constant.FullDateFormat),
	}
}

func FromModels(models []repository.Booking) []BookingResponse {
	out := make([]BookingResponse, len(models))
	for i, m := range models {
		out[i] = BookingResponse{}.FromModel(m)
	}

	return out
}

type BookingMessageResponse struct {
	Message string          `json:"message" example:"booking created"`
	Booking BookingResponse `json:"booking"`
}

type AvailabilityResponse struct {
	Date           string   `json:"date" example:"2025-06-01"`
	CourtType      string   `json:"court_type" example:"indoor"`
	Duration       int      `json:"duration" example:"1"`
	OccupiedSlots  []string `json:"occupied_slots"`
	AvailableTimes []string `json:"available_times"`
}

type QuoteResponse struct {
	Time      string `json:"time" example:"19:00"`
	Duration  int    `json:"duration" example:"2"`
	CourtType string `json:"court_type" example:"indoor"`
	Rate      int64  `json:"rate" example:"100000"`
	Price     int64  `json:"price" example:"200000"`
}

type StatsResponse struct {
	Date             string         `json:"date" example:"2025-06-01"`
	TotalBookings    int            `json:"total_bookings" example:"12"`
	UpcomingBookings int            `json:"upcoming_bookings" example:"4"`
	ByStatus         map[string]int `json:"by_status"`
	ByCourtType      map[string]int `json:"by_court_type"`
	ConfirmedRevenue int64          `json:"confirmed_revenue" example:"960000"`
}

// BookingEvent is the payload published on every booking mutation.
type BookingEvent struct {
	Event      string           `json:"event"`
	ID         int64            `json:"id"`
	Booking    *BookingResponse `json:"booking,omitempty"`
	OccurredAt string           `json:"occurred_at"`
}
