package dto

import (
	"github.com/savioruz/futsal/pkg/gdto"
)

type CreateBookingRequest struct {
	Name      string       `json:"name" validate:"required,min=2,max=100" example:"Budi"`
	Phone     string       `json:"phone" validate:"required,number,min=10,max=15" example:"081234567890"`
	Date      string       `json:"date" validate:"required,datetime=2006-01-02" example:"2025-06-01"`
	Time      string       `json:"time" validate:"required,slot" example:"09:00"`
	Duration  gdto.FlexInt `json:"duration" validate:"required,min=1,max=4" swaggertype:"integer" example:"2"`
	CourtType string       `json:"court_type" validate:"omitempty,court_type" example:"indoor"`
}

// UpdateBookingRequest carries a partial update; nil fields are left unchanged.
type UpdateBookingRequest struct {
	ID        gdto.FlexInt  `json:"id" validate:"required,gt=0" swaggertype:"integer" example:"1748746800000"`
	Name      *string       `json:"name,omitempty" validate:"omitnil,min=2,max=100" example:"Budi"`
	Phone     *string       `json:"phone,omitempty" validate:"omitnil,number,min=10,max=15" example:"081234567890"`
	Date      *string       `json:"date,omitempty" validate:"omitnil,datetime=2006-01-02" example:"2025-06-01"`
	Time      *string       `json:"time,omitempty" validate:"omitnil,slot" example:"19:00"`
	Duration  *gdto.FlexInt `json:"duration,omitempty" validate:"omitnil,min=1,max=4" swaggertype:"integer" example:"1"`
	CourtType *string       `json:"court_type,omitempty" validate:"omitnil,court_type" example:"vip"`
	Status    *string       `json:"status,omitempty" validate:"omitnil,oneof=pending confirmed cancelled" example:"cancelled"`
}

func (r UpdateBookingRequest) HasChanges() bool {
	return r.Name != nil || r.Phone != nil || r.Date != nil || r.Time != nil ||
		r.Duration != nil || r.CourtType != nil || r.Status != nil
}

type DeleteBookingRequest struct {
	ID gdto.FlexInt `json:"id" validate:"required,gt=0" swaggertype:"integer" example:"1748746800000"`
}

type ListBookingsRequest struct {
	Date      string `query:"date" validate:"omitempty,datetime=2006-01-02" example:"2025-06-01"`
	CourtType string `query:"court_type" validate:"omitempty,court_type" example:"indoor"`
	Status    string `query:"status" validate:"omitempty,oneof=pending confirmed cancelled" example:"confirmed"`
}

type AvailabilityRequest struct {
	Date      string `query:"date" validate:"required,datetime=2006-01-02" example:"2025-06-01"`
	CourtType string `query:"court_type" validate:"omitempty,court_type" example:"indoor"`
	Duration  int    `query:"duration" validate:"omitempty,min=1,max=4" example:"1"`
}

type QuoteRequest struct {
	Time      string `query:"time" validate:"required,slot" example:"19:00"`
	Duration  int    `query:"duration" validate:"required,min=1,max=4" example:"2"`
	CourtType string `query:"court_type" validate:"omitempty,court_type" example:"outdoor"`
}
