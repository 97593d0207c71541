package repository

import (
	"time"

	"github.com/savioruz/futsal/internal/domains/bookings/pricing"
	"github.com/savioruz/futsal/pkg/constant"
)

type Booking struct {
	ID        int64
	Name      string
	Phone     string
	Date      string
	Time      string
	Duration  int
	CourtType string
	Price     int64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether the booking holds its court slots.
func (b Booking) Active() bool {
	return b.Status != constant.BookingStatusCancelled
}

func (b Booking) Reservation() pricing.Reservation {
	return pricing.Reservation{Time: b.Time, Duration: b.Duration}
}

// Filter narrows List results; empty fields match everything.
type Filter struct {
	Date      string
	CourtType string
	Status    string
}

func (f Filter) Match(b Booking) bool {
	if f.Date != "" && f.Date != b.Date {
		return false
	}

	if f.CourtType != "" && f.CourtType != b.CourtType {
		return false
	}

	if f.Status != "" && f.Status != b.Status {
		return false
	}

	return true
}
