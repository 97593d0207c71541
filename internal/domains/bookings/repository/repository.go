package repository

import (
	"context"
	"errors"

	"github.com/savioruz/futsal/internal/domains/bookings/pricing"
)

//go:generate mockgen -source=repository.go -destination=../mock/repository_mock.go -package=mock github.com/savioruz/futsal/internal/domains/bookings/repository Repository

var (
	ErrNotFound  = errors.New("repository: booking not found")
	ErrSlotTaken = errors.New("repository: slot already booked")
)

// Repository stores bookings. Insert and Update check for overlapping active
// bookings on the same date and court under the same lock as the write.
type Repository interface {
	Insert(ctx context.Context, b Booking) (Booking, error)
	List(ctx context.Context, f Filter) ([]Booking, error)
	GetByID(ctx context.Context, id int64) (Booking, error)
	Update(ctx context.Context, id int64, mutate func(*Booking) error) (Booking, error)
	Delete(ctx context.Context, id int64) error
}

// FindConflict returns the first active booking in existing that shares the date and
// court of candidate and overlaps its window. Bookings with candidate's id are skipped.
func FindConflict(existing []Booking, candidate Booking) (Booking, bool) {
	if !candidate.Active() {
		return Booking{}, false
	}

	for _, b := range existing {
		if b.ID == candidate.ID || !b.Active() {
			continue
		}

		if b.Date != candidate.Date || b.CourtType != candidate.CourtType {
			continue
		}

		if pricing.Overlaps(b.Reservation(), candidate.Reservation()) {
			return b, true
		}
	}

	return Booking{}, false
}
