package repository

import (
	"context"
	"sync"
	"time"

	"github.com/savioruz/futsal/pkg/helper"
)

type memoryRepository struct {
	mu    sync.RWMutex
	items map[int64]Booking
	order []int64
	ids   *helper.IDGenerator
	now   func() time.Time
}

// NewMemory returns a process-local Repository. Data is lost on restart.
func NewMemory(ids *helper.IDGenerator) Repository {
	return newMemory(ids, time.Now)
}

func newMemory(ids *helper.IDGenerator, now func() time.Time) *memoryRepository {
	return &memoryRepository{
		items: make(map[int64]Booking),
		ids:   ids,
		now:   now,
	}
}

func (r *memoryRepository) Insert(_ context.Context, b Booking) (Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b.ID = 0
	if _, taken := FindConflict(r.snapshot(), b); taken {
		return Booking{}, ErrSlotTaken
	}

	now := r.now().UTC()
	b.ID = r.ids.Next()
	b.CreatedAt = now
	b.UpdatedAt = now

	r.items[b.ID] = b
	r.order = append(r.order, b.ID)

	return b, nil
}

func (r *memoryRepository) List(_ context.Context, f Filter) ([]Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Booking, 0, len(r.order))
	for _, id := range r.order {
		if b := r.items[id]; f.Match(b) {
			out = append(out, b)
		}
	}

	return out, nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.items[id]
	if !ok {
		return Booking{}, ErrNotFound
	}

	return b, nil
}

func (r *memoryRepository) Update(_ context.Context, id int64, mutate func(*Booking) error) (Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return Booking{}, ErrNotFound
	}

	next := current
	if err := mutate(&next); err != nil {
		return Booking{}, err
	}

	next.ID = current.ID
	next.CreatedAt = current.CreatedAt

	if _, taken := FindConflict(r.snapshot(), next); taken {
		return Booking{}, ErrSlotTaken
	}

	next.UpdatedAt = r.now().UTC()
	r.items[id] = next

	return next, nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}

	delete(r.items, id)

	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)

			break
		}
	}

	return nil
}

// snapshot must be called with mu held.
func (r *memoryRepository) snapshot() []Booking {
	out := make([]Booking, 0, len(r.items))
	for _, b := range r.items {
		out = append(out, b)
	}

	return out
}
