package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/savioruz/futsal/pkg/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC)

func newTestMemory() *memoryRepository {
	return newMemory(helper.NewIDGeneratorWithClock(func() time.Time { return fixedNow }), func() time.Time { return fixedNow })
}

func booking(date, clock string, duration int, court string) Booking {
	return Booking{
		Name:      "Budi",
		Phone:     "081234567890",
		Date:      date,
		Time:      clock,
		Duration:  duration,
		CourtType: court,
		Price:     100000,
		Status:    "confirmed",
	}
}

func TestMemory_InsertAssignsIDAndTimestamps(t *testing.T) {
	repo := newTestMemory()
	ctx := context.Background()

	first, err := repo.Insert(ctx, booking("2025-06-01", "09:00", 2, "indoor"))
	require.NoError(t, err)

	second, err := repo.Insert(ctx, booking("2025-06-01", "11:00", 1, "indoor"))
	require.NoError(t, err)

	assert.Equal(t, fixedNow.UnixMilli(), first.ID)
	assert.Greater(t, second.ID, first.ID)
	assert.Equal(t, fixedNow, first.CreatedAt)
	assert.Equal(t, fixedNow, first.UpdatedAt)
}

func TestMemory_InsertRejectsOverlap(t *testing.T) {
	repo := newTestMemory()
	ctx := context.Background()

	_, err := repo.Insert(ctx, booking("2025-06-01", "18:00", 2, "indoor"))
	require.NoError(t, err)

	_, err = repo.Insert(ctx, booking("2025-06-01", "19:00", 1, "indoor"))
	assert.ErrorIs(t, err, ErrSlotTaken)

	_, err = repo.Insert(ctx, booking("2025-06-01", "19:00", 1, "vip"))
	assert.NoError(t, err, "other court types do not conflict")

	_, err = repo.Insert(ctx, booking("2025-06-02", "19:00", 1, "indoor"))
	assert.NoError(t, err, "other dates do not conflict")

	_, err = repo.Insert(ctx, booking("2025-06-01", "20:00", 1, "indoor"))
	assert.NoError(t, err, "back to back is allowed")
}

func TestMemory_CancelledBookingFreesSlot(t *testing.T) {
	repo := newTestMemory()
	ctx := context.Background()

	b, err := repo.Insert(ctx, booking("2025-06-01", "18:00", 2, "indoor"))
	require.NoError(t, err)

	_, err = repo.Update(ctx, b.ID, func(x *Booking) error {
		x.Status = "cancelled"

		return nil
	})
	require.NoError(t, err)

	_, err = repo.Insert(ctx, booking("2025-06-01", "18:00", 2, "indoor"))
	assert.NoError(t, err)
}

func TestMemory_ListKeepsInsertionOrderAndFilters(t *testing.T) {
	repo := newTestMemory()
	ctx := context.Background()

	a, _ := repo.Insert(ctx, booking("2025-06-02", "09:00", 1, "indoor"))
	b, _ := repo.Insert(ctx, booking("2025-06-01", "09:00", 1, "indoor"))
	c, _ := repo.Insert(ctx, booking("2025-06-01", "09:00", 1, "outdoor"))

	all, err := repo.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{all[0].ID, all[1].ID, all[2].ID})

	byDate, err := repo.List(ctx, Filter{Date: "2025-06-01"})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	byCourt, err := repo.List(ctx, Filter{Date: "2025-06-01", CourtType: "outdoor"})
	require.NoError(t, err)
	require.Len(t, byCourt, 1)
	assert.Equal(t, c.ID, byCourt[0].ID)

	none, err := repo.List(ctx, Filter{Status: "pending"})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemory_GetByID(t *testing.T) {
	repo := newTestMemory()
	ctx := context.Background()

	created, err := repo.Insert(ctx, booking("2025-06-01", "09:00", 1, "indoor"))
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merges fields and keeps identity", func(t *testing.T) {
		repo := newTestMemory()

		created, err := repo.Insert(ctx, booking("2025-06-01", "09:00", 1, "indoor"))
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, func(b *Booking) error {
			b.Name = "Andi"
			b.ID = 1

			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Andi", updated.Name)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newTestMemory()

		_, err := repo.Update(ctx, 7, func(*Booking) error { return nil })
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("mutate error leaves record untouched", func(t *testing.T) {
		repo := newTestMemory()
		created, _ := repo.Insert(ctx, booking("2025-06-01", "09:00", 1, "indoor"))
		boom := errors.New("boom")

		_, err := repo.Update(ctx, created.ID, func(b *Booking) error {
			b.Name = "changed"

			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, _ := repo.GetByID(ctx, created.ID)
		assert.Equal(t, "Budi", got.Name)
	})

	t.Run("moving onto another booking conflicts", func(t *testing.T) {
		repo := newTestMemory()
		_, _ = repo.Insert(ctx, booking("2025-06-01", "18:00", 2, "indoor"))
		other, _ := repo.Insert(ctx, booking("2025-06-01", "09:00", 1, "indoor"))

		_, err := repo.Update(ctx, other.ID, func(b *Booking) error {
			b.Time = "19:00"

			return nil
		})
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("extending in place does not conflict with itself", func(t *testing.T) {
		repo := newTestMemory()
		created, _ := repo.Insert(ctx, booking("2025-06-01", "18:00", 1, "indoor"))

		updated, err := repo.Update(ctx, created.ID, func(b *Booking) error {
			b.Duration = 3

			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Duration)
	})
}

func TestMemory_Delete(t *testing.T) {
	repo := newTestMemory()
	ctx := context.Background()

	created, _ := repo.Insert(ctx, booking("2025-06-01", "09:00", 1, "indoor"))

	require.NoError(t, repo.Delete(ctx, created.ID))

	all, _ := repo.List(ctx, Filter{})
	assert.Empty(t, all)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrNotFound)
}

func TestMemory_ConcurrentInsertsOneWinner(t *testing.T) {
	repo := NewMemory(helper.NewIDGenerator())
	ctx := context.Background()

	const workers = 20

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		taken   int
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			b := booking("2025-06-01", "18:00", 2, "indoor")
			b.Name = fmt.Sprintf("player-%d", i)

			_, err := repo.Insert(ctx, b)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				success++
			case errors.Is(err, ErrSlotTaken):
				taken++
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, workers-1, taken)
}

func TestFindConflict(t *testing.T) {
	existing := []Booking{
		{ID: 1, Date: "2025-06-01", Time: "18:00", Duration: 2, CourtType: "indoor", Status: "confirmed"},
		{ID: 2, Date: "2025-06-01", Time: "09:00", Duration: 1, CourtType: "indoor", Status: "cancelled"},
	}

	got, ok := FindConflict(existing, Booking{Date: "2025-06-01", Time: "19:30", Duration: 1, CourtType: "indoor", Status: "pending"})
	assert.True(t, ok)
	assert.Equal(t, int64(1), got.ID)

	_, ok = FindConflict(existing, Booking{Date: "2025-06-01", Time: "09:00", Duration: 1, CourtType: "indoor", Status: "confirmed"})
	assert.False(t, ok, "cancelled bookings do not block")

	_, ok = FindConflict(existing, Booking{Date: "2025-06-01", Time: "18:00", Duration: 1, CourtType: "indoor", Status: "cancelled"})
	assert.False(t, ok, "cancelled candidates never conflict")

	_, ok = FindConflict(existing, Booking{ID: 1, Date: "2025-06-01", Time: "18:00", Duration: 3, CourtType: "indoor", Status: "confirmed"})
	assert.False(t, ok, "a booking does not conflict with itself")
}
