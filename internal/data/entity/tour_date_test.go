package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestDate(seats int) *TourDate {
	return &TourDate{
		BaseSimple: BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		TourID:     uuid.New(),
		StartDate:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		TotalSeats: seats,
	}
}

func TestInitSeats(t *testing.T) {
	t.Run("all seats free and status available", func(t *testing.T) {
		d := newTestDate(0)
		d.InitSeats(40, 5)

		assert.Equal(t, 40, d.TotalSeats)
		assert.Equal(t, 40, d.AvailableSeats)
		assert.Equal(t, TourDateStatusAvailable, d.Status)
	})

	t.Run("end date derived from duration", func(t *testing.T) {
		d := newTestDate(0)
		d.InitSeats(40, 5)

		// 5-day tour starting July 1 ends July 5
		assert.Equal(t, time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC), d.EndDate)
	})

	t.Run("one-day tour ends on the start date", func(t *testing.T) {
		d := newTestDate(0)
		d.InitSeats(10, 1)

		assert.Equal(t, d.StartDate, d.EndDate)
	})

	t.Run("explicit end date is kept", func(t *testing.T) {
		d := newTestDate(0)
		d.EndDate = time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
		d.InitSeats(10, 3)

		assert.Equal(t, time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC), d.EndDate)
	})
}

func TestReserveSeats(t *testing.T) {
	t.Run("decrements free seats", func(t *testing.T) {
		d := newTestDate(0)
		d.InitSeats(10, 3)

		d.ReserveSeats(4)

		assert.Equal(t, 6, d.AvailableSeats)
		assert.Equal(t, TourDateStatusAvailable, d.Status)
	})

	t.Run("last seat flips status to full", func(t *testing.T) {
		d := newTestDate(0)
		d.InitSeats(2, 3)

		d.ReserveSeats(2)

		assert.Equal(t, 0, d.AvailableSeats)
		assert.Equal(t, TourDateStatusFull, d.Status)
	})
}

func TestRefreshStatus(t *testing.T) {
	t.Run("full goes back to available when seats free up", func(t *testing.T) {
		d := newTestDate(0)
		d.InitSeats(2, 3)
		d.ReserveSeats(2)
		assert.Equal(t, TourDateStatusFull, d.Status)

		d.AvailableSeats = 1
		d.RefreshStatus()

		assert.Equal(t, TourDateStatusAvailable, d.Status)
	})

	t.Run("cancelled is sticky", func(t *testing.T) {
		d := newTestDate(0)
		d.InitSeats(10, 3)
		d.Cancel()

		d.RefreshStatus()
		assert.Equal(t, TourDateStatusCancelled, d.Status)

		// seat arithmetic must not resurrect a cancelled departure
		d.AvailableSeats = 0
		d.RefreshStatus()
		assert.Equal(t, TourDateStatusCancelled, d.Status)

		d.AvailableSeats = 10
		d.RefreshStatus()
		assert.Equal(t, TourDateStatusCancelled, d.Status)
	})
}

func TestIsBookable(t *testing.T) {
	d := newTestDate(0)
	d.InitSeats(1, 3)
	assert.True(t, d.IsBookable())

	d.ReserveSeats(1)
	assert.False(t, d.IsBookable())

	d2 := newTestDate(0)
	d2.InitSeats(10, 3)
	d2.Cancel()
	assert.False(t, d2.IsBookable())
}
