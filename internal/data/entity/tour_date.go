package entity

import (
	"time"

	"github.com/google/uuid"
)

type TourDateStatus string

const (
	TourDateStatusAvailable TourDateStatus = "available"
	TourDateStatusFull      TourDateStatus = "full"
	TourDateStatusCancelled TourDateStatus = "cancelled"
)

// TourDate is one scheduled departure of a tour with its own seat
// inventory. (tour_id, start_date) is unique. Bookings reference it with
// protect-on-delete.
type TourDate struct {
	BaseSimple
	TourID         uuid.UUID      `db:"tour_id"`
	StartDate      time.Time      `db:"start_date"`
	EndDate        time.Time      `db:"end_date"`
	TotalSeats     int            `db:"total_seats"`
	AvailableSeats int            `db:"available_seats"`
	Status         TourDateStatus `db:"status"`
}

// InitSeats sets up the inventory of a new departure: all seats free,
// status available, end date derived from the tour duration when the
// caller did not supply one.
func (d *TourDate) InitSeats(totalSeats, durationDays int) {
	d.TotalSeats = totalSeats
	d.AvailableSeats = totalSeats
	if d.Status == "" {
		d.Status = TourDateStatusAvailable
	}
	if d.EndDate.IsZero() {
		d.EndDate = d.StartDate.AddDate(0, 0, durationDays-1)
	}
	d.RefreshStatus()
}

// RefreshStatus recomputes the derived status from the seat count.
// Cancelled is sticky: it is set only by staff and the seat arithmetic
// must never flip a cancelled departure back to available.
func (d *TourDate) RefreshStatus() {
	if d.Status == TourDateStatusCancelled {
		return
	}
	if d.AvailableSeats == 0 {
		d.Status = TourDateStatusFull
	} else if d.Status == TourDateStatusFull {
		d.Status = TourDateStatusAvailable
	}
}

// ReserveSeats takes people out of the free seat count and refreshes the
// status. The arithmetic is unchecked; booking intake verifies the seats
// are there while holding the row lock.
func (d *TourDate) ReserveSeats(people int) {
	d.AvailableSeats -= people
	d.RefreshStatus()
}

// Cancel puts the departure into the terminal cancelled state.
func (d *TourDate) Cancel() {
	d.Status = TourDateStatusCancelled
}

// IsBookable reports whether intake may accept bookings for this departure.
func (d *TourDate) IsBookable() bool {
	return d.Status == TourDateStatusAvailable && d.AvailableSeats > 0
}
