package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusNew       BookingStatus = "new"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type BookingSource string

const (
	BookingSourceWebsite  BookingSource = "website"
	BookingSourceWhatsApp BookingSource = "whatsapp"
	BookingSourceTelegram BookingSource = "telegram"
	BookingSourcePhone    BookingSource = "phone"
)

// Booking is a client request for seats on one departure. TotalPrice is
// computed once at creation (price_base * people_count) and never changes.
// Cancelling a booking does not return its seats to the departure.
type Booking struct {
	Base
	TourDateID  uuid.UUID       `db:"tour_date_id"`
	ClientName  string          `db:"client_name"`
	ClientPhone string          `db:"client_phone"`
	ClientEmail string          `db:"client_email"`
	PeopleCount int             `db:"people_count"`
	TotalPrice  decimal.Decimal `db:"total_price"`
	Comment     string          `db:"comment"`
	Source      BookingSource   `db:"source"`
	Status      BookingStatus   `db:"status"`
}
