package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string    `json:"id"`
	TourDateID  string    `json:"tour_date_id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ClientEmail string    `json:"client_email"`
	PeopleCount int       `json:"people_count"`
	TotalPrice  string    `json:"total_price"`
	Comment     string    `json:"comment,omitempty"`
	Source      string    `json:"source"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		TourDateID:  booking.TourDateID.String(),
		ClientName:  booking.ClientName,
		ClientPhone: booking.ClientPhone,
		ClientEmail: booking.ClientEmail,
		PeopleCount: booking.PeopleCount,
		TotalPrice:  booking.TotalPrice.StringFixed(2),
		Comment:     booking.Comment,
		Source:      string(booking.Source),
		Status:      string(booking.Status),
		CreatedAt:   booking.CreatedAt,
	}
}
