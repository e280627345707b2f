package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Booking intake from the website
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin.Token, log))

		r.Get("/", bookingHandler.GetBookings)                    // GET /api/admin/bookings
		r.Get("/{id}", bookingHandler.GetBookingByID)             // GET /api/admin/bookings/{id}
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus) // PUT /api/admin/bookings/{id}/status
	})
}
