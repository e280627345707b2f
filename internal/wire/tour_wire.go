package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTour(
	r chi.Router,
	tourHandler *adaptor.TourHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/tours - Catalog listing with filters
	r.Get("/api/tours", tourHandler.GetTours)

	// GET /api/tours/{slug} - Tour details
	r.Get("/api/tours/{slug}", tourHandler.GetTourBySlug)

	// GET /api/tour-operators - Active tour operators
	r.Get("/api/tour-operators", tourHandler.GetOperators)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/tours", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin.Token, log))

		r.Post("/", tourHandler.CreateTour)               // POST /api/admin/tours
		r.Post("/{id}/dates", tourHandler.CreateTourDate) // POST /api/admin/tours/{id}/dates
		r.Post("/{id}/photos", tourHandler.AddTourPhoto)  // POST /api/admin/tours/{id}/photos
	})

	r.Route("/api/admin/tour-dates", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin.Token, log))

		r.Put("/{id}/cancel", tourHandler.CancelTourDate) // PUT /api/admin/tour-dates/{id}/cancel
	})

	r.Route("/api/admin/tour-operators", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin.Token, log))

		r.Post("/", tourHandler.CreateOperator)       // POST /api/admin/tour-operators
		r.Delete("/{id}", tourHandler.DeleteOperator) // DELETE /api/admin/tour-operators/{id}
	})
}
