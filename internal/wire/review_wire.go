package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews - Approved reviews, optional ?tour= filter
	r.Get("/api/reviews", reviewHandler.GetReviews)

	// POST /api/reviews - Submit a review (goes to moderation)
	r.Post("/api/reviews", reviewHandler.CreateReview)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/reviews", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin.Token, log))

		r.Get("/pending", reviewHandler.GetPendingReviews)      // GET /api/admin/reviews/pending
		r.Put("/{id}/moderation", reviewHandler.ModerateReview) // PUT /api/admin/reviews/{id}/moderation
	})
}
