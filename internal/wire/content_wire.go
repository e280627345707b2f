package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContent(
	r chi.Router,
	contentHandler *adaptor.ContentHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/faq - Active FAQ entries, optional ?category= filter
	r.Get("/api/faq", contentHandler.GetFAQ)

	// GET /api/blog - Published blog posts
	r.Get("/api/blog", contentHandler.GetBlogPosts)

	// GET /api/blog/{slug} - Blog post details
	r.Get("/api/blog/{slug}", contentHandler.GetBlogPostBySlug)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/faq", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin.Token, log))

		r.Post("/", contentHandler.CreateFAQ) // POST /api/admin/faq
	})

	r.Route("/api/admin/blog", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin.Token, log))

		r.Post("/", contentHandler.CreateBlogPost) // POST /api/admin/blog
	})
}
