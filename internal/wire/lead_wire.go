package wire

import (
	"tour-booking/internal/adaptor"
	"tour-booking/pkg/middleware"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireLead(
	r chi.Router,
	leadHandler *adaptor.LeadHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/leads - Contact requests from forms and widgets
	r.Post("/api/leads", leadHandler.CreateLead)

	// ==================== STAFF ROUTES ====================
	r.Route("/api/admin/leads", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin.Token, log))

		r.Get("/", leadHandler.GetLeads)                    // GET /api/admin/leads
		r.Put("/{id}/status", leadHandler.UpdateLeadStatus) // PUT /api/admin/leads/{id}/status
	})
}
