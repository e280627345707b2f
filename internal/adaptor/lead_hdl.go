package adaptor

import (
	"encoding/json"
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LeadHandler struct {
	service usecase.LeadService
	log     *zap.Logger
}

func NewLeadHandler(service usecase.LeadService, log *zap.Logger) *LeadHandler {
	return &LeadHandler{
		service: service,
		log:     log.With(zap.String("handler", "lead")),
	}
}

// CreateLead handles POST /api/leads
func (h *LeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req request.CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	lead, err := h.service.CreateLead(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create lead")
		return
	}

	utils.ResponseCreated(w, "Lead created successfully", lead)
}

// GetLeads handles GET /api/admin/leads
func (h *LeadHandler) GetLeads(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pg := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	leads, err := h.service.GetLeads(r.Context(), pg)
	if err != nil {
		handleServiceError(w, h.log, err, "get leads")
		return
	}

	utils.ResponseSuccess(w, "Leads retrieved successfully", leads)
}

// UpdateLeadStatus handles PUT /api/admin/leads/{id}/status
func (h *LeadHandler) UpdateLeadStatus(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	if leadID == "" {
		utils.ResponseBadRequest(w, "Lead ID is required", nil)
		return
	}

	var req request.UpdateLeadStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.UpdateLeadStatus(r.Context(), leadID, &req); err != nil {
		handleServiceError(w, h.log, err, "update lead status")
		return
	}

	utils.ResponseSuccess(w, "Lead status updated successfully", nil)
}
