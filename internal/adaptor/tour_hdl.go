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

type TourHandler struct {
	service usecase.TourService
	log     *zap.Logger
}

func NewTourHandler(service usecase.TourService, log *zap.Logger) *TourHandler {
	return &TourHandler{
		service: service,
		log:     log.With(zap.String("handler", "tour")),
	}
}

// GetTours handles GET /api/tours
func (h *TourHandler) GetTours(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.TourListQuery{
		PaginatedRequest: request.PaginatedRequest{
			Page:    utils.ParseInt(query.Get("page"), 1),
			PerPage: utils.ParseInt(query.Get("per_page"), 10),
		},
		MinPrice:  query.Get("min_price"),
		MaxPrice:  query.Get("max_price"),
		Duration:  utils.ParseInt(query.Get("duration"), 0),
		TourType:  query.Get("tour_type"),
		Region:    query.Get("region"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	}

	// ordering: ?order_by=price_base&order=desc
	req.OrderBy = query.Get("order_by")
	req.Descending = query.Get("order") == "desc"

	tours, err := h.service.GetTours(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get tours")
		return
	}

	utils.ResponseSuccess(w, "Tours retrieved successfully", tours)
}

// GetTourBySlug handles GET /api/tours/{slug}
func (h *TourHandler) GetTourBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Tour slug is required", nil)
		return
	}

	tour, err := h.service.GetTourBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, h.log, err, "get tour by slug")
		return
	}

	utils.ResponseSuccess(w, "Tour retrieved successfully", tour)
}

// GetOperators handles GET /api/tour-operators
func (h *TourHandler) GetOperators(w http.ResponseWriter, r *http.Request) {
	operators, err := h.service.GetOperators(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get tour operators")
		return
	}

	utils.ResponseSuccess(w, "Tour operators retrieved successfully", operators)
}

// CreateTour handles POST /api/admin/tours
func (h *TourHandler) CreateTour(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	tour, err := h.service.CreateTour(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tour")
		return
	}

	utils.ResponseCreated(w, "Tour created successfully", tour)
}

// CreateTourDate handles POST /api/admin/tours/{id}/dates
func (h *TourHandler) CreateTourDate(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	var req request.CreateTourDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	date, err := h.service.CreateTourDate(r.Context(), tourID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tour date")
		return
	}

	utils.ResponseCreated(w, "Tour date created successfully", date)
}

// CancelTourDate handles PUT /api/admin/tour-dates/{id}/cancel
func (h *TourHandler) CancelTourDate(w http.ResponseWriter, r *http.Request) {
	tourDateID := chi.URLParam(r, "id")
	if tourDateID == "" {
		utils.ResponseBadRequest(w, "Tour date ID is required", nil)
		return
	}

	date, err := h.service.CancelTourDate(r.Context(), tourDateID)
	if err != nil {
		handleServiceError(w, h.log, err, "cancel tour date")
		return
	}

	utils.ResponseSuccess(w, "Tour date cancelled successfully", date)
}

// AddTourPhoto handles POST /api/admin/tours/{id}/photos
func (h *TourHandler) AddTourPhoto(w http.ResponseWriter, r *http.Request) {
	tourID := chi.URLParam(r, "id")
	if tourID == "" {
		utils.ResponseBadRequest(w, "Tour ID is required", nil)
		return
	}

	var req request.CreateTourPhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	photo, err := h.service.AddTourPhoto(r.Context(), tourID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add tour photo")
		return
	}

	utils.ResponseCreated(w, "Tour photo added successfully", photo)
}

// CreateOperator handles POST /api/admin/tour-operators
func (h *TourHandler) CreateOperator(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTourOperatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	operator, err := h.service.CreateOperator(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create tour operator")
		return
	}

	utils.ResponseCreated(w, "Tour operator created successfully", operator)
}

// DeleteOperator handles DELETE /api/admin/tour-operators/{id}
func (h *TourHandler) DeleteOperator(w http.ResponseWriter, r *http.Request) {
	operatorID := chi.URLParam(r, "id")
	if operatorID == "" {
		utils.ResponseBadRequest(w, "Tour operator ID is required", nil)
		return
	}

	if err := h.service.DeleteOperator(r.Context(), operatorID); err != nil {
		handleServiceError(w, h.log, err, "delete tour operator")
		return
	}

	utils.ResponseSuccess(w, "Tour operator deleted successfully", nil)
}
