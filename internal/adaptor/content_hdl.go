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

type ContentHandler struct {
	service usecase.ContentService
	log     *zap.Logger
}

func NewContentHandler(service usecase.ContentService, log *zap.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With(zap.String("handler", "content")),
	}
}

// GetFAQ handles GET /api/faq with an optional ?category= filter
func (h *ContentHandler) GetFAQ(w http.ResponseWriter, r *http.Request) {
	faqs, err := h.service.GetFAQ(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handleServiceError(w, h.log, err, "get FAQ")
		return
	}

	utils.ResponseSuccess(w, "FAQ retrieved successfully", faqs)
}

// CreateFAQ handles POST /api/admin/faq
func (h *ContentHandler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	faq, err := h.service.CreateFAQ(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create FAQ")
		return
	}

	utils.ResponseCreated(w, "FAQ created successfully", faq)
}

// GetBlogPosts handles GET /api/blog
func (h *ContentHandler) GetBlogPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	pg := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	posts, err := h.service.GetBlogPosts(r.Context(), pg)
	if err != nil {
		handleServiceError(w, h.log, err, "get blog posts")
		return
	}

	utils.ResponseSuccess(w, "Blog posts retrieved successfully", posts)
}

// GetBlogPostBySlug handles GET /api/blog/{slug}
func (h *ContentHandler) GetBlogPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		utils.ResponseBadRequest(w, "Blog post slug is required", nil)
		return
	}

	post, err := h.service.GetBlogPostBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, h.log, err, "get blog post by slug")
		return
	}

	utils.ResponseSuccess(w, "Blog post retrieved successfully", post)
}

// CreateBlogPost handles POST /api/admin/blog
func (h *ContentHandler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	post, err := h.service.CreateBlogPost(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create blog post")
		return
	}

	utils.ResponseCreated(w, "Blog post created successfully", post)
}
