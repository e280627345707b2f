package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"tour-booking/internal/data/repository"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"go.uber.org/zap"
)

// Handler bundles every HTTP handler for wiring.
type Handler struct {
	Tour    *TourHandler
	Booking *BookingHandler
	Review  *ReviewHandler
	Content *ContentHandler
	Lead    *LeadHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Tour:    NewTourHandler(service.Tour, log),
		Booking: NewBookingHandler(service.Booking, log),
		Review:  NewReviewHandler(service.Review, log),
		Content: NewContentHandler(service.Content, log),
		Lead:    NewLeadHandler(service.Lead, log),
	}
}

// handleServiceError maps service errors onto HTTP responses. Field-level
// rejections carry their field name into the errors payload.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var fieldErr *utils.FieldError
	if errors.As(err, &fieldErr) {
		log.Warn(operation+" rejected",
			zap.String("field", fieldErr.Field),
			zap.String("reason", fieldErr.Message))
		utils.ResponseBadRequest(w, "Validation failed", map[string]string{
			fieldErr.Field: fieldErr.Message,
		})
		return
	}

	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrDuplicate):
		log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, repository.ErrReferenced),
		strings.Contains(errMsg, "cannot be deleted"):
		log.Warn(operation+" failed - referenced", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "already exists"):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
