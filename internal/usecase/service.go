package usecase

import (
	"tour-booking/internal/data/repository"
	"tour-booking/pkg/database"

	"go.uber.org/zap"
)

// Service bundles every use case for wiring.
type Service struct {
	Tour    TourService
	Booking BookingService
	Review  ReviewService
	Content ContentService
	Lead    LeadService
}

func NewService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Tour:    NewTourService(db, repo, log),
		Booking: NewBookingService(db, repo, log),
		Review:  NewReviewService(repo, log),
		Content: NewContentService(repo, log),
		Lead:    NewLeadService(repo, log),
	}
}
