package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// Public
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetApprovedReviews(ctx context.Context, tourID string, pg *request.PaginatedRequest) ([]response.ReviewResponse, error)

	// Staff moderation
	GetPendingReviews(ctx context.Context, pg *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewModerationResponse], error)
	ModerateReview(ctx context.Context, reviewID string, req *request.ModerateReviewRequest) (*response.ReviewModerationResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// CreateReview stores client feedback. Whatever moderation status the
// caller sends, the stored review starts pending.
func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	tourID, err := uuid.Parse(req.TourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", req.TourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, tourID)
	if err != nil || tour == nil {
		return nil, fmt.Errorf("tour %s not found", req.TourID)
	}

	photos := req.Photos
	if photos == nil {
		photos = []string{}
	}

	review := &entity.Review{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TourID:           tourID,
		ClientName:       req.ClientName,
		ClientCity:       req.ClientCity,
		Rating:           req.Rating,
		Text:             req.Text,
		Photos:           photos,
		VideoURL:         req.VideoURL,
		ModerationStatus: entity.ModerationStatusPending,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("tour_id", req.TourID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// GetApprovedReviews lists approved reviews, optionally scoped to one tour.
func (s *reviewService) GetApprovedReviews(ctx context.Context, tourID string, pg *request.PaginatedRequest) ([]response.ReviewResponse, error) {
	var scope *uuid.UUID
	if tourID != "" {
		id, err := uuid.Parse(tourID)
		if err != nil {
			return nil, fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
		}
		scope = &id
	}

	reviews, err := s.repo.Review.FindApproved(ctx, scope, pg.Limit(), pg.Offset())
	if err != nil {
		s.log.Error("Failed to list approved reviews", zap.Error(err))
		return nil, fmt.Errorf("list approved reviews: %w", err)
	}

	responses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = response.ReviewToResponse(review)
	}

	return responses, nil
}

func (s *reviewService) GetPendingReviews(ctx context.Context, pg *request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewModerationResponse], error) {
	reviews, err := s.repo.Review.FindPending(ctx, pg.Limit(), pg.Offset())
	if err != nil {
		s.log.Error("Failed to list pending reviews", zap.Error(err))
		return nil, fmt.Errorf("list pending reviews: %w", err)
	}

	total, err := s.repo.Review.CountPending(ctx)
	if err != nil {
		s.log.Error("Failed to count pending reviews", zap.Error(err))
		return nil, fmt.Errorf("count pending reviews: %w", err)
	}

	responses := make([]response.ReviewModerationResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = response.ReviewToModerationResponse(review)
	}

	return response.NewPaginatedResponse(responses, pg.Page, pg.Limit(), total), nil
}

func (s *reviewService) ModerateReview(ctx context.Context, reviewID string, req *request.ModerateReviewRequest) (*response.ReviewModerationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}
	if review == nil {
		return nil, fmt.Errorf("review %s not found", reviewID)
	}

	status := entity.ModerationStatus(req.Status)
	if err := s.repo.Review.UpdateModeration(ctx, id, status); err != nil {
		return nil, fmt.Errorf("moderate review: %w", err)
	}
	review.ModerationStatus = status

	s.log.Info("Review moderated",
		zap.String("review_id", reviewID),
		zap.String("status", req.Status),
	)

	resp := response.ReviewToModerationResponse(review)
	return &resp, nil
}
