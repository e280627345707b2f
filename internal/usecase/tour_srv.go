package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/database"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TourService interface {
	// Public catalog
	GetTours(ctx context.Context, query *request.TourListQuery) (*response.PaginatedResponse[response.TourListItemResponse], error)
	GetTourBySlug(ctx context.Context, slug string) (*response.TourDetailResponse, error)
	GetOperators(ctx context.Context) ([]*response.TourOperatorResponse, error)

	// Staff endpoints
	CreateTour(ctx context.Context, req *request.CreateTourRequest) (*response.TourDetailResponse, error)
	CreateTourDate(ctx context.Context, tourID string, req *request.CreateTourDateRequest) (*response.TourDateResponse, error)
	CancelTourDate(ctx context.Context, tourDateID string) (*response.TourDateResponse, error)
	AddTourPhoto(ctx context.Context, tourID string, req *request.CreateTourPhotoRequest) (*response.TourPhotoResponse, error)
	CreateOperator(ctx context.Context, req *request.CreateTourOperatorRequest) (*response.TourOperatorResponse, error)
	DeleteOperator(ctx context.Context, operatorID string) error
}

type tourService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewTourService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) TourService {
	return &tourService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) GetTours(ctx context.Context, query *request.TourListQuery) (*response.PaginatedResponse[response.TourListItemResponse], error) {
	filter, err := buildTourFilter(query)
	if err != nil {
		return nil, err
	}

	limit := query.Limit()
	offset := query.Offset()

	tours, err := s.repo.Tour.FindActive(ctx, *filter, limit, offset)
	if err != nil {
		s.log.Error("Failed to list tours", zap.Error(err))
		return nil, fmt.Errorf("list tours: %w", err)
	}

	total, err := s.repo.Tour.CountActive(ctx, *filter)
	if err != nil {
		s.log.Error("Failed to count tours", zap.Error(err))
		return nil, fmt.Errorf("count tours: %w", err)
	}

	items := make([]response.TourListItemResponse, len(tours))
	for i, tour := range tours {
		items[i] = s.buildListItem(ctx, tour)
	}

	return response.NewPaginatedResponse(items, query.Page, limit, total), nil
}

func (s *tourService) GetTourBySlug(ctx context.Context, slug string) (*response.TourDetailResponse, error) {
	tour, err := s.repo.Tour.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get tour: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour %s not found", slug)
	}

	detail := &response.TourDetailResponse{
		ID:               tour.ID.String(),
		Title:            tour.Title,
		Slug:             tour.Slug,
		DescriptionShort: tour.DescriptionShort,
		DescriptionFull:  tour.DescriptionFull,
		PriceBase:        tour.PriceBase.StringFixed(2),
		DurationDays:     tour.DurationDays,
		TourType:         string(tour.TourType),
		MaxPeople:        tour.MaxPeople,
		Region:           tour.Region,
		Included:         tour.Included,
		NotIncluded:      tour.NotIncluded,
		ProgramByDays:    tour.ProgramByDays,
		Photos:           []response.TourPhotoResponse{},
		Dates:            []response.TourDateResponse{},
		Reviews:          []response.ReviewResponse{},
		CreatedAt:        tour.CreatedAt,
	}

	if operator, err := s.repo.Operator.FindByID(ctx, tour.TourOperatorID); err == nil && operator != nil {
		detail.TourOperator = response.TourOperatorToResponse(operator)
	}

	if photos, err := s.repo.TourPhoto.FindByTourID(ctx, tour.ID); err == nil {
		for _, photo := range photos {
			detail.Photos = append(detail.Photos, response.TourPhotoToResponse(photo))
		}
	}

	today := time.Now().Truncate(24 * time.Hour)
	if dates, err := s.repo.TourDate.FindUpcomingByTourID(ctx, tour.ID, today, 10); err == nil {
		for _, date := range dates {
			detail.Dates = append(detail.Dates, response.TourDateToResponse(date))
		}
	}

	if reviews, err := s.repo.Review.FindApproved(ctx, &tour.ID, 5, 0); err == nil {
		for _, review := range reviews {
			detail.Reviews = append(detail.Reviews, response.ReviewToResponse(review))
		}
	}

	if avg, err := s.repo.Review.AverageApprovedRating(ctx, tour.ID); err == nil {
		detail.AverageRating = avg
	}

	return detail, nil
}

func (s *tourService) GetOperators(ctx context.Context) ([]*response.TourOperatorResponse, error) {
	operators, err := s.repo.Operator.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tour operators: %w", err)
	}

	responses := make([]*response.TourOperatorResponse, len(operators))
	for i, operator := range operators {
		responses[i] = response.TourOperatorToResponse(operator)
	}

	return responses, nil
}

func (s *tourService) CreateTour(ctx context.Context, req *request.CreateTourRequest) (*response.TourDetailResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create tour validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	operatorID, err := uuid.Parse(req.TourOperatorID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour operator ID format %s: %w", req.TourOperatorID, err)
	}

	operator, err := s.repo.Operator.FindByID(ctx, operatorID)
	if err != nil || operator == nil {
		return nil, fmt.Errorf("tour operator %s not found", req.TourOperatorID)
	}

	price, err := decimal.NewFromString(req.PriceBase)
	if err != nil {
		return nil, utils.NewFieldError("price_base", "Must be a decimal number")
	}
	if price.IsNegative() {
		return nil, utils.NewFieldError("price_base", "Must not be negative")
	}

	// Assign a slug only when the caller did not supply one
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	program := make([]entity.ProgramDay, len(req.ProgramByDays))
	for i, day := range req.ProgramByDays {
		program[i] = entity.ProgramDay{
			Day:         day.Day,
			Title:       day.Title,
			Description: day.Description,
		}
	}

	now := time.Now()
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:            req.Title,
		Slug:             slug,
		DescriptionShort: req.DescriptionShort,
		DescriptionFull:  req.DescriptionFull,
		PriceBase:        price.Round(2),
		DurationDays:     req.DurationDays,
		TourType:         entity.TourType(req.TourType),
		MaxPeople:        req.MaxPeople,
		TourOperatorID:   operatorID,
		Region:           req.Region,
		Included:         req.Included,
		NotIncluded:      req.NotIncluded,
		ProgramByDays:    program,
		IsActive:         true,
	}

	if err := s.repo.Tour.Create(ctx, tour); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.NewFieldError("slug", "A tour with this slug already exists")
		}
		return nil, fmt.Errorf("create tour: %w", err)
	}

	s.log.Info("Tour created",
		zap.String("tour_id", tour.ID.String()),
		zap.String("slug", tour.Slug),
		zap.String("operator_id", req.TourOperatorID),
	)

	return s.GetTourBySlug(ctx, tour.Slug)
}

// CreateTourDate schedules a departure: all seats free, status available,
// end date derived from the tour duration when absent.
func (s *tourService) CreateTourDate(ctx context.Context, tourID string, req *request.CreateTourDateRequest) (*response.TourDateResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create tour date validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil || tour == nil {
		return nil, fmt.Errorf("tour %s not found", tourID)
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, utils.NewFieldError("start_date", "Must be a date in 2006-01-02 format")
	}

	date := &entity.TourDate{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TourID:    id,
		StartDate: startDate,
	}

	if req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, utils.NewFieldError("end_date", "Must be a date in 2006-01-02 format")
		}
		date.EndDate = endDate
	}

	date.InitSeats(req.TotalSeats, tour.DurationDays)

	if err := s.repo.TourDate.Create(ctx, date); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, utils.NewFieldError("start_date", "A departure on this date already exists")
		}
		return nil, fmt.Errorf("create tour date: %w", err)
	}

	s.log.Info("Tour date created",
		zap.String("tour_date_id", date.ID.String()),
		zap.String("tour_id", tourID),
		zap.Time("start_date", date.StartDate),
		zap.Int("total_seats", date.TotalSeats),
	)

	resp := response.TourDateToResponse(date)
	return &resp, nil
}

// CancelTourDate puts a departure into the terminal cancelled state.
// Seat arithmetic never brings it back.
func (s *tourService) CancelTourDate(ctx context.Context, tourDateID string) (*response.TourDateResponse, error) {
	id, err := uuid.Parse(tourDateID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour date ID format %s: %w", tourDateID, err)
	}

	date, err := s.repo.TourDate.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tour date: %w", err)
	}
	if date == nil {
		return nil, fmt.Errorf("tour date %s not found", tourDateID)
	}

	date.Cancel()
	if err := s.repo.TourDate.UpdateSeats(ctx, s.db, date); err != nil {
		return nil, fmt.Errorf("cancel tour date: %w", err)
	}

	s.log.Info("Tour date cancelled", zap.String("tour_date_id", tourDateID))

	resp := response.TourDateToResponse(date)
	return &resp, nil
}

func (s *tourService) AddTourPhoto(ctx context.Context, tourID string, req *request.CreateTourPhotoRequest) (*response.TourPhotoResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil || tour == nil {
		return nil, fmt.Errorf("tour %s not found", tourID)
	}

	photo := &entity.TourPhoto{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		TourID:       id,
		PhotoURL:     req.PhotoURL,
		DisplayOrder: req.DisplayOrder,
		IsCover:      req.IsCover,
	}

	if err := s.repo.TourPhoto.Create(ctx, photo); err != nil {
		return nil, fmt.Errorf("add tour photo: %w", err)
	}

	resp := response.TourPhotoToResponse(photo)
	return &resp, nil
}

func (s *tourService) CreateOperator(ctx context.Context, req *request.CreateTourOperatorRequest) (*response.TourOperatorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	operator := &entity.TourOperator{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        req.Name,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		Phone:       req.Phone,
		Email:       req.Email,
		IsActive:    true,
	}

	if err := s.repo.Operator.Create(ctx, operator); err != nil {
		return nil, fmt.Errorf("create tour operator: %w", err)
	}

	s.log.Info("Tour operator created",
		zap.String("operator_id", operator.ID.String()),
		zap.String("name", operator.Name),
	)

	return response.TourOperatorToResponse(operator), nil
}

// DeleteOperator removes an operator unless tours still reference it.
func (s *tourService) DeleteOperator(ctx context.Context, operatorID string) error {
	id, err := uuid.Parse(operatorID)
	if err != nil {
		return fmt.Errorf("invalid tour operator ID format %s: %w", operatorID, err)
	}

	if err := s.repo.Operator.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrReferenced) {
			return fmt.Errorf("tour operator %s is referenced by tours and cannot be deleted", operatorID)
		}
		return err
	}

	return nil
}

func (s *tourService) buildListItem(ctx context.Context, tour *entity.Tour) response.TourListItemResponse {
	item := response.TourListItemResponse{
		ID:               tour.ID.String(),
		Title:            tour.Title,
		Slug:             tour.Slug,
		DescriptionShort: tour.DescriptionShort,
		PriceBase:        tour.PriceBase.StringFixed(2),
		DurationDays:     tour.DurationDays,
		TourType:         string(tour.TourType),
		Region:           tour.Region,
	}

	if cover, err := s.repo.TourPhoto.FindCoverByTourID(ctx, tour.ID); err == nil && cover != nil {
		item.CoverPhoto = &cover.PhotoURL
	}

	today := time.Now().Truncate(24 * time.Hour)
	if dates, err := s.repo.TourDate.FindUpcomingByTourID(ctx, tour.ID, today, 1); err == nil && len(dates) > 0 {
		nearest := response.TourDateToResponse(dates[0])
		item.NearestDate = &nearest
	}

	if operator, err := s.repo.Operator.FindByID(ctx, tour.TourOperatorID); err == nil && operator != nil {
		item.TourOperator = response.TourOperatorToResponse(operator)
	}

	return item
}

func buildTourFilter(query *request.TourListQuery) (*repository.TourFilter, error) {
	filter := &repository.TourFilter{
		Region:     query.Region,
		OrderBy:    query.OrderBy,
		Descending: query.Descending,
	}

	if query.MinPrice != "" {
		price, err := decimal.NewFromString(query.MinPrice)
		if err != nil {
			return nil, utils.NewFieldError("min_price", "Must be a decimal number")
		}
		filter.MinPrice = &price
	}
	if query.MaxPrice != "" {
		price, err := decimal.NewFromString(query.MaxPrice)
		if err != nil {
			return nil, utils.NewFieldError("max_price", "Must be a decimal number")
		}
		filter.MaxPrice = &price
	}
	if query.Duration > 0 {
		filter.Duration = &query.Duration
	}
	if query.TourType != "" {
		tourType := entity.TourType(query.TourType)
		switch tourType {
		case entity.TourTypeBusGroup, entity.TourTypeBusSmall, entity.TourTypeIndividual:
			filter.TourType = &tourType
		default:
			return nil, utils.NewFieldError("tour_type", "Must be one of: bus_group, bus_small, individual")
		}
	}
	if query.StartDate != "" {
		from, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return nil, utils.NewFieldError("start_date", "Must be a date in 2006-01-02 format")
		}
		filter.StartDateFrom = &from
	}
	if query.EndDate != "" {
		to, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return nil, utils.NewFieldError("end_date", "Must be a date in 2006-01-02 format")
		}
		filter.StartDateTo = &to
	}

	return filter, nil
}
