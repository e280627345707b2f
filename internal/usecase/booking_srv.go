package usecase

import (
	"context"
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

type BookingService interface {
	// Public intake
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// Staff endpoints
	GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error
}

type bookingService struct {
	db   database.PgxIface
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		db:   db,
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// CreateBooking validates a prospective booking and reserves seats. The
// check-then-decrement runs inside one transaction holding a row lock on
// the tour date, so two concurrent requests for the last seats cannot
// both pass the availability check.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Normalize client phone to +7XXXXXXXXXX
	phone, err := utils.NormalizePhone("client_phone", req.ClientPhone)
	if err != nil {
		s.log.Warn("Booking phone rejected", zap.String("client_phone", req.ClientPhone))
		return nil, err
	}

	tourDateID, err := uuid.Parse(req.TourDateID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour date ID format %s: %w", req.TourDateID, err)
	}

	source := entity.BookingSource(req.Source)
	if source == "" {
		source = entity.BookingSourceWebsite
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin booking transaction", zap.Error(err))
		return nil, fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the departure row for the whole check-and-decrement
	tourDate, err := s.repo.TourDate.FindByIDForUpdate(ctx, tx, tourDateID)
	if err != nil {
		return nil, fmt.Errorf("check tour date availability: %w", err)
	}
	if tourDate == nil {
		return nil, fmt.Errorf("tour date %s not found", req.TourDateID)
	}

	if tourDate.Status != entity.TourDateStatusAvailable {
		return nil, utils.NewFieldError("tour_date", "This tour is not available for booking")
	}
	if tourDate.AvailableSeats < req.PeopleCount {
		return nil, utils.NewFieldError("people_count",
			fmt.Sprintf("Not enough seats. Available: %d", tourDate.AvailableSeats))
	}

	tour, err := s.repo.Tour.FindByID(ctx, tourDate.TourID)
	if err != nil || tour == nil {
		return nil, fmt.Errorf("tour for date %s not found", req.TourDateID)
	}

	// total_price = price_base * people_count, fixed once at creation
	totalPrice := tour.PriceBase.Mul(decimal.NewFromInt(int64(req.PeopleCount)))

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TourDateID:  tourDateID,
		ClientName:  req.ClientName,
		ClientPhone: phone,
		ClientEmail: req.ClientEmail,
		PeopleCount: req.PeopleCount,
		TotalPrice:  totalPrice,
		Comment:     req.Comment,
		Source:      source,
		Status:      entity.BookingStatusNew,
	}

	if err := s.repo.Booking.Create(ctx, tx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("tour_date_id", req.TourDateID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	tourDate.ReserveSeats(req.PeopleCount)
	if err := s.repo.TourDate.UpdateSeats(ctx, tx, tourDate); err != nil {
		return nil, fmt.Errorf("reserve seats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit booking transaction", zap.Error(err))
		return nil, fmt.Errorf("commit booking transaction: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("tour_date_id", req.TourDateID),
		zap.Int("people_count", req.PeopleCount),
		zap.String("total_price", totalPrice.StringFixed(2)),
		zap.Int("seats_left", tourDate.AvailableSeats),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, limit, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// UpdateBookingStatus is a staff action. Cancelling a booking does not
// return its seats to the departure.
func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, entity.BookingStatus(req.Status)); err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", req.Status),
	)

	return nil
}
