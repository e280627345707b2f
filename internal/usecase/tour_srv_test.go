package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTourFixture(t *testing.T) (TourService, *fakeStore) {
	t.Helper()

	operator := &entity.TourOperator{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		Name:       "Caucasus Travel",
		IsActive:   true,
	}

	store := &fakeStore{operators: []*entity.TourOperator{operator}}
	service := NewTourService(&fakeDB{store: store}, newFakeRepository(store), zap.NewNop())

	return service, store
}

func validTourRequest(store *fakeStore) *request.CreateTourRequest {
	return &request.CreateTourRequest{
		Title:            "Тур по Грузии",
		DescriptionShort: "Five days across the country",
		DescriptionFull:  "Tbilisi, Kazbegi and the wine region.",
		PriceBase:        "42000.00",
		DurationDays:     5,
		TourType:         "bus_group",
		TourOperatorID:   store.operators[0].ID.String(),
		Region:           "Georgia",
	}
}

func TestCreateTour(t *testing.T) {
	t.Run("assigns a slug and stores the tour", func(t *testing.T) {
		service, store := newTourFixture(t)

		tour, err := service.CreateTour(context.Background(), validTourRequest(store))
		require.NoError(t, err)

		assert.Regexp(t, `^[a-z0-9-]+-[0-9a-f]{8}$`, tour.Slug)
		assert.Contains(t, tour.Slug, "tur-po-gruzii-")
		assert.Equal(t, "42000.00", tour.PriceBase)
		require.Len(t, store.tours, 1)
		assert.True(t, store.tours[0].IsActive)
	})

	t.Run("rejects a malformed price", func(t *testing.T) {
		service, store := newTourFixture(t)

		req := validTourRequest(store)
		req.PriceBase = "not-a-price"

		_, err := service.CreateTour(context.Background(), req)
		require.Error(t, err)

		var fieldErr *utils.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "price_base", fieldErr.Field)
	})

	t.Run("rejects an unknown operator", func(t *testing.T) {
		service, store := newTourFixture(t)

		req := validTourRequest(store)
		req.TourOperatorID = uuid.New().String()

		_, err := service.CreateTour(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestCreateTourDate(t *testing.T) {
	seedTour := func(store *fakeStore) *entity.Tour {
		tour := &entity.Tour{
			Base:           entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
			Title:          "Weekend in the Mountains",
			Slug:           "weekend-in-the-mountains-a1b2c3d4",
			PriceBase:      decimal.RequireFromString("9000.00"),
			DurationDays:   3,
			TourType:       entity.TourTypeBusSmall,
			TourOperatorID: store.operators[0].ID,
			IsActive:       true,
		}
		store.tours = append(store.tours, tour)
		return tour
	}

	t.Run("derives the end date from the duration", func(t *testing.T) {
		service, store := newTourFixture(t)
		tour := seedTour(store)

		date, err := service.CreateTourDate(context.Background(), tour.ID.String(), &request.CreateTourDateRequest{
			StartDate:  "2026-07-01",
			TotalSeats: 18,
		})
		require.NoError(t, err)

		// 3-day tour starting July 1 ends July 3
		assert.Equal(t, "2026-07-03", date.EndDate)
		assert.Equal(t, 18, date.TotalSeats)
		assert.Equal(t, 18, date.AvailableSeats)
		assert.Equal(t, "available", date.Status)
	})

	t.Run("rejects a duplicate start date", func(t *testing.T) {
		service, store := newTourFixture(t)
		tour := seedTour(store)

		req := &request.CreateTourDateRequest{StartDate: "2026-07-01", TotalSeats: 18}
		_, err := service.CreateTourDate(context.Background(), tour.ID.String(), req)
		require.NoError(t, err)

		_, err = service.CreateTourDate(context.Background(), tour.ID.String(), req)
		require.Error(t, err)

		var fieldErr *utils.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "start_date", fieldErr.Field)
	})

	t.Run("unknown tour is not found", func(t *testing.T) {
		service, _ := newTourFixture(t)

		_, err := service.CreateTourDate(context.Background(), uuid.New().String(), &request.CreateTourDateRequest{
			StartDate:  "2026-07-01",
			TotalSeats: 18,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestCancelTourDate(t *testing.T) {
	service, store := newTourFixture(t)

	tour := &entity.Tour{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Slug:           "weekend-a1b2c3d4",
		DurationDays:   3,
		TourOperatorID: store.operators[0].ID,
		IsActive:       true,
	}
	store.tours = append(store.tours, tour)

	date := &entity.TourDate{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		TourID:     tour.ID,
		StartDate:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	date.InitSeats(18, tour.DurationDays)
	store.dates = append(store.dates, date)

	resp, err := service.CancelTourDate(context.Background(), date.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, entity.TourDateStatusCancelled, store.dates[0].Status)
	assert.False(t, resp.IsAvailable)
}

func TestDeleteOperator(t *testing.T) {
	t.Run("operator with tours cannot be deleted", func(t *testing.T) {
		service, store := newTourFixture(t)

		tour := &entity.Tour{
			Base:           entity.Base{ID: uuid.New()},
			Slug:           "weekend-a1b2c3d4",
			TourOperatorID: store.operators[0].ID,
			IsActive:       true,
		}
		store.tours = append(store.tours, tour)

		err := service.DeleteOperator(context.Background(), store.operators[0].ID.String())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be deleted")
		assert.Len(t, store.operators, 1)
	})

	t.Run("operator without tours is removed", func(t *testing.T) {
		service, store := newTourFixture(t)

		err := service.DeleteOperator(context.Background(), store.operators[0].ID.String())
		require.NoError(t, err)
		assert.Empty(t, store.operators)
	})
}
