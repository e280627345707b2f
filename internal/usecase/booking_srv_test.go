package usecase

import (
	"context"
	"errors"
	"sync"
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

func newBookingFixture(t *testing.T, seats int, price string) (BookingService, *fakeStore) {
	t.Helper()

	tour := &entity.Tour{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Title:        "Weekend in the Mountains",
		Slug:         "weekend-in-the-mountains-a1b2c3d4",
		PriceBase:    decimal.RequireFromString(price),
		DurationDays: 3,
		TourType:     entity.TourTypeBusGroup,
		IsActive:     true,
	}

	date := &entity.TourDate{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		TourID:     tour.ID,
		StartDate:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	date.InitSeats(seats, tour.DurationDays)

	store := &fakeStore{
		tours: []*entity.Tour{tour},
		dates: []*entity.TourDate{date},
	}

	return NewBookingService(&fakeDB{store: store}, newFakeRepository(store), zap.NewNop()), store
}

func validBookingRequest(store *fakeStore, people int) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		TourDateID:  store.dates[0].ID.String(),
		ClientName:  "Anna Petrova",
		ClientPhone: "8 (999) 123-45-67",
		ClientEmail: "anna@example.com",
		PeopleCount: people,
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("reserves seats and fixes the total price", func(t *testing.T) {
		service, store := newBookingFixture(t, 10, "15000.50")

		resp, err := service.CreateBooking(context.Background(), validBookingRequest(store, 3))
		require.NoError(t, err)

		assert.Equal(t, "45001.50", resp.TotalPrice)
		assert.Equal(t, "new", resp.Status)
		assert.Equal(t, "+79991234567", resp.ClientPhone)
		assert.Equal(t, 7, store.dates[0].AvailableSeats)
		assert.Equal(t, entity.TourDateStatusAvailable, store.dates[0].Status)
		require.Len(t, store.bookings, 1)
		assert.Equal(t, entity.BookingSourceWebsite, store.bookings[0].Source)
	})

	t.Run("last seats flip the departure to full", func(t *testing.T) {
		service, store := newBookingFixture(t, 2, "9000.00")

		_, err := service.CreateBooking(context.Background(), validBookingRequest(store, 2))
		require.NoError(t, err)

		assert.Equal(t, 0, store.dates[0].AvailableSeats)
		assert.Equal(t, entity.TourDateStatusFull, store.dates[0].Status)
	})

	t.Run("rejects when not enough seats", func(t *testing.T) {
		service, store := newBookingFixture(t, 2, "9000.00")

		_, err := service.CreateBooking(context.Background(), validBookingRequest(store, 3))
		require.Error(t, err)

		var fieldErr *utils.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "people_count", fieldErr.Field)
		// nothing was written
		assert.Equal(t, 2, store.dates[0].AvailableSeats)
		assert.Empty(t, store.bookings)
	})

	t.Run("rejects a cancelled departure", func(t *testing.T) {
		service, store := newBookingFixture(t, 10, "9000.00")
		store.dates[0].Cancel()

		_, err := service.CreateBooking(context.Background(), validBookingRequest(store, 1))
		require.Error(t, err)

		var fieldErr *utils.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "tour_date", fieldErr.Field)
	})

	t.Run("unknown departure is not found", func(t *testing.T) {
		service, store := newBookingFixture(t, 10, "9000.00")

		req := validBookingRequest(store, 1)
		req.TourDateID = uuid.New().String()

		_, err := service.CreateBooking(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("invalid phone is rejected before any write", func(t *testing.T) {
		service, store := newBookingFixture(t, 10, "9000.00")

		req := validBookingRequest(store, 1)
		req.ClientPhone = "12345"

		_, err := service.CreateBooking(context.Background(), req)
		require.Error(t, err)

		var fieldErr *utils.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "client_phone", fieldErr.Field)
		assert.Empty(t, store.bookings)
	})
}

// Two concurrent requests race for the last seat; the row lock must let
// exactly one of them through.
func TestCreateBookingConcurrent(t *testing.T) {
	service, store := newBookingFixture(t, 1, "9000.00")
	tourDateID := store.dates[0].ID.String()

	var wg sync.WaitGroup
	errs := make(chan error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CreateBooking(context.Background(), &request.CreateBookingRequest{
				TourDateID:  tourDateID,
				ClientName:  "Anna Petrova",
				ClientPhone: "+79991234567",
				ClientEmail: "anna@example.com",
				PeopleCount: 1,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, failed int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			failed++
			var fieldErr *utils.FieldError
			assert.True(t, errors.As(err, &fieldErr))
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 0, store.dates[0].AvailableSeats)
	assert.Equal(t, entity.TourDateStatusFull, store.dates[0].Status)
	assert.Len(t, store.bookings, 1)
}

func TestUpdateBookingStatus(t *testing.T) {
	service, store := newBookingFixture(t, 10, "9000.00")

	_, err := service.CreateBooking(context.Background(), validBookingRequest(store, 4))
	require.NoError(t, err)
	require.Len(t, store.bookings, 1)

	bookingID := store.bookings[0].ID.String()
	err = service.UpdateBookingStatus(context.Background(), bookingID,
		&request.UpdateBookingStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusCancelled, store.bookings[0].Status)
	// cancelling a booking does not return its seats
	assert.Equal(t, 6, store.dates[0].AvailableSeats)
}
