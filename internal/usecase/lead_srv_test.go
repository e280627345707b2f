package usecase

import (
	"context"
	"errors"
	"testing"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/dto/request"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLeadFixture(t *testing.T) (LeadService, *fakeStore) {
	t.Helper()
	store := &fakeStore{}
	return NewLeadService(newFakeRepository(store), zap.NewNop()), store
}

func TestCreateLead(t *testing.T) {
	t.Run("normalizes the phone and starts new", func(t *testing.T) {
		service, store := newLeadFixture(t)

		resp, err := service.CreateLead(context.Background(), &request.CreateLeadRequest{
			Name:   "Anna Petrova",
			Phone:  "8 999 123 45 67",
			Source: "callback",
		})
		require.NoError(t, err)

		assert.Equal(t, "+79991234567", resp.Phone)
		assert.Equal(t, "new", resp.Status)
		require.Len(t, store.leads, 1)
		assert.Equal(t, entity.LeadSourceCallback, store.leads[0].Source)
	})

	t.Run("rejects a bad phone", func(t *testing.T) {
		service, store := newLeadFixture(t)

		_, err := service.CreateLead(context.Background(), &request.CreateLeadRequest{
			Name:   "Anna Petrova",
			Phone:  "12345",
			Source: "contact_form",
		})
		require.Error(t, err)

		var fieldErr *utils.FieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "phone", fieldErr.Field)
		assert.Empty(t, store.leads)
	})

	t.Run("rejects an unknown source", func(t *testing.T) {
		service, _ := newLeadFixture(t)

		_, err := service.CreateLead(context.Background(), &request.CreateLeadRequest{
			Name:   "Anna Petrova",
			Phone:  "+79991234567",
			Source: "carrier_pigeon",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestUpdateLeadStatus(t *testing.T) {
	service, store := newLeadFixture(t)

	_, err := service.CreateLead(context.Background(), &request.CreateLeadRequest{
		Name:   "Anna Petrova",
		Phone:  "+79991234567",
		Source: "chat_bot",
	})
	require.NoError(t, err)

	err = service.UpdateLeadStatus(context.Background(), store.leads[0].ID.String(),
		&request.UpdateLeadStatusRequest{Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusInProgress, store.leads[0].Status)

	t.Run("unknown lead errors", func(t *testing.T) {
		err := service.UpdateLeadStatus(context.Background(), uuid.New().String(),
			&request.UpdateLeadStatusRequest{Status: "closed"})
		require.Error(t, err)
	})
}
