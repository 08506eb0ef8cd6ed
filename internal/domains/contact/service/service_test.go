package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nest/config"
	"nest/infras/otel/mocks"
	contactMocks "nest/internal/domains/contact/mocks"
	"nest/internal/domains/contact/model"
	"nest/internal/domains/contact/model/dto"
	"nest/internal/domains/contact/service"
	cacheMocks "nest/shared/cache/mocks"
	"nest/shared/failure"
)

func newContactService(t *testing.T) (service.Contact, *contactMocks.MockContact, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestContactService_Create(t *testing.T) {
	t.Run("successful submission", func(t *testing.T) {
		svc, mockRepo, mockCache := newContactService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Create(context.Background(), dto.CreateContactRequest{
			Name:    "Jane Roe",
			Email:   "jane.roe@example.com",
			Message: "Is the show unit open this weekend?",
		})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _ := newContactService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Create(context.Background(), dto.CreateContactRequest{
			Name:    "Jane Roe",
			Email:   "jane.roe@example.com",
			Message: "Hello",
		})

		assert.Error(t, err)
	})
}

func TestContactService_MarkReplied(t *testing.T) {
	t.Run("marks the contact replied", func(t *testing.T) {
		svc, mockRepo, mockCache := newContactService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, true, fields[model.FieldReplied])

				return nil
			})

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.MarkReplied(context.Background(), "contact-id")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("contact not found", func(t *testing.T) {
		svc, mockRepo, _ := newContactService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.MarkReplied(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetStatus(err))
	})
}
