package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nest/config"
	"nest/infras/otel/mocks"
	s3Mocks "nest/infras/s3/mocks"
	galleryMocks "nest/internal/domains/gallery/mocks"
	"nest/internal/domains/gallery/model"
	"nest/internal/domains/gallery/model/dto"
	"nest/internal/domains/gallery/service"
	cacheMocks "nest/shared/cache/mocks"
	gDto "nest/shared/dto"
	"nest/shared/failure"
	gModel "nest/shared/model"
	"nest/shared/timezone"
)

func newGalleryService(t *testing.T) (service.Gallery, *galleryMocks.MockGallery, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := galleryMocks.NewMockGallery(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3), mockRepo, mockCache, mockS3
}

func TestGalleryService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateGalleryRequest
		setupMock func(repo *galleryMocks.MockGallery, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateGalleryRequest{
				Title:       "Show Unit Tour",
				Description: "Interior shots",
				Images:      []string{"https://cdn.example.com/a.jpg"},
			},
			setupMock: func(repo *galleryMocks.MockGallery, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateGalleryRequest{
				Title:  "Show Unit Tour",
				Images: []string{"https://cdn.example.com/a.jpg"},
			},
			setupMock: func(repo *galleryMocks.MockGallery, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newGalleryService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Create(context.Background(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGalleryService_GetAll(t *testing.T) {
	galleries := []model.Gallery{
		{
			ID:          "gallery-id",
			Title:       "Show Unit Tour",
			Description: "Interior shots",
			Images:      pq.StringArray{"https://cdn.example.com/a.jpg"},
			Metadata: gModel.Metadata{
				CreatedAt: timezone.Now(),
				UpdatedAt: timezone.Now(),
			},
		},
	}

	params := gDto.QueryParams{Page: 1, Limit: 10}

	t.Run("cache miss hits repository", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newGalleryService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(galleries, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
		assert.Len(t, res.Galleries, 1)
		assert.Equal(t, "gallery-id", res.Galleries[0].ID)
	})

	t.Run("count error", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newGalleryService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("count error"))

		_, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})

		assert.Error(t, err)
	})
}

func TestGalleryService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newGalleryService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Gallery{ID: "gallery-id", Title: "Show Unit Tour"}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "gallery-id")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
		assert.Equal(t, "gallery-id", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newGalleryService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Gallery{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetStatus(err))
	})
}

func TestGalleryService_Update(t *testing.T) {
	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newGalleryService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Update(context.Background(), dto.UpdateGalleryRequest{Title: "Renamed"}, "gallery-id")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("gallery not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newGalleryService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateGalleryRequest{Title: "Renamed"}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetStatus(err))
	})
}

func TestGalleryService_Delete(t *testing.T) {
	t.Run("successful delete removes images", func(t *testing.T) {
		svc, mockRepo, mockCache, mockS3 := newGalleryService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Gallery{
				ID:     "gallery-id",
				Images: pq.StringArray{"https://cdn.example.com/a.jpg"},
			}, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockS3.EXPECT().
			GetObjectNameFromURL(gomock.Any(), gomock.Any()).
			Return("a.jpg").
			AnyTimes()

		mockS3.EXPECT().
			DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Delete(context.Background(), "gallery-id")

		time.Sleep(10 * time.Millisecond)

		assert.NoError(t, err)
	})

	t.Run("gallery not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newGalleryService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Gallery{}, nil)

		err := svc.Delete(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetStatus(err))
	})
}

func TestGalleryService_DeleteImagesFromS3(t *testing.T) {
	t.Run("all deletions succeed", func(t *testing.T) {
		svc, _, _, mockS3 := newGalleryService(t)

		mockS3.EXPECT().
			GetObjectNameFromURL(gomock.Any(), "https://cdn.example.com/a.jpg").
			Return("a.jpg")

		mockS3.EXPECT().
			DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), "a.jpg").
			Return(nil)

		err := svc.DeleteImagesFromS3(context.Background(), dto.DeleteImagesRequest{
			ImageURLs: []string{"https://cdn.example.com/a.jpg"},
		})

		assert.NoError(t, err)
	})

	t.Run("deletion failure is reported", func(t *testing.T) {
		svc, _, _, mockS3 := newGalleryService(t)

		mockS3.EXPECT().
			GetObjectNameFromURL(gomock.Any(), gomock.Any()).
			Return("a.jpg")

		mockS3.EXPECT().
			DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("s3 error"))

		err := svc.DeleteImagesFromS3(context.Background(), dto.DeleteImagesRequest{
			ImageURLs: []string{"https://cdn.example.com/a.jpg"},
		})

		assert.ErrorIs(t, err, service.ErrDeleteImagesFromS3)
	})
}
