package dto_test

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"nest/internal/domains/gallery/model"
	"nest/internal/domains/gallery/model/dto"
	gModel "nest/shared/model"
	"nest/shared/timezone"
)

func TestCreateGalleryRequest_Normalize(t *testing.T) {
	req := dto.CreateGalleryRequest{
		Title:       "  Show Unit Tour  ",
		Description: " Interior shots ",
	}

	req.Normalize()

	assert.Equal(t, "Show Unit Tour", req.Title)
	assert.Equal(t, "Interior shots", req.Description)
}

func TestCreateGalleryRequest_ToModel(t *testing.T) {
	req := dto.CreateGalleryRequest{
		Title:       "Show Unit Tour",
		Description: "Interior shots",
		Images:      []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
	}

	galleryModel := req.ToModel()

	assert.NotEmpty(t, galleryModel.ID)
	assert.Equal(t, req.Title, galleryModel.Title)
	assert.Equal(t, req.Description, galleryModel.Description)
	assert.Equal(t, pq.StringArray(req.Images), galleryModel.Images)
	assert.False(t, galleryModel.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, galleryModel.UpdatedAt.IsZero(), "expected UpdatedAt to be set")
}

func TestGalleryResponse_FromModel(t *testing.T) {
	now := timezone.Now()

	galleryModel := model.Gallery{
		ID:          "gallery-id",
		Title:       "Show Unit Tour",
		Description: "Interior shots",
		Images:      pq.StringArray{"https://cdn.example.com/a.jpg"},
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	var response dto.GalleryResponse
	response.FromModel(galleryModel)

	assert.Equal(t, galleryModel.ID, response.ID)
	assert.Equal(t, galleryModel.Title, response.Title)
	assert.Equal(t, galleryModel.Description, response.Description)
	assert.Equal(t, []string(galleryModel.Images), response.Images)
	assert.NotEmpty(t, response.CreatedAt)
	assert.NotEmpty(t, response.UpdatedAt)
}

func TestGetGalleriesResponse_FromModels(t *testing.T) {
	models := []model.Gallery{
		{ID: "gallery-1", Title: "First"},
		{ID: "gallery-2", Title: "Second"},
	}

	var response dto.GetGalleriesResponse
	response.FromModels(models, 25, 10)

	assert.Equal(t, 25, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Len(t, response.Galleries, 2)
	assert.Equal(t, "gallery-1", response.Galleries[0].ID)
	assert.Equal(t, "gallery-2", response.Galleries[1].ID)
}
