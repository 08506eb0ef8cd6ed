package dto

import (
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"nest/internal/domains/gallery/model"
	"nest/shared"
	gDto "nest/shared/dto"
	gModel "nest/shared/model"
	"nest/shared/timezone"
)

type CreateGalleryRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	Description string   `json:"description"`
	Images      []string `json:"images" validate:"required,dive,url"`
}

func (c *CreateGalleryRequest) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
}

func (c *CreateGalleryRequest) ToModel() model.Gallery {
	return model.Gallery{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Images:      pq.StringArray(c.Images),
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateGalleryRequest struct {
	Title       string         `db:"title"       json:"title"       validate:"omitempty,min=3,max=100"`
	Description string         `db:"description" json:"description" validate:"omitempty"`
	Images      pq.StringArray `db:"images"      json:"images"      validate:"omitempty,dive,url"`
}

func (u *UpdateGalleryRequest) Normalize() {
	u.Title = strings.TrimSpace(u.Title)
	u.Description = strings.TrimSpace(u.Description)
}

type GalleryResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	gDto.Metadata
}

func (r *GalleryResponse) FromModel(model model.Gallery) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Images = model.Images
	r.Metadata.FromModel(model.Metadata)
}

type GetGalleriesResponse struct {
	Galleries []GalleryResponse `json:"galleries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetGalleriesResponse) FromModels(models []model.Gallery, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Galleries = make([]GalleryResponse, len(models))
	for i, m := range models {
		r.Galleries[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type DeleteImagesRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}
