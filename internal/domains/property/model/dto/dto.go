package dto

import (
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"nest/internal/domains/property/model"
	"nest/shared"
	gDto "nest/shared/dto"
	gModel "nest/shared/model"
	"nest/shared/timezone"
)

type CreatePropertyRequest struct {
	Title       string   `json:"title"       validate:"required,min=3,max=150"`
	Description string   `json:"description"`
	Price       float64  `json:"price"       validate:"omitempty,gte=0"`
	Location    string   `json:"location"    validate:"required"`
	Type        string   `json:"type"        validate:"omitempty,oneof=House Apartment Land Commercial"`
	Status      string   `json:"status"      validate:"omitempty,oneof='For Sale' 'For Rent' Sold"`
	Bedrooms    int      `json:"bedrooms"    validate:"omitempty,gte=0"`
	Bathrooms   int      `json:"bathrooms"   validate:"omitempty,gte=0"`
	Area        float64  `json:"area"        validate:"omitempty,gte=0"`
	Images      []string `json:"images"      validate:"omitempty,dive,url"`
	Featured    bool     `json:"featured"`
}

func (c *CreatePropertyRequest) Normalize() {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	c.Location = strings.TrimSpace(c.Location)
}

func (c *CreatePropertyRequest) ToModel() model.Property {
	status := c.Status
	if status == "" {
		status = model.StatusForSale
	}

	return model.Property{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		Location:    c.Location,
		Type:        c.Type,
		Status:      status,
		Bedrooms:    c.Bedrooms,
		Bathrooms:   c.Bathrooms,
		Area:        c.Area,
		Images:      pq.StringArray(c.Images),
		Featured:    c.Featured,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdatePropertyRequest struct {
	Title       string         `db:"title"       json:"title"       validate:"omitempty,min=3,max=150"`
	Description string         `db:"description" json:"description" validate:"omitempty"`
	Price       *float64       `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Location    string         `db:"location"    json:"location"    validate:"omitempty"`
	Type        string         `db:"type"        json:"type"        validate:"omitempty,oneof=House Apartment Land Commercial"`
	Status      string         `db:"status"      json:"status"      validate:"omitempty,oneof='For Sale' 'For Rent' Sold"`
	Bedrooms    *int           `db:"bedrooms"    json:"bedrooms"    validate:"omitempty,gte=0"`
	Bathrooms   *int           `db:"bathrooms"   json:"bathrooms"   validate:"omitempty,gte=0"`
	Area        *float64       `db:"area"        json:"area"        validate:"omitempty,gte=0"`
	Images      pq.StringArray `db:"images"      json:"images"      validate:"omitempty,dive,url"`
	Featured    *bool          `db:"featured"    json:"featured"    validate:"omitempty"`
}

func (u *UpdatePropertyRequest) Normalize() {
	u.Title = strings.TrimSpace(u.Title)
	u.Description = strings.TrimSpace(u.Description)
	u.Location = strings.TrimSpace(u.Location)
}

type PropertyResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Area        float64  `json:"area"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Price = model.Price
	r.Location = model.Location
	r.Type = model.Type
	r.Status = model.Status
	r.Bedrooms = model.Bedrooms
	r.Bathrooms = model.Bathrooms
	r.Area = model.Area
	r.Images = model.Images
	r.Featured = model.Featured
	r.Metadata.FromModel(model.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, m := range models {
		r.Properties[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg"`
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
