package dto

import (
	"strings"

	"github.com/google/uuid"

	"nest/internal/domains/testimonial/model"
	"nest/shared"
	gDto "nest/shared/dto"
	gModel "nest/shared/model"
	"nest/shared/timezone"
)

type CreateTestimonialRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Role    string `json:"role" validate:"omitempty,max=100"`
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Avatar  string `json:"avatar" validate:"omitempty,url"`
}

func (c *CreateTestimonialRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Role = strings.TrimSpace(c.Role)
	c.Content = strings.TrimSpace(c.Content)
}

func (c *CreateTestimonialRequest) ToModel() model.Testimonial {
	return model.Testimonial{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Role:    c.Role,
		Content: c.Content,
		Rating:  c.Rating,
		Avatar:  c.Avatar,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateTestimonialRequest struct {
	Name    string `db:"name" json:"name" validate:"omitempty,min=2,max=100"`
	Role    string `db:"role" json:"role" validate:"omitempty,max=100"`
	Content string `db:"content" json:"content" validate:"omitempty"`
	Rating  *int   `db:"rating" json:"rating" validate:"omitempty,gte=1,lte=5"`
	Avatar  string `db:"avatar" json:"avatar" validate:"omitempty,url"`
}

func (u *UpdateTestimonialRequest) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Role = strings.TrimSpace(u.Role)
	u.Content = strings.TrimSpace(u.Content)
}

type TestimonialResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Avatar  string `json:"avatar"`
	gDto.Metadata
}

func (r *TestimonialResponse) FromModel(model model.Testimonial) {
	r.ID = model.ID
	r.Name = model.Name
	r.Role = model.Role
	r.Content = model.Content
	r.Rating = model.Rating
	r.Avatar = model.Avatar
	r.Metadata.FromModel(model.Metadata)
}

type GetTestimonialsResponse struct {
	Testimonials []TestimonialResponse `json:"testimonials"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTestimonialsResponse) FromModels(models []model.Testimonial, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Testimonials = make([]TestimonialResponse, len(models))
	for i, m := range models {
		r.Testimonials[i].FromModel(m)
	}
}
