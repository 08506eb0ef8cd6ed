package dto

import (
	"strings"

	"github.com/google/uuid"

	"nest/internal/domains/faq/model"
	"nest/shared"
	gDto "nest/shared/dto"
	gModel "nest/shared/model"
	"nest/shared/timezone"
)

type CreateFaqRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Position int    `json:"position" validate:"omitempty,gte=0"`
}

func (c *CreateFaqRequest) Normalize() {
	c.Question = strings.TrimSpace(c.Question)
	c.Answer = strings.TrimSpace(c.Answer)
}

func (c *CreateFaqRequest) ToModel() model.Faq {
	return model.Faq{
		ID:       uuid.NewString(),
		Question: c.Question,
		Answer:   c.Answer,
		Position: c.Position,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateFaqRequest struct {
	Question string `db:"question" json:"question" validate:"omitempty"`
	Answer   string `db:"answer" json:"answer" validate:"omitempty"`
	Position *int   `db:"position" json:"position" validate:"omitempty,gte=0"`
}

func (u *UpdateFaqRequest) Normalize() {
	u.Question = strings.TrimSpace(u.Question)
	u.Answer = strings.TrimSpace(u.Answer)
}

type FaqResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
	gDto.Metadata
}

func (r *FaqResponse) FromModel(model model.Faq) {
	r.ID = model.ID
	r.Question = model.Question
	r.Answer = model.Answer
	r.Position = model.Position
	r.Metadata.FromModel(model.Metadata)
}

type GetFaqsResponse struct {
	Faqs      []FaqResponse `json:"faqs"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetFaqsResponse) FromModels(models []model.Faq, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Faqs = make([]FaqResponse, len(models))
	for i, m := range models {
		r.Faqs[i].FromModel(m)
	}
}
