package dto

import (
	"strings"

	"github.com/google/uuid"

	"nest/internal/domains/stat/model"
	"nest/shared"
	gDto "nest/shared/dto"
	gModel "nest/shared/model"
	"nest/shared/timezone"
)

type CreateStatRequest struct {
	Label    string `json:"label" validate:"required,max=100"`
	Value    string `json:"value" validate:"required,max=100"`
	Position int    `json:"position" validate:"omitempty,gte=0"`
}

func (c *CreateStatRequest) Normalize() {
	c.Label = strings.TrimSpace(c.Label)
	c.Value = strings.TrimSpace(c.Value)
}

func (c *CreateStatRequest) ToModel() model.Stat {
	return model.Stat{
		ID:       uuid.NewString(),
		Label:    c.Label,
		Value:    c.Value,
		Position: c.Position,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateStatRequest struct {
	Label    string `db:"label" json:"label" validate:"omitempty,max=100"`
	Value    string `db:"value" json:"value" validate:"omitempty,max=100"`
	Position *int   `db:"position" json:"position" validate:"omitempty,gte=0"`
}

func (u *UpdateStatRequest) Normalize() {
	u.Label = strings.TrimSpace(u.Label)
	u.Value = strings.TrimSpace(u.Value)
}

type StatResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Position int    `json:"position"`
	gDto.Metadata
}

func (r *StatResponse) FromModel(model model.Stat) {
	r.ID = model.ID
	r.Label = model.Label
	r.Value = model.Value
	r.Position = model.Position
	r.Metadata.FromModel(model.Metadata)
}

type GetStatsResponse struct {
	Stats     []StatResponse `json:"stats"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetStatsResponse) FromModels(models []model.Stat, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Stats = make([]StatResponse, len(models))
	for i, m := range models {
		r.Stats[i].FromModel(m)
	}
}
