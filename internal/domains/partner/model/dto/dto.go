package dto

import (
	"strings"

	"github.com/google/uuid"

	"nest/internal/domains/partner/model"
	"nest/shared"
	gDto "nest/shared/dto"
	gModel "nest/shared/model"
	"nest/shared/timezone"
)

type CreatePartnerRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Logo    string `json:"logo" validate:"omitempty,url"`
	Website string `json:"website" validate:"omitempty,url"`
}

func (c *CreatePartnerRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
}

func (c *CreatePartnerRequest) ToModel() model.Partner {
	return model.Partner{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Logo:    c.Logo,
		Website: c.Website,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdatePartnerRequest struct {
	Name    string `db:"name" json:"name" validate:"omitempty,min=2,max=100"`
	Logo    string `db:"logo" json:"logo" validate:"omitempty,url"`
	Website string `db:"website" json:"website" validate:"omitempty,url"`
}

func (u *UpdatePartnerRequest) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
}

type PartnerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Website string `json:"website"`
	gDto.Metadata
}

func (r *PartnerResponse) FromModel(model model.Partner) {
	r.ID = model.ID
	r.Name = model.Name
	r.Logo = model.Logo
	r.Website = model.Website
	r.Metadata.FromModel(model.Metadata)
}

type GetPartnersResponse struct {
	Partners  []PartnerResponse `json:"partners"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPartnersResponse) FromModels(models []model.Partner, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Partners = make([]PartnerResponse, len(models))
	for i, m := range models {
		r.Partners[i].FromModel(m)
	}
}
