package dto

import (
	"balai/internal/domains/catalog/model"
	"balai/shared"
	gDto "balai/shared/dto"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	Name      string  `json:"name"       validate:"required,max=120"`
	Category  string  `json:"category"   validate:"required,max=64"`
	UnitPrice float64 `json:"unit_price" validate:"required,gt=0"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	return model.Service{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Category:  c.Category,
		UnitPrice: c.UnitPrice,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name      string  `db:"name"       json:"name"       validate:"omitempty,max=120"`
	Category  string  `db:"category"   json:"category"   validate:"omitempty,max=64"`
	UnitPrice float64 `db:"unit_price" json:"unit_price" validate:"omitempty,gt=0"`
	Active    *bool   `db:"active"     json:"active"     validate:"omitempty"`
}

type ServiceResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.UnitPrice = model.UnitPrice
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
