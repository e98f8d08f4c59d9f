package dto

import (
	"balai/internal/domains/roomtype/model"
	"balai/shared"
	gDto "balai/shared/dto"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	Name        string  `json:"name"        validate:"required,max=120"`
	Description string  `json:"description" validate:"omitempty"`
	BaseRate    float64 `json:"base_rate"   validate:"required,gt=0"`
	Capacity    int     `json:"capacity"    validate:"required,gt=0"`
	Amenities   string  `json:"amenities"   validate:"omitempty"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		BaseRate:    c.BaseRate,
		Capacity:    c.Capacity,
		Amenities:   c.Amenities,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"omitempty,max=120"`
	Description string  `db:"description" json:"description" validate:"omitempty"`
	BaseRate    float64 `db:"base_rate"   json:"base_rate"   validate:"omitempty,gt=0"`
	Capacity    int     `db:"capacity"    json:"capacity"    validate:"omitempty,gt=0"`
	Amenities   string  `db:"amenities"   json:"amenities"   validate:"omitempty"`
}

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BaseRate    float64 `json:"base_rate"`
	Capacity    int     `json:"capacity"`
	Amenities   string  `json:"amenities"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.BaseRate = model.BaseRate
	r.Capacity = model.Capacity
	r.Amenities = model.Amenities
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
