package dto

import (
	"balai/internal/domains/room/model"
	"balai/shared"
	gDto "balai/shared/dto"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number     string `json:"number"       validate:"required,max=16"`
	Floor      int    `json:"floor"        validate:"required,gt=0"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
	Notes      string `json:"notes"        validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	return model.Room{
		ID:         uuid.NewString(),
		Number:     c.Number,
		Floor:      c.Floor,
		RoomTypeID: c.RoomTypeID,
		Status:     model.StatusAvailable,
		Notes:      c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number     string `db:"number"       json:"number"       validate:"omitempty,max=16"`
	Floor      int    `db:"floor"        json:"floor"        validate:"omitempty,gt=0"`
	RoomTypeID string `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid"`
	Notes      string `db:"notes"        json:"notes"        validate:"omitempty"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available cleaning maintenance"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	Floor      int    `json:"floor"`
	RoomTypeID string `json:"room_type_id"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Floor = model.Floor
	r.RoomTypeID = model.RoomTypeID
	r.Status = model.Status
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
