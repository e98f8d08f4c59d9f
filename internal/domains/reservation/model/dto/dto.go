package dto

import (
	"strings"
	"time"

	"balai/internal/domains/reservation/model"
	"balai/shared"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	GuestID      string   `json:"guest_id"      validate:"required,uuid"`
	RoomIDs      []string `json:"room_ids"      validate:"required,min=1,dive,uuid"`
	CheckinDate  string   `json:"checkin_date"  validate:"required"`
	CheckoutDate string   `json:"checkout_date" validate:"required"`
	Adults       int      `json:"adults"        validate:"required,gt=0"`
	Children     int      `json:"children"      validate:"omitempty,gte=0"`
	Notes        string   `json:"notes"         validate:"omitempty"`
}

func (c *CreateReservationRequest) ToModel(user string) (model.Reservation, error) {
	checkin, err := time.Parse(constant.DateOnlyFormat, c.CheckinDate)
	if err != nil {
		return model.Reservation{}, err
	}

	checkout, err := time.Parse(constant.DateOnlyFormat, c.CheckoutDate)
	if err != nil {
		return model.Reservation{}, err
	}

	id := uuid.NewString()

	return model.Reservation{
		ID:           id,
		Code:         GenerateCode(id),
		GuestID:      c.GuestID,
		Status:       model.StatusPending,
		CheckinDate:  checkin,
		CheckoutDate: checkout,
		Adults:       c.Adults,
		Children:     c.Children,
		Notes:        c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// GenerateCode derives the short human-facing confirmation code from the
// reservation's UUID.
func GenerateCode(id string) string {
	return "RSV-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}

type UpdateReservationRequest struct {
	CheckinDate  string `json:"checkin_date"  validate:"omitempty"`
	CheckoutDate string `json:"checkout_date" validate:"omitempty"`
	Adults       int    `db:"adults"   json:"adults"   validate:"omitempty,gt=0"`
	Children     int    `db:"children" json:"children" validate:"omitempty,gte=0"`
	Notes        string `db:"notes"    json:"notes"    validate:"omitempty"`
}

type ReservationResponse struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	GuestID      string   `json:"guest_id"`
	Status       string   `json:"status"`
	CheckinDate  string   `json:"checkin_date"`
	CheckoutDate string   `json:"checkout_date"`
	Adults       int      `json:"adults"`
	Children     int      `json:"children"`
	Notes        string   `json:"notes"`
	RoomIDs      []string `json:"room_ids,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Code = model.Code
	r.GuestID = model.GuestID
	r.Status = model.Status
	r.CheckinDate = model.CheckinDate.Format(constant.DateOnlyFormat)
	r.CheckoutDate = model.CheckoutDate.Format(constant.DateOnlyFormat)
	r.Adults = model.Adults
	r.Children = model.Children
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

func (r *ReservationResponse) WithRooms(rooms []model.ReservationRoom) {
	r.RoomIDs = make([]string, len(rooms))
	for i, room := range rooms {
		r.RoomIDs[i] = room.RoomID
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
