package dto

import (
	"balai/internal/domains/guest/model"
	"balai/shared"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName string `json:"first_name" validate:"required,max=120"`
	LastName  string `json:"last_name"  validate:"required,max=120"`
	Email     string `json:"email"      validate:"omitempty,email,max=255"`
	Phone     string `json:"phone"      validate:"omitempty,max=32"`
	IDType    string `json:"id_type"    validate:"required,max=64"`
	IDNumber  string `json:"id_number"  validate:"required,max=64"`
	Address   string `json:"address"    validate:"omitempty"`
	Notes     string `json:"notes"      validate:"omitempty"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:        uuid.NewString(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		IDType:    c.IDType,
		IDNumber:  c.IDNumber,
		Address:   c.Address,
		Notes:     c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName string `db:"first_name" json:"first_name" validate:"omitempty,max=120"`
	LastName  string `db:"last_name"  json:"last_name"  validate:"omitempty,max=120"`
	Email     string `db:"email"      json:"email"      validate:"omitempty,email,max=255"`
	Phone     string `db:"phone"      json:"phone"      validate:"omitempty,max=32"`
	IDType    string `db:"id_type"    json:"id_type"    validate:"omitempty,max=64"`
	IDNumber  string `db:"id_number"  json:"id_number"  validate:"omitempty,max=64"`
	Address   string `db:"address"    json:"address"    validate:"omitempty"`
	Notes     string `db:"notes"      json:"notes"      validate:"omitempty"`
}

type GuestResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	IDType      string `json:"id_type"`
	IDNumber    string `json:"id_number"`
	Address     string `json:"address"`
	Notes       string `json:"notes"`
	DocumentURL string `json:"document_url"`
	LastStay    string `json:"last_stay_date,omitempty"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.IDType = model.IDType
	r.IDNumber = model.IDNumber
	r.Address = model.Address
	r.Notes = model.Notes
	r.DocumentURL = model.DocumentURL

	if model.LastStay != nil {
		r.LastStay = model.LastStay.Format(constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

type UploadDocumentResponse struct {
	DocumentURL string `json:"document_url"`
}
