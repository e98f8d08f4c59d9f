package dto

import (
	"fmt"
	"time"

	"balai/internal/domains/stay/model"
	"balai/shared"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	ReservationID    string `json:"reservation_id"    validate:"omitempty,uuid"`
	GuestID          string `json:"guest_id"          validate:"required_without=ReservationID,omitempty,uuid"`
	RoomID           string `json:"room_id"           validate:"required,uuid"`
	CheckinAt        string `json:"checkin_at"        validate:"omitempty"`
	ExpectedCheckout string `json:"expected_checkout" validate:"omitempty"`
	Notes            string `json:"notes"             validate:"omitempty,max=500"`
}

// ToModel builds the stay record. Guest, rate and the reservation link
// are resolved by the service before calling this. The check-in time
// defaults to now when the request leaves it empty.
func (c *CheckInRequest) ToModel(guestID string, reservationID *string, roomRate float64, user string) (model.Stay, error) {
	checkinAt := timezone.Now()

	if c.CheckinAt != constant.Empty {
		parsed, err := time.Parse(constant.DateFormat, c.CheckinAt)
		if err != nil {
			return model.Stay{}, fmt.Errorf("failed to parse checkin time: %w", err)
		}

		checkinAt = parsed
	}

	var expectedCheckout *time.Time

	if c.ExpectedCheckout != constant.Empty {
		parsed, err := time.Parse(constant.DateFormat, c.ExpectedCheckout)
		if err != nil {
			return model.Stay{}, fmt.Errorf("failed to parse expected checkout time: %w", err)
		}

		expectedCheckout = &parsed
	}

	return model.Stay{
		ID:               uuid.NewString(),
		ReservationID:    reservationID,
		GuestID:          guestID,
		RoomID:           c.RoomID,
		RoomRate:         roomRate,
		Status:           model.StatusOpen,
		CheckinAt:        checkinAt,
		ExpectedCheckout: expectedCheckout,
		Notes:            c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type AddStayServiceRequest struct {
	ServiceID string `json:"service_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

func (a *AddStayServiceRequest) ToModel(stayID string, unitPrice float64, user string) model.StayService {
	return model.StayService{
		ID:        uuid.NewString(),
		StayID:    stayID,
		ServiceID: a.ServiceID,
		Quantity:  a.Quantity,
		UnitPrice: unitPrice,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type StayResponse struct {
	ID               string  `json:"id"`
	ReservationID    string  `json:"reservation_id,omitempty"`
	GuestID          string  `json:"guest_id"`
	RoomID           string  `json:"room_id"`
	RoomRate         float64 `json:"room_rate"`
	Status           string  `json:"status"`
	CheckinAt        string  `json:"checkin_at"`
	ExpectedCheckout string  `json:"expected_checkout,omitempty"`
	CheckoutAt       string  `json:"checkout_at,omitempty"`
	Notes            string  `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *StayResponse) FromModel(model model.Stay) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.RoomRate = model.RoomRate
	r.Status = model.Status
	r.CheckinAt = model.CheckinAt.Format(constant.DateFormat)
	r.Notes = model.Notes

	if model.ReservationID != nil {
		r.ReservationID = *model.ReservationID
	}

	if model.ExpectedCheckout != nil {
		r.ExpectedCheckout = model.ExpectedCheckout.Format(constant.DateFormat)
	}

	if model.CheckoutAt != nil {
		r.CheckoutAt = model.CheckoutAt.Format(constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetStaysResponse struct {
	Stays     []StayResponse `json:"stays"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetStaysResponse) FromModels(models []model.Stay, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Stays = make([]StayResponse, len(models))
	for i, mod := range models {
		r.Stays[i].FromModel(mod)
	}
}

type StayServiceResponse struct {
	ID        string  `json:"id"`
	StayID    string  `json:"stay_id"`
	ServiceID string  `json:"service_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
	gDto.Metadata
}

func (r *StayServiceResponse) FromModel(model model.StayService) {
	r.ID = model.ID
	r.StayID = model.StayID
	r.ServiceID = model.ServiceID
	r.Quantity = model.Quantity
	r.UnitPrice = model.UnitPrice
	r.Total = float64(model.Quantity) * model.UnitPrice
	r.Metadata.FromModel(model.Metadata)
}

type GetStayServicesResponse struct {
	Services []StayServiceResponse `json:"services"`
}

func (r *GetStayServicesResponse) FromModels(models []model.StayService) {
	r.Services = make([]StayServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}

type CheckOutRequest struct {
	CheckoutAt      string `json:"checkout_at"      validate:"omitempty"`
	GenerateInvoice *bool  `json:"generate_invoice" validate:"omitempty"`
}

// ResolveCheckoutAt parses the requested checkout time, defaulting to
// now when the request leaves it empty.
func (c *CheckOutRequest) ResolveCheckoutAt() (time.Time, error) {
	if c.CheckoutAt == constant.Empty {
		return timezone.Now(), nil
	}

	parsed, err := time.Parse(constant.DateFormat, c.CheckoutAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse checkout time: %w", err)
	}

	return parsed, nil
}

// ShouldGenerateInvoice defaults to true when the flag is omitted.
func (c *CheckOutRequest) ShouldGenerateInvoice() bool {
	return c.GenerateInvoice == nil || *c.GenerateInvoice
}

type CheckOutResponse struct {
	StayID         string  `json:"stay_id"`
	InvoiceID      string  `json:"invoice_id,omitempty"`
	InvoiceNumber  string  `json:"invoice_number,omitempty"`
	Nights         int     `json:"nights"`
	RoomCharges    float64 `json:"room_charges"`
	ServiceCharges float64 `json:"service_charges"`
	TotalAmount    float64 `json:"total_amount"`
	CheckoutAt     string  `json:"checkout_at"`
}

// CalculateNights rounds any started night up and bills at least one.
func CalculateNights(checkin, checkout time.Time) int {
	hours := checkout.Sub(checkin).Hours()

	nights := int(hours / constant.HoursPerNight)
	if float64(nights)*constant.HoursPerNight < hours {
		nights++
	}

	if nights < 1 {
		nights = 1
	}

	return nights
}
