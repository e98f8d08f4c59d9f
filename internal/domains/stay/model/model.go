package model

import (
	"time"

	"balai/shared/model"
)

const (
	TableName  = "stays"
	EntityName = "stay"

	FieldID               = "id"
	FieldReservationID    = "reservation_id"
	FieldGuestID          = "guest_id"
	FieldRoomID           = "room_id"
	FieldRoomRate         = "room_rate"
	FieldStatus           = "status"
	FieldCheckinAt        = "checkin_at"
	FieldExpectedCheckout = "expected_checkout"
	FieldCheckoutAt       = "checkout_at"
	FieldNotes            = "notes"
)

const (
	ServicesTableName  = "stay_services"
	ServicesEntityName = "stay_service"

	FieldStayID    = "stay_id"
	FieldServiceID = "service_id"
	FieldQuantity  = "quantity"
	FieldUnitPrice = "unit_price"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Stay is one guest occupying one room. A multi-room reservation checks
// in as one stay per room.
type Stay struct {
	ID               string     `db:"id"`
	ReservationID    *string    `db:"reservation_id"`
	GuestID          string     `db:"guest_id"`
	RoomID           string     `db:"room_id"`
	RoomRate         float64    `db:"room_rate"`
	Status           string     `db:"status"`
	CheckinAt        time.Time  `db:"checkin_at"`
	ExpectedCheckout *time.Time `db:"expected_checkout"`
	CheckoutAt       *time.Time `db:"checkout_at"`
	Notes            string     `db:"notes"`
	model.Metadata
}

// StayService is a billable extra posted to a stay. The unit price is a
// snapshot taken when the charge is posted.
type StayService struct {
	ID        string  `db:"id"`
	StayID    string  `db:"stay_id"`
	ServiceID string  `db:"service_id"`
	Quantity  int     `db:"quantity"`
	UnitPrice float64 `db:"unit_price"`
	model.Metadata
}
