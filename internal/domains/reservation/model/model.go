package model

import (
	"time"

	"balai/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID           = "id"
	FieldCode         = "code"
	FieldGuestID      = "guest_id"
	FieldStatus       = "status"
	FieldCheckinDate  = "checkin_date"
	FieldCheckoutDate = "checkout_date"
	FieldAdults       = "adults"
	FieldChildren     = "children"
	FieldNotes        = "notes"
)

const (
	RoomsTableName = "reservation_rooms"

	FieldReservationID = "reservation_id"
	FieldRoomID        = "room_id"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCheckedIn = "checked-in"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

type Reservation struct {
	ID           string    `db:"id"`
	Code         string    `db:"code"`
	GuestID      string    `db:"guest_id"`
	Status       string    `db:"status"`
	CheckinDate  time.Time `db:"checkin_date"`
	CheckoutDate time.Time `db:"checkout_date"`
	Adults       int       `db:"adults"`
	Children     int       `db:"children"`
	Notes        string    `db:"notes"`
	model.Metadata
}

type ReservationRoom struct {
	ReservationID string `db:"reservation_id"`
	RoomID        string `db:"room_id"`
}
