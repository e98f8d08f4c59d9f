package model

import (
	"balai/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldNumber     = "number"
	FieldFloor      = "floor"
	FieldRoomTypeID = "room_type_id"
	FieldStatus     = "status"
	FieldNotes      = "notes"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusReserved    = "reserved"
	StatusCleaning    = "cleaning"
	StatusMaintenance = "maintenance"
)

type Room struct {
	ID         string `db:"id"`
	Number     string `db:"number"`
	Floor      int    `db:"floor"`
	RoomTypeID string `db:"room_type_id"`
	Status     string `db:"status"`
	Notes      string `db:"notes"`
	model.Metadata
}
