package model

import (
	"balai/shared/model"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldBaseRate    = "base_rate"
	FieldCapacity    = "capacity"
	FieldAmenities   = "amenities"
)

type RoomType struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	BaseRate    float64 `db:"base_rate"`
	Capacity    int     `db:"capacity"`
	Amenities   string  `db:"amenities"`
	model.Metadata
}
