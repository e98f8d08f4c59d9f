package model

import (
	"balai/shared/model"
)

const (
	TableName  = "services"
	EntityName = "service"

	FieldID        = "id"
	FieldName      = "name"
	FieldCategory  = "category"
	FieldUnitPrice = "unit_price"
	FieldActive    = "active"
)

// Service is a billable extra a guest can consume during a stay, such
// as room service, laundry, or an airport transfer.
type Service struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Category  string  `db:"category"`
	UnitPrice float64 `db:"unit_price"`
	Active    bool    `db:"active"`
	model.Metadata
}
