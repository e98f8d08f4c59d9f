package model

import (
	"time"

	"balai/shared/model"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID           = "id"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldRole         = "role"
	FieldStatus       = "status"
	FieldHireDate     = "hire_date"
	FieldPasswordHash = "password_hash"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Staff struct {
	ID           string    `db:"id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	Role         string    `db:"role"`
	Status       string    `db:"status"`
	HireDate     time.Time `db:"hire_date"`
	PasswordHash string    `db:"password_hash"`
	model.Metadata
}
