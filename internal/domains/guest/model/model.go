package model

import (
	"time"

	"balai/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldIDType      = "id_type"
	FieldIDNumber    = "id_number"
	FieldAddress     = "address"
	FieldNotes       = "notes"
	FieldDocumentURL = "document_url"
	FieldLastStay    = "last_stay_date"
)

// Accepted identification document types.
var IDTypes = []string{
	"Philippine Passport",
	"Driver's License",
	"Philippine ID",
	"Passport",
	"UMID",
	"SSS ID",
	"PhilHealth ID",
}

func IsValidIDType(idType string) bool {
	for _, t := range IDTypes {
		if t == idType {
			return true
		}
	}

	return false
}

type Guest struct {
	ID          string     `db:"id"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	Email       string     `db:"email"`
	Phone       string     `db:"phone"`
	IDType      string     `db:"id_type"`
	IDNumber    string     `db:"id_number"`
	Address     string     `db:"address"`
	Notes       string     `db:"notes"`
	DocumentURL string     `db:"document_url"`
	LastStay    *time.Time `db:"last_stay_date"`
	model.Metadata
}
