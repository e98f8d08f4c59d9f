package model

import (
	"time"

	"balai/shared/model"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID             = "id"
	FieldNumber         = "number"
	FieldStayID         = "stay_id"
	FieldGuestID        = "guest_id"
	FieldRoomCharges    = "room_charges"
	FieldServiceCharges = "service_charges"
	FieldTotalAmount    = "total_amount"
	FieldPaidAmount     = "paid_amount"
	FieldStatus         = "status"
	FieldIssuedAt       = "issued_at"
)

const (
	PaymentsTableName  = "payments"
	PaymentsEntityName = "payment"

	FieldInvoiceID = "invoice_id"
	FieldAmount    = "amount"
	FieldMethod    = "method"
	FieldReference = "reference"
	FieldPaidAt    = "paid_at"
)

const (
	StatusUnpaid  = "unpaid"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

const (
	MethodCash       = "Cash"
	MethodCreditCard = "Credit Card"
	MethodGCash      = "GCash"
	MethodOther      = "Other"
)

type Invoice struct {
	ID             string    `db:"id"`
	Number         string    `db:"number"`
	StayID         string    `db:"stay_id"`
	GuestID        string    `db:"guest_id"`
	RoomCharges    float64   `db:"room_charges"`
	ServiceCharges float64   `db:"service_charges"`
	TotalAmount    float64   `db:"total_amount"`
	PaidAmount     float64   `db:"paid_amount"`
	Status         string    `db:"status"`
	IssuedAt       time.Time `db:"issued_at"`
	model.Metadata
}

// Balance is the amount still owed on the invoice.
func (i Invoice) Balance() float64 {
	return i.TotalAmount - i.PaidAmount
}

type Payment struct {
	ID        string    `db:"id"`
	InvoiceID string    `db:"invoice_id"`
	Amount    float64   `db:"amount"`
	Method    string    `db:"method"`
	Reference string    `db:"reference"`
	PaidAt    time.Time `db:"paid_at"`
	model.Metadata
}
