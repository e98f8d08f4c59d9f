package dto

import (
	"strings"

	"balai/internal/domains/invoice/model"
	"balai/shared"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/google/uuid"
)

// GenerateNumber derives the printed invoice number from the invoice's
// UUID.
func GenerateNumber(id string) string {
	return "INV-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:10])
}

type RecordPaymentRequest struct {
	Amount    float64 `json:"amount"    validate:"required,gt=0"`
	Method    string  `json:"method"    validate:"required,oneof=Cash 'Credit Card' GCash Other"`
	Reference string  `json:"reference" validate:"omitempty,max=64"`
}

func (p *RecordPaymentRequest) ToModel(invoiceID, user string) model.Payment {
	return model.Payment{
		ID:        uuid.NewString(),
		InvoiceID: invoiceID,
		Amount:    p.Amount,
		Method:    p.Method,
		Reference: p.Reference,
		PaidAt:    timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type InvoiceResponse struct {
	ID             string  `json:"id"`
	Number         string  `json:"number"`
	StayID         string  `json:"stay_id"`
	GuestID        string  `json:"guest_id"`
	RoomCharges    float64 `json:"room_charges"`
	ServiceCharges float64 `json:"service_charges"`
	TotalAmount    float64 `json:"total_amount"`
	PaidAmount     float64 `json:"paid_amount"`
	Balance        float64 `json:"balance"`
	Status         string  `json:"status"`
	IssuedAt       string  `json:"issued_at"`
	gDto.Metadata
}

func (r *InvoiceResponse) FromModel(model model.Invoice) {
	r.ID = model.ID
	r.Number = model.Number
	r.StayID = model.StayID
	r.GuestID = model.GuestID
	r.RoomCharges = model.RoomCharges
	r.ServiceCharges = model.ServiceCharges
	r.TotalAmount = model.TotalAmount
	r.PaidAmount = model.PaidAmount
	r.Balance = model.Balance()
	r.Status = model.Status
	r.IssuedAt = model.IssuedAt.Format(constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}

type PaymentResponse struct {
	ID        string  `json:"id"`
	InvoiceID string  `json:"invoice_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
	PaidAt    string  `json:"paid_at"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.InvoiceID = model.InvoiceID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Reference = model.Reference
	r.PaidAt = model.PaidAt.Format(constant.DateFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
