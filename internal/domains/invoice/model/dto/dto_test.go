package dto_test

import (
	"testing"

	"balai/internal/domains/invoice/model"
	"balai/internal/domains/invoice/model/dto"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestGenerateNumber(t *testing.T) {
	number := dto.GenerateNumber("3f1aa6a8-16a1-4f5c-a1c9-08a2f2f7a001")

	assert.Equal(t, "INV-3F1AA6A816", number)
}

func TestRecordPaymentRequest_ToModel(t *testing.T) {
	req := dto.RecordPaymentRequest{
		Amount:    1500,
		Method:    model.MethodGCash,
		Reference: "GC-20250112-001",
	}

	payment := req.ToModel("invoice-id", "test-user-id")

	assert.NotEmpty(t, payment.ID, "expected ID to be generated")
	assert.Equal(t, "invoice-id", payment.InvoiceID)
	assert.Equal(t, 1500.0, payment.Amount)
	assert.Equal(t, model.MethodGCash, payment.Method)
	assert.Equal(t, req.Reference, payment.Reference)
	assert.False(t, payment.PaidAt.IsZero(), "expected PaidAt to be set")
	assert.Equal(t, "test-user-id", payment.CreatedBy)
	assert.Equal(t, "test-user-id", payment.ModifiedBy)
}

func TestInvoiceResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	invoice := model.Invoice{
		ID:             "test-id",
		Number:         "INV-TEST000001",
		StayID:         "stay-id",
		GuestID:        "guest-id",
		RoomCharges:    12000,
		ServiceCharges: 900,
		TotalAmount:    12900,
		PaidAmount:     5000,
		Status:         model.StatusPartial,
		IssuedAt:       now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.InvoiceResponse
	response.FromModel(invoice)

	assert.Equal(t, invoice.ID, response.ID)
	assert.Equal(t, invoice.Number, response.Number)
	assert.Equal(t, 12900.0, response.TotalAmount)
	assert.Equal(t, 5000.0, response.PaidAmount)
	assert.Equal(t, 7900.0, response.Balance)
	assert.Equal(t, model.StatusPartial, response.Status)
	assert.NotEmpty(t, response.IssuedAt)
}

func TestInvoice_Balance(t *testing.T) {
	invoice := model.Invoice{TotalAmount: 1000, PaidAmount: 250}

	assert.Equal(t, 750.0, invoice.Balance())
}

func TestGetPaymentsResponse_FromModels(t *testing.T) {
	payments := []model.Payment{
		{ID: "first", Amount: 500, Method: model.MethodCash, PaidAt: timezone.Now()},
		{ID: "second", Amount: 250, Method: model.MethodCreditCard, PaidAt: timezone.Now()},
	}

	var response dto.GetPaymentsResponse
	response.FromModels(payments, 7, 2)

	assert.Len(t, response.Payments, 2)
	assert.Equal(t, 7, response.TotalData)
	assert.Equal(t, 4, response.TotalPage)
	assert.Equal(t, model.MethodCash, response.Payments[0].Method)
}
