package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"balai/config"
	"balai/infras/otel/mocks"
	invoiceMocks "balai/internal/domains/invoice/mocks"
	"balai/internal/domains/invoice/model"
	"balai/internal/domains/invoice/model/dto"
	"balai/internal/domains/invoice/service"
	"balai/internal/events"
	eventsMocks "balai/internal/events/mocks"
	cacheMocks "balai/shared/cache/mocks"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	"balai/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type invoiceMockSet struct {
	repo      *invoiceMocks.MockInvoice
	publisher *eventsMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
}

func newInvoiceService(t *testing.T) (service.Invoice, invoiceMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := invoiceMockSet{
		repo:      invoiceMocks.NewMockInvoice(ctrl),
		publisher: eventsMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, set.publisher, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func TestInvoiceService_RecordPayment(t *testing.T) {
	unpaid := model.Invoice{
		ID:          "invoice-id",
		Number:      "INV-TEST000001",
		TotalAmount: 12900,
		PaidAmount:  0,
		Status:      model.StatusUnpaid,
	}

	recordPayment := func(t *testing.T, invoice model.Invoice, amount float64) (map[string]any, dto.PaymentResponse, error) {
		t.Helper()

		svc, set := newInvoiceService(t)

		var updatedFields map[string]any

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(invoice, nil)

		set.repo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})

		set.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), invoice.ID).
			Return(invoice, nil)

		set.repo.EXPECT().
			InsertPaymentTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				updatedFields = fields

				return nil
			})

		set.publisher.EXPECT().
			Publish(gomock.Any(), events.TypePaymentRecorded, gomock.Any())

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		req := dto.RecordPaymentRequest{Amount: amount, Method: model.MethodCash}

		res, err := svc.RecordPayment(ctx, req, invoice.ID)

		return updatedFields, res, err
	}

	t.Run("partial payment", func(t *testing.T) {
		fields, res, err := recordPayment(t, unpaid, 5000)

		require.NoError(t, err)
		assert.Equal(t, 5000.0, res.Amount)
		assert.Equal(t, 5000.0, fields[model.FieldPaidAmount])
		assert.Equal(t, model.StatusPartial, fields[model.FieldStatus])
	})

	t.Run("payment settles the invoice", func(t *testing.T) {
		partial := unpaid
		partial.PaidAmount = 5000
		partial.Status = model.StatusPartial

		fields, _, err := recordPayment(t, partial, 7900)

		require.NoError(t, err)
		assert.Equal(t, 12900.0, fields[model.FieldPaidAmount])
		assert.Equal(t, model.StatusPaid, fields[model.FieldStatus])
	})

	t.Run("payment exceeds the balance", func(t *testing.T) {
		svc, set := newInvoiceService(t)

		partial := unpaid
		partial.PaidAmount = 5000

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(partial, nil)

		set.repo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})

		set.repo.EXPECT().
			GetForUpdateTx(gomock.Any(), gomock.Any(), "invoice-id").
			Return(partial, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		req := dto.RecordPaymentRequest{Amount: 8000, Method: model.MethodCash}

		_, err := svc.RecordPayment(ctx, req, "invoice-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("invoice not found", func(t *testing.T) {
		svc, set := newInvoiceService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Invoice{}, nil)

		req := dto.RecordPaymentRequest{Amount: 100, Method: model.MethodCash}

		_, err := svc.RecordPayment(context.Background(), req, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("transaction error", func(t *testing.T) {
		svc, set := newInvoiceService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(unpaid, nil)

		set.repo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		req := dto.RecordPaymentRequest{Amount: 100, Method: model.MethodCash}

		_, err := svc.RecordPayment(context.Background(), req, "invoice-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestInvoiceService_Get(t *testing.T) {
	t.Run("cache miss", func(t *testing.T) {
		svc, set := newInvoiceService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Invoice{ID: "invoice-id", TotalAmount: 1000, PaidAmount: 250}, nil)

		set.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "invoice-id")

		require.NoError(t, err)
		assert.Equal(t, "invoice-id", res.ID)
		assert.Equal(t, 750.0, res.Balance)
	})

	t.Run("not found", func(t *testing.T) {
		svc, set := newInvoiceService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Invoice{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestInvoiceService_GetPayments(t *testing.T) {
	svc, set := newInvoiceService(t)

	set.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Invoice{ID: "invoice-id"}, nil)

	set.repo.EXPECT().
		CountPayments(gomock.Any(), gomock.Any()).
		Return(2, nil)

	set.repo.EXPECT().
		GetPayments(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Payment{
			{ID: "first", Amount: 500},
			{ID: "second", Amount: 250},
		}, nil)

	res, err := svc.GetPayments(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, "invoice-id")

	require.NoError(t, err)
	assert.Len(t, res.Payments, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestInvoiceService_GetAllPayments(t *testing.T) {
	svc, set := newInvoiceService(t)

	set.repo.EXPECT().
		CountPayments(gomock.Any(), gomock.Any()).
		Return(3, nil)

	set.repo.EXPECT().
		GetPayments(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Payment{
			{ID: "first", InvoiceID: "invoice-a", Amount: 500, Method: model.MethodCash},
			{ID: "second", InvoiceID: "invoice-a", Amount: 250, Method: model.MethodGCash},
			{ID: "third", InvoiceID: "invoice-b", Amount: 1200, Method: model.MethodCash},
		}, nil)

	res, err := svc.GetAllPayments(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, res.Payments, 3)
	assert.Equal(t, 3, res.TotalData)
}
