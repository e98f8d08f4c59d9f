package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"balai/config"
	"balai/infras/otel"
	"balai/internal/domains/invoice/model"
	"balai/internal/domains/invoice/model/dto"
	"balai/internal/domains/invoice/repository"
	"balai/internal/events"
	"balai/shared"
	"balai/shared/cache"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	"balai/shared/failure"
	"balai/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetInvoice    = "invoice:get"
	cacheGetAllInvoice = "invoice:gets"
	cacheCountInvoice  = "invoice:count"
)

type Invoice interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInvoicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InvoiceResponse, error)
	GetPayments(ctx context.Context, req gDto.QueryParams, invoiceID string) (dto.GetPaymentsResponse, error)
	GetAllPayments(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, invoiceID string) (dto.PaymentResponse, error)
}

type serviceImpl struct {
	repo      repository.Invoice
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Invoice, publisher events.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Invoice {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInvoicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoices")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoices")

		return res, fmt.Errorf("failed to get invoices: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoices to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountInvoice, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count invoices")

		return res, fmt.Errorf("failed to count invoices: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInvoice, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	invoice, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(invoice)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetPayments(ctx context.Context, req gDto.QueryParams, invoiceID string) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getByID(ctx, invoiceID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(invoiceID, model.FieldInvoiceID, model.PaymentsTableName)

	total, err := s.repo.CountPayments(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	payments, err := s.repo.GetPayments(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(payments, total, req.Limit)

	return res, nil
}

// GetAllPayments lists payments across all invoices.
func (s *serviceImpl) GetAllPayments(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllPayments")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.CountPayments(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	payments, err := s.repo.GetPayments(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(payments, total, req.Limit)

	return res, nil
}

// RecordPayment applies a payment to the invoice and recomputes its
// status. The invoice row is locked so the balance can never be
// overshot by concurrent payments.
func (s *serviceImpl) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, invoiceID string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getByID(ctx, invoiceID); err != nil {
		return res, err
	}

	payment := req.ToModel(invoiceID, user)

	var totalAmount float64

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		invoice, err := s.repo.GetForUpdateTx(ctx, tx, invoiceID)
		if err != nil {
			return fmt.Errorf("failed to lock invoice: %w", err)
		}

		if invoice.ID == constant.Empty {
			return failure.NotFound("invoice not found") // nolint:wrapcheck
		}

		if req.Amount > invoice.Balance() {
			return failure.Conflict("payment exceeds the remaining balance") // nolint:wrapcheck
		}

		if err := s.repo.InsertPaymentTx(ctx, tx, payment); err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}

		paidAmount := invoice.PaidAmount + req.Amount
		totalAmount = invoice.TotalAmount

		invoiceFields := map[string]any{
			model.FieldPaidAmount:    paidAmount,
			model.FieldStatus:        deriveStatus(paidAmount, invoice.TotalAmount),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		filter := shared.FilterByID(invoiceID, model.FieldID, model.TableName)
		if err := s.repo.UpdateTx(ctx, tx, invoiceFields, filter); err != nil {
			return fmt.Errorf("failed to update invoice: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record payment")

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		return res, fmt.Errorf("failed to record payment: %w", err)
	}

	res.FromModel(payment)

	s.invalidate(ctx, invoiceID)

	s.publisher.Publish(ctx, events.TypePaymentRecorded, map[string]any{
		"invoice_id":   invoiceID,
		"payment_id":   payment.ID,
		"amount":       payment.Amount,
		"method":       payment.Method,
		"total_amount": totalAmount,
	})

	return res, nil
}

// deriveStatus is the single source of truth for invoice status.
func deriveStatus(paid, total float64) string {
	switch {
	case paid >= total:
		return model.StatusPaid
	case paid > 0:
		return model.StatusPartial
	default:
		return model.StatusUnpaid
	}
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Invoice, error) {
	invoice, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return invoice, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return invoice, failure.NotFound("invoice not found") // nolint:wrapcheck
	}

	return invoice, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetInvoice, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete invoice from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllInvoice)
		shared.InvalidateCaches(c, s.cache, cacheCountInvoice)
	}()
}
