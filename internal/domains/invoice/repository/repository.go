package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"balai/infras/otel"
	"balai/infras/postgres"
	"balai/internal/domains/invoice/model"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	"balai/shared/logger"
	gRepo "balai/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Invoice interface {
	Insert(ctx context.Context, model model.Invoice) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Invoice) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invoice, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Invoice, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Invoice, error)
	InsertPaymentTx(ctx context.Context, sqltx *sqlx.Tx, payment model.Payment) error
	GetPayments(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Payment, error)
	CountPayments(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Invoice]
	paymentsRepo gRepo.Repository[model.Payment]
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Invoice {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Invoice](model.EntityName, model.TableName, model.FieldID, db, otel),
		paymentsRepo: gRepo.NewRepository[model.Payment](model.PaymentsEntityName, model.PaymentsTableName, model.FieldID, db, otel),
		otel:         otel,
	}
}

// GetForUpdateTx locks the invoice row for the duration of the
// transaction so concurrent payments cannot overshoot the balance.
func (repo *repositoryImpl) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (invoice model.Invoice, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".invoice.GetForUpdateTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT * FROM invoices WHERE id = $1 FOR UPDATE`

	if err = sqltx.GetContext(ctx, &invoice, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Invoice{}, nil
		}

		logger.ErrorWithStack(err)

		return invoice, fmt.Errorf("failed to lock invoice: %w", err)
	}

	return invoice, nil
}

func (repo *repositoryImpl) InsertPaymentTx(ctx context.Context, sqltx *sqlx.Tx, payment model.Payment) error {
	if err := repo.paymentsRepo.InsertTx(ctx, sqltx, payment); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetPayments(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Payment, error) {
	payments, err := repo.paymentsRepo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return payments, nil
}

func (repo *repositoryImpl) CountPayments(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	count, err := repo.paymentsRepo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}

	return count, nil
}
