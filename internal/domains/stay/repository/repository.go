package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"balai/infras/otel"
	"balai/infras/postgres"
	"balai/internal/domains/stay/model"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	gRepo "balai/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Stay interface {
	Insert(ctx context.Context, model model.Stay) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Stay) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Stay, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Stay, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	InsertService(ctx context.Context, service model.StayService) error
	GetServices(ctx context.Context, stayID string) ([]model.StayService, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Stay]
	servicesRepo gRepo.Repository[model.StayService]
}

func New(db *postgres.Connection, otel otel.Otel) Stay {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Stay](model.EntityName, model.TableName, model.FieldID, db, otel),
		servicesRepo: gRepo.NewRepository[model.StayService](model.ServicesEntityName, model.ServicesTableName, model.FieldID, db, otel),
	}
}

func (repo *repositoryImpl) InsertService(ctx context.Context, service model.StayService) error {
	if err := repo.servicesRepo.Insert(ctx, service); err != nil {
		return fmt.Errorf("failed to insert stay service: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetServices(ctx context.Context, stayID string) ([]model.StayService, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStayID,
				Operator: gDto.FilterOperatorEq,
				Value:    stayID,
				Table:    model.ServicesTableName,
			},
		},
	}

	services, err := repo.servicesRepo.GetAll(ctx, gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get stay services: %w", err)
	}

	return services, nil
}
