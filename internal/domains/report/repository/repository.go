package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"balai/infras/otel"
	"balai/infras/postgres"
	"balai/internal/domains/report/model"
	"balai/shared/constant"
	"balai/shared/logger"
)

type Report interface {
	GetDashboardStats(ctx context.Context, dayStart, dayEnd time.Time) (model.DashboardStats, error)
	GetOccupancyStats(ctx context.Context, from, to time.Time) (model.OccupancyStats, error)
	GetRevenueStats(ctx context.Context, from, to time.Time) (model.RevenueStats, error)
	GetPaymentMethodTotals(ctx context.Context, from, to time.Time) ([]model.PaymentMethodTotal, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetDashboardStats(ctx context.Context, dayStart, dayEnd time.Time) (stats model.DashboardStats, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetDashboardStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT
			(SELECT COUNT(*) FROM rooms) AS total_rooms,
			(SELECT COUNT(*) FROM rooms WHERE status = 'occupied') AS occupied_rooms,
			(SELECT COUNT(*) FROM rooms WHERE status = 'available') AS available_rooms,
			(SELECT COUNT(*) FROM stays WHERE checkin_at >= $1 AND checkin_at < $2) AS todays_checkins,
			(SELECT COUNT(*) FROM stays WHERE checkout_at >= $1 AND checkout_at < $2) AS todays_checkouts,
			(SELECT COUNT(*) FROM stays WHERE status = 'open') AS open_stays,
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE paid_at >= $1 AND paid_at < $2) AS revenue_today,
			(SELECT COALESCE(SUM(total_amount - paid_amount), 0) FROM invoices WHERE status <> 'paid') AS outstanding_balance`

	if err = repo.db.Read.GetContext(ctx, &stats, query, dayStart, dayEnd); err != nil {
		logger.ErrorWithStack(err)

		return stats, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return stats, nil
}

// GetOccupancyStats sums billed room nights over the stays that closed
// within the range, using the same rounding as checkout billing.
func (repo *repositoryImpl) GetOccupancyStats(ctx context.Context, from, to time.Time) (stats model.OccupancyStats, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetOccupancyStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT
			(SELECT COUNT(*) FROM rooms) AS total_rooms,
			COALESCE(SUM(GREATEST(1, CEIL(EXTRACT(EPOCH FROM (s.checkout_at - s.checkin_at)) / 86400.0))), 0) AS occupied_room_nights,
			COALESCE(SUM(GREATEST(1, CEIL(EXTRACT(EPOCH FROM (s.checkout_at - s.checkin_at)) / 86400.0)) * s.room_rate), 0) AS room_revenue
		FROM stays s
		WHERE s.status = 'closed'
		  AND s.checkout_at >= $1
		  AND s.checkout_at < $2`

	if err = repo.db.Read.GetContext(ctx, &stats, query, from, to); err != nil {
		logger.ErrorWithStack(err)

		return stats, fmt.Errorf("failed to get occupancy stats: %w", err)
	}

	return stats, nil
}

func (repo *repositoryImpl) GetRevenueStats(ctx context.Context, from, to time.Time) (stats model.RevenueStats, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetRevenueStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT
			(SELECT COALESCE(SUM(room_charges), 0) FROM invoices WHERE issued_at >= $1 AND issued_at < $2) AS room_charges,
			(SELECT COALESCE(SUM(service_charges), 0) FROM invoices WHERE issued_at >= $1 AND issued_at < $2) AS service_charges,
			(SELECT COALESCE(SUM(total_amount), 0) FROM invoices WHERE issued_at >= $1 AND issued_at < $2) AS total_invoiced,
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE paid_at >= $1 AND paid_at < $2) AS total_collected`

	if err = repo.db.Read.GetContext(ctx, &stats, query, from, to); err != nil {
		logger.ErrorWithStack(err)

		return stats, fmt.Errorf("failed to get revenue stats: %w", err)
	}

	return stats, nil
}

func (repo *repositoryImpl) GetPaymentMethodTotals(ctx context.Context, from, to time.Time) (totals []model.PaymentMethodTotal, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".report.GetPaymentMethodTotals")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `
		SELECT method, COALESCE(SUM(amount), 0) AS total
		FROM payments
		WHERE paid_at >= $1 AND paid_at < $2
		GROUP BY method
		ORDER BY total DESC`

	if err = repo.db.Read.SelectContext(ctx, &totals, query, from, to); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get payment method totals: %w", err)
	}

	return totals, nil
}
