package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"balai/config"
	"balai/infras/otel/mocks"
	reportMocks "balai/internal/domains/report/mocks"
	"balai/internal/domains/report/model"
	"balai/internal/domains/report/service"
	cacheMocks "balai/shared/cache/mocks"
	"balai/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportMockSet struct {
	repo  *reportMocks.MockReport
	cache *cacheMocks.MockRedisCache
}

func newReportService(t *testing.T) (service.Report, reportMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := reportMockSet{
		repo:  reportMocks.NewMockReport(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func TestReportService_Dashboard(t *testing.T) {
	t.Run("cache miss", func(t *testing.T) {
		svc, set := newReportService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			GetDashboardStats(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dayStart, dayEnd time.Time) (model.DashboardStats, error) {
				assert.Equal(t, 24*time.Hour, dayEnd.Sub(dayStart))

				return model.DashboardStats{
					TotalRooms:         10,
					OccupiedRooms:      4,
					AvailableRooms:     5,
					TodaysCheckins:     2,
					TodaysCheckouts:    1,
					OpenStays:          4,
					RevenueToday:       8500,
					OutstandingBalance: 12900,
				}, nil
			})

		set.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Dashboard(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 10, res.TotalRooms)
		assert.Equal(t, 40.0, res.OccupancyRate)
		assert.Equal(t, 8500.0, res.RevenueToday)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, set := newReportService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			GetDashboardStats(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.DashboardStats{}, errors.New("database error"))

		_, err := svc.Dashboard(context.Background())

		assert.Error(t, err)
	})
}

func TestReportService_Occupancy(t *testing.T) {
	t.Run("explicit range", func(t *testing.T) {
		svc, set := newReportService(t)

		set.repo.EXPECT().
			GetOccupancyStats(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rangeStart, rangeEnd time.Time) (model.OccupancyStats, error) {
				// Inclusive 2025-01-01..2025-01-10 covers ten nights.
				assert.Equal(t, 10.0, rangeEnd.Sub(rangeStart).Hours()/24)

				return model.OccupancyStats{
					TotalRooms:         10,
					OccupiedRoomNights: 60,
					RoomRevenue:        180000,
				}, nil
			})

		res, err := svc.Occupancy(context.Background(), "2025-01-01", "2025-01-10")

		require.NoError(t, err)
		assert.Equal(t, "2025-01-01", res.From)
		assert.Equal(t, "2025-01-10", res.To)
		assert.Equal(t, 100.0, res.AvailableRoomNights)
		assert.Equal(t, 60.0, res.OccupancyRate)
		assert.Equal(t, 3000.0, res.ADR)
		assert.Equal(t, 1800.0, res.RevPAR)
	})

	t.Run("no rooms", func(t *testing.T) {
		svc, set := newReportService(t)

		set.repo.EXPECT().
			GetOccupancyStats(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.OccupancyStats{}, nil)

		res, err := svc.Occupancy(context.Background(), "2025-01-01", "2025-01-10")

		require.NoError(t, err)
		assert.Zero(t, res.OccupancyRate)
		assert.Zero(t, res.ADR)
		assert.Zero(t, res.RevPAR)
	})

	t.Run("default range", func(t *testing.T) {
		svc, set := newReportService(t)

		set.repo.EXPECT().
			GetOccupancyStats(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rangeStart, rangeEnd time.Time) (model.OccupancyStats, error) {
				assert.Equal(t, 30.0, rangeEnd.Sub(rangeStart).Hours()/24)

				return model.OccupancyStats{TotalRooms: 10}, nil
			})

		_, err := svc.Occupancy(context.Background(), "", "")

		require.NoError(t, err)
	})

	t.Run("invalid from date", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.Occupancy(context.Background(), "01-01-2025", "")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("to before from", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.Occupancy(context.Background(), "2025-01-10", "2025-01-01")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReportService_Revenue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, set := newReportService(t)

		set.repo.EXPECT().
			GetRevenueStats(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.RevenueStats{
				RoomCharges:    180000,
				ServiceCharges: 12500,
				TotalInvoiced:  192500,
				TotalCollected: 150000,
			}, nil)

		set.repo.EXPECT().
			GetPaymentMethodTotals(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.PaymentMethodTotal{
				{Method: "Cash", Total: 90000},
				{Method: "GCash", Total: 60000},
			}, nil)

		res, err := svc.Revenue(context.Background(), "2025-01-01", "2025-01-31")

		require.NoError(t, err)
		assert.Equal(t, "2025-01-01", res.From)
		assert.Equal(t, "2025-01-31", res.To)
		assert.Equal(t, 192500.0, res.TotalInvoiced)
		require.Len(t, res.ByMethod, 2)
		assert.Equal(t, 90000.0, res.ByMethod[0].Total)
	})

	t.Run("invalid to date", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.Revenue(context.Background(), "", "not-a-date")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReportService_Export(t *testing.T) {
	svc, set := newReportService(t)

	set.repo.EXPECT().
		GetOccupancyStats(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.OccupancyStats{TotalRooms: 10, OccupiedRoomNights: 60, RoomRevenue: 180000}, nil)

	set.repo.EXPECT().
		GetRevenueStats(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.RevenueStats{RoomCharges: 180000, TotalInvoiced: 192500}, nil)

	set.repo.EXPECT().
		GetPaymentMethodTotals(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.PaymentMethodTotal{{Method: "Cash", Total: 90000}}, nil)

	payload, fileName, err := svc.Export(context.Background(), "2025-01-01", "2025-01-10")

	require.NoError(t, err)
	assert.NotEmpty(t, payload)
	assert.Equal(t, "report_2025-01-01_2025-01-10.xlsx", fileName)
}
