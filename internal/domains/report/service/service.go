package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"balai/config"
	"balai/infras/otel"
	"balai/internal/domains/report/model"
	"balai/internal/domains/report/model/dto"
	"balai/internal/domains/report/repository"
	"balai/shared"
	"balai/shared/cache"
	"balai/shared/constant"
	"balai/shared/failure"
	"balai/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	cacheDashboard = "report:dashboard"

	defaultRangeDays = 30
)

type Report interface {
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
	Occupancy(ctx context.Context, from, to string) (dto.OccupancyReportResponse, error)
	Revenue(ctx context.Context, from, to string) (dto.RevenueReportResponse, error)
	Export(ctx context.Context, from, to string) ([]byte, string, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	cacheKey := shared.BuildCacheKey(cacheDashboard, dayStart.Format(constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	stats, err := s.repo.GetDashboardStats(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard stats")

		return res, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	res.FromModel(stats)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Occupancy(ctx context.Context, from, to string) (res dto.OccupancyReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupancy")
	defer scope.End()
	defer scope.TraceIfError(err)

	rangeStart, rangeEnd, err := resolveRange(from, to)
	if err != nil {
		return res, err
	}

	stats, err := s.repo.GetOccupancyStats(ctx, rangeStart, rangeEnd)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy stats")

		return res, fmt.Errorf("failed to get occupancy stats: %w", err)
	}

	res = buildOccupancyReport(stats, rangeStart, rangeEnd)

	return res, nil
}

func (s *serviceImpl) Revenue(ctx context.Context, from, to string) (res dto.RevenueReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	rangeStart, rangeEnd, err := resolveRange(from, to)
	if err != nil {
		return res, err
	}

	stats, err := s.repo.GetRevenueStats(ctx, rangeStart, rangeEnd)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue stats")

		return res, fmt.Errorf("failed to get revenue stats: %w", err)
	}

	totals, err := s.repo.GetPaymentMethodTotals(ctx, rangeStart, rangeEnd)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment method totals")

		return res, fmt.Errorf("failed to get payment method totals: %w", err)
	}

	res = dto.RevenueReportResponse{
		From:           rangeStart.Format(constant.DateOnlyFormat),
		To:             rangeEnd.AddDate(0, 0, -1).Format(constant.DateOnlyFormat),
		RoomCharges:    stats.RoomCharges,
		ServiceCharges: stats.ServiceCharges,
		TotalInvoiced:  stats.TotalInvoiced,
		TotalCollected: stats.TotalCollected,
		ByMethod:       make([]dto.PaymentMethodTotalResponse, len(totals)),
	}

	for i, total := range totals {
		res.ByMethod[i] = dto.PaymentMethodTotalResponse{Method: total.Method, Total: total.Total}
	}

	return res, nil
}

// Export renders the occupancy and revenue reports of the range into a
// single XLSX workbook.
func (s *serviceImpl) Export(ctx context.Context, from, to string) (payload []byte, fileName string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	occupancy, err := s.Occupancy(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	revenue, err := s.Revenue(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("failed to close workbook")
		}
	}()

	occupancySheet := "Occupancy"
	if err = file.SetSheetName("Sheet1", occupancySheet); err != nil {
		return nil, "", fmt.Errorf("failed to rename sheet: %w", err)
	}

	occupancyRows := [][]any{
		{"Metric", "Value"},
		{"From", occupancy.From},
		{"To", occupancy.To},
		{"Total Rooms", occupancy.TotalRooms},
		{"Available Room Nights", occupancy.AvailableRoomNights},
		{"Occupied Room Nights", occupancy.OccupiedRoomNights},
		{"Occupancy Rate (%)", occupancy.OccupancyRate},
		{"Room Revenue", occupancy.RoomRevenue},
		{"ADR", occupancy.ADR},
		{"RevPAR", occupancy.RevPAR},
	}

	if err = writeSheet(file, occupancySheet, occupancyRows); err != nil {
		return nil, "", err
	}

	revenueSheet := "Revenue"
	if _, err = file.NewSheet(revenueSheet); err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}

	revenueRows := [][]any{
		{"Metric", "Value"},
		{"Room Charges", revenue.RoomCharges},
		{"Service Charges", revenue.ServiceCharges},
		{"Total Invoiced", revenue.TotalInvoiced},
		{"Total Collected", revenue.TotalCollected},
		{},
		{"Payment Method", "Collected"},
	}

	for _, total := range revenue.ByMethod {
		revenueRows = append(revenueRows, []any{total.Method, total.Total})
	}

	if err = writeSheet(file, revenueSheet, revenueRows); err != nil {
		return nil, "", err
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	fileName = fmt.Sprintf("report_%s_%s.xlsx", occupancy.From, occupancy.To)

	return buffer.Bytes(), fileName, nil
}

func writeSheet(file *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}

		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

func buildOccupancyReport(stats model.OccupancyStats, rangeStart, rangeEnd time.Time) dto.OccupancyReportResponse {
	days := rangeEnd.Sub(rangeStart).Hours() / constant.HoursPerNight
	availableRoomNights := float64(stats.TotalRooms) * days

	res := dto.OccupancyReportResponse{
		From:                rangeStart.Format(constant.DateOnlyFormat),
		To:                  rangeEnd.AddDate(0, 0, -1).Format(constant.DateOnlyFormat),
		TotalRooms:          stats.TotalRooms,
		AvailableRoomNights: availableRoomNights,
		OccupiedRoomNights:  stats.OccupiedRoomNights,
		RoomRevenue:         stats.RoomRevenue,
	}

	if availableRoomNights > 0 {
		res.OccupancyRate = stats.OccupiedRoomNights / availableRoomNights * 100
		res.RevPAR = stats.RoomRevenue / availableRoomNights
	}

	if stats.OccupiedRoomNights > 0 {
		res.ADR = stats.RoomRevenue / stats.OccupiedRoomNights
	}

	return res
}

// resolveRange turns the inclusive from/to date strings into a half-open
// time range, defaulting to the last thirty days.
func resolveRange(from, to string) (time.Time, time.Time, error) {
	now := timezone.Now()
	rangeEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	rangeStart := rangeEnd.AddDate(0, 0, -defaultRangeDays)

	if from != constant.Empty {
		parsed, err := time.ParseInLocation(constant.DateOnlyFormat, from, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, failure.BadRequestFromString("from date must be in YYYY-MM-DD format") // nolint:wrapcheck
		}

		rangeStart = parsed
	}

	if to != constant.Empty {
		parsed, err := time.ParseInLocation(constant.DateOnlyFormat, to, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, failure.BadRequestFromString("to date must be in YYYY-MM-DD format") // nolint:wrapcheck
		}

		rangeEnd = parsed.AddDate(0, 0, 1)
	}

	if !rangeEnd.After(rangeStart) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("to date must not be before from date") // nolint:wrapcheck
	}

	return rangeStart, rangeEnd, nil
}
