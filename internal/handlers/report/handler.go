package report

import (
	"net/http"

	"balai/infras/otel"
	"balai/internal/domains/report/service"
	"balai/shared/constant"
	"balai/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamFrom = "from"
	queryParamTo   = "to"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.GetDashboard)
		routerGroup.Get("/occupancy", handler.GetOccupancyReport)
		routerGroup.Get("/revenue", handler.GetRevenueReport)
		routerGroup.Get("/export", handler.ExportReport)
	})
}

// GetDashboard retrieves the front-desk KPIs for today.
// @Summary Get the dashboard
// @Description Retrieve today's occupancy, arrivals, departures, revenue, and outstanding balance.
// @Tags Report
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard KPIs"
// @Failure 500 {object} response.Error
// @Router /v1/reports/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard retrieved successfully")

	response.WithJSON(w, http.StatusOK, dashboard)
}

// GetOccupancyReport retrieves the occupancy report for a date range.
// @Summary Get the occupancy report
// @Description Retrieve occupancy rate, ADR, and RevPAR over a date range. Defaults to the last thirty days.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.OccupancyReportResponse] "Occupancy report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/occupancy [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancyReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancyReport")
	defer scope.End()

	from := r.URL.Query().Get(queryParamFrom)
	to := r.URL.Query().Get(queryParamTo)

	report, err := handler.service.Occupancy(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupancy report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetRevenueReport retrieves the revenue report for a date range.
// @Summary Get the revenue report
// @Description Retrieve invoiced and collected amounts over a date range, broken down by payment method.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.RevenueReportResponse] "Revenue report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenueReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenueReport")
	defer scope.End()

	from := r.URL.Query().Get(queryParamFrom)
	to := r.URL.Query().Get(queryParamTo)

	report, err := handler.service.Revenue(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report retrieved successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// ExportReport downloads the reports of a date range as a workbook.
// @Summary Export the reports as XLSX
// @Description Download the occupancy and revenue reports of a date range as an XLSX workbook.
// @Tags Report
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file "XLSX workbook"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/export [get]
// @Security BearerAuth
func (handler *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportReport")
	defer scope.End()

	from := r.URL.Query().Get(queryParamFrom)
	to := r.URL.Query().Get(queryParamTo)

	payload, fileName, err := handler.service.Export(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report exported successfully")

	response.WithFile(w, constant.ContentTypeXLSX, fileName, payload)
}
