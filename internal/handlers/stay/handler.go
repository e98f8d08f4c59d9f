package stay

import (
	"net/http"

	"balai/infras/otel"
	"balai/internal/domains/stay/model"
	"balai/internal/domains/stay/model/dto"
	"balai/internal/domains/stay/service"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	"balai/shared/validator"
	"balai/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stay
	otel    otel.Otel
}

func New(service service.Stay, otel otel.Otel) *Handler {
	return &Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stays", func(routerGroup chi.Router) {
		routerGroup.Post("/check-in", handler.CheckIn)
		routerGroup.Get("/", handler.GetStays)
		routerGroup.Get("/{id}", handler.GetStayByID)
		routerGroup.Post("/{id}/services", handler.AddStayService)
		routerGroup.Get("/{id}/services", handler.GetStayServices)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
	})
}

// CheckIn opens a stay for a room.
// @Summary Check a guest in
// @Description Open a stay for one room, either from a confirmed reservation or as a walk-in. The room becomes occupied.
// @Tags Stay
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check-In Request"
// @Success 201 {object} response.Data[dto.StayResponse] "Guest checked in successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	stay, err := handler.service.CheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked in successfully")

	response.WithJSON(w, http.StatusCreated, stay)
}

// GetStays retrieves stays with optional filters.
// @Summary Get all stays
// @Description Retrieve stays with optional filtering by status, guest and room.
// @Tags Stay
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (open, closed)"
// @Param guest_id query string false "Filter by guest"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetStaysResponse] "List of stays"
// @Failure 500 {object} response.Error
// @Router /v1/stays [get]
// @Security BearerAuth
func (handler *Handler) GetStays(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStays")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	guestID := r.URL.Query().Get(model.FieldGuestID)
	roomID := r.URL.Query().Get(model.FieldRoomID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if guestID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldGuestID,
			Operator: gDto.FilterOperatorEq,
			Value:    guestID,
			Table:    model.TableName,
		})
	}

	if roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	stays, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stays")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stays retrieved successfully")

	response.WithJSON(w, http.StatusOK, stays)
}

// GetStayByID retrieves a stay by its ID.
// @Summary Get a stay by ID
// @Description Retrieve a stay by its unique identifier.
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Stay ID"
// @Success 200 {object} response.Data[dto.StayResponse] "Stay details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStayByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStayByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	stay, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stay by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stay retrieved successfully")

	response.WithJSON(w, http.StatusOK, stay)
}

// AddStayService posts a billable extra to an open stay.
// @Summary Add a service to a stay
// @Description Post a billable extra to an open stay. The unit price is snapshotted from the service catalog.
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Stay ID"
// @Param request body dto.AddStayServiceRequest true "Add Stay Service Request"
// @Success 201 {object} response.Data[dto.StayServiceResponse] "Service added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays/{id}/services [post]
// @Security BearerAuth
func (handler *Handler) AddStayService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddStayService")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddStayServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	stayService, err := handler.service.AddService(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add service to stay")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service added to stay successfully")

	response.WithJSON(w, http.StatusCreated, stayService)
}

// GetStayServices lists the billable extras posted to a stay.
// @Summary Get the services of a stay
// @Description List the billable extras posted to a stay.
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Stay ID"
// @Success 200 {object} response.Data[dto.GetStayServicesResponse] "List of stay services"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays/{id}/services [get]
// @Security BearerAuth
func (handler *Handler) GetStayServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStayServices")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	services, err := handler.service.GetServices(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stay services")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stay services retrieved successfully")

	response.WithJSON(w, http.StatusOK, services)
}

// CheckOut closes a stay and issues its invoice.
// @Summary Check a guest out
// @Description Close an open stay, issue its invoice unless the request opts out, and send the room to cleaning.
// @Tags Stay
// @Accept json
// @Produce json
// @Param id path string true "Stay ID"
// @Param request body dto.CheckOutRequest false "Check-Out Request"
// @Success 200 {object} response.Data[dto.CheckOutResponse] "Guest checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stays/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	// The body is optional. An absent body checks out now and issues
	// the invoice.
	req := dto.CheckOutRequest{}

	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	checkout, err := handler.service.CheckOut(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked out successfully")

	response.WithJSON(w, http.StatusOK, checkout)
}
