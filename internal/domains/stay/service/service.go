package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"balai/config"
	"balai/infras/otel"
	catalogModel "balai/internal/domains/catalog/model"
	catalogRepo "balai/internal/domains/catalog/repository"
	guestModel "balai/internal/domains/guest/model"
	guestRepo "balai/internal/domains/guest/repository"
	invoiceModel "balai/internal/domains/invoice/model"
	invoiceDto "balai/internal/domains/invoice/model/dto"
	invoiceRepo "balai/internal/domains/invoice/repository"
	reservationModel "balai/internal/domains/reservation/model"
	reservationRepo "balai/internal/domains/reservation/repository"
	roomModel "balai/internal/domains/room/model"
	roomRepo "balai/internal/domains/room/repository"
	roomTypeModel "balai/internal/domains/roomtype/model"
	roomTypeRepo "balai/internal/domains/roomtype/repository"
	"balai/internal/domains/stay/model"
	"balai/internal/domains/stay/model/dto"
	"balai/internal/domains/stay/repository"
	"balai/internal/events"
	"balai/shared"
	"balai/shared/cache"
	"balai/shared/constant"
	gDto "balai/shared/dto"
	"balai/shared/failure"
	gModel "balai/shared/model"
	"balai/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetStay    = "stay:get"
	cacheGetAllStay = "stay:gets"
	cacheCountStay  = "stay:count"
)

type Stay interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.StayResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaysResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StayResponse, error)
	AddService(ctx context.Context, req dto.AddStayServiceRequest, id string) (dto.StayServiceResponse, error)
	GetServices(ctx context.Context, id string) (dto.GetStayServicesResponse, error)
	CheckOut(ctx context.Context, id string, req dto.CheckOutRequest) (dto.CheckOutResponse, error)
}

type serviceImpl struct {
	repo            repository.Stay
	reservationRepo reservationRepo.Reservation
	roomRepo        roomRepo.Room
	roomTypeRepo    roomTypeRepo.RoomType
	guestRepo       guestRepo.Guest
	catalogRepo     catalogRepo.Service
	invoiceRepo     invoiceRepo.Invoice
	publisher       events.Publisher
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	repo repository.Stay,
	reservationRepo reservationRepo.Reservation,
	roomRepo roomRepo.Room,
	roomTypeRepo roomTypeRepo.RoomType,
	guestRepo guestRepo.Guest,
	catalogRepo catalogRepo.Service,
	invoiceRepo invoiceRepo.Invoice,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Stay {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		roomTypeRepo:    roomTypeRepo,
		guestRepo:       guestRepo,
		catalogRepo:     catalogRepo,
		invoiceRepo:     invoiceRepo,
		publisher:       publisher,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

// CheckIn opens a stay for one room, either from a confirmed reservation
// or as a walk-in.
func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	// A reserved room can only be taken through the reservation that
	// holds it. Walk-ins need the room to be free.
	reservedForReservation := room.Status == roomModel.StatusReserved && req.ReservationID != constant.Empty

	if room.Status != roomModel.StatusAvailable && !reservedForReservation {
		return res, failure.Conflict("room is not available for check-in") // nolint:wrapcheck
	}

	roomType, err := s.roomTypeRepo.Get(ctx, shared.FilterByID(room.RoomTypeID, roomTypeModel.FieldID, roomTypeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room type")

		return res, fmt.Errorf("failed to get room type: %w", err)
	}

	guestID := req.GuestID

	var (
		reservationID *string
		reservation   reservationModel.Reservation
	)

	if req.ReservationID != constant.Empty {
		reservation, err = s.getReservation(ctx, req.ReservationID, req.RoomID)
		if err != nil {
			return res, err
		}

		guestID = reservation.GuestID
		reservationID = &reservation.ID
	} else {
		guestExists, err := s.guestRepo.Exist(ctx, shared.FilterByID(guestID, guestModel.FieldID, guestModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if guest exists")

			return res, fmt.Errorf("failed to check if guest exists: %w", err)
		}

		if !guestExists {
			return res, failure.BadRequestFromString("guest does not exist") // nolint:wrapcheck
		}
	}

	stay, err := req.ToModel(guestID, reservationID, roomType.BaseRate, user)
	if err != nil {
		return res, failure.BadRequestFromString("checkin and expected checkout times must be in RFC3339 format") // nolint:wrapcheck
	}

	if stay.ExpectedCheckout != nil && !stay.ExpectedCheckout.After(stay.CheckinAt) {
		return res, failure.BadRequestFromString("expected checkout must be after the checkin time") // nolint:wrapcheck
	}

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, stay); err != nil {
			return fmt.Errorf("failed to insert stay: %w", err)
		}

		roomFields := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusOccupied,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.roomRepo.UpdateTx(ctx, tx, roomFields, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}

		if reservationID != nil {
			reservationFields := map[string]any{
				reservationModel.FieldStatus: reservationModel.StatusCheckedIn,
				constant.FieldModifiedAt:     timezone.Now(),
				constant.FieldModifiedBy:     user,
			}

			filter := shared.FilterByID(*reservationID, reservationModel.FieldID, reservationModel.TableName)
			if err := s.reservationRepo.UpdateTx(ctx, tx, reservationFields, filter); err != nil {
				return fmt.Errorf("failed to update reservation status: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check in")

		return res, fmt.Errorf("failed to check in: %w", err)
	}

	res.FromModel(stay)

	s.invalidate(ctx, stay.ID)

	s.publisher.Publish(ctx, events.TypeGuestCheckedIn, map[string]any{
		"stay_id":  stay.ID,
		"guest_id": stay.GuestID,
		"room_id":  stay.RoomID,
	})

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaysResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStay, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stays")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stays")

		return res, fmt.Errorf("failed to count stays: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stays")

		return res, fmt.Errorf("failed to get stays: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stays to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStay, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stays")

		return res, fmt.Errorf("failed to count stays: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stay count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStay, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	stay, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(stay)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stay to cache")
		}
	}()

	return res, nil
}

// AddService posts a billable extra to an open stay, snapshotting the
// service's current price.
func (s *serviceImpl) AddService(ctx context.Context, req dto.AddStayServiceRequest, id string) (res dto.StayServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	stay, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	if stay.Status != model.StatusOpen {
		return res, failure.Conflict("services can only be added to an open stay") // nolint:wrapcheck
	}

	service, err := s.catalogRepo.Get(ctx, shared.FilterByID(req.ServiceID, catalogModel.FieldID, catalogModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty || !service.Active {
		return res, failure.BadRequestFromString("service does not exist or is inactive") // nolint:wrapcheck
	}

	stayService := req.ToModel(stay.ID, service.UnitPrice, user)

	if err = s.repo.InsertService(ctx, stayService); err != nil {
		log.Error().Err(err).Msg("failed to add service to stay")

		return res, fmt.Errorf("failed to add service to stay: %w", err)
	}

	res.FromModel(stayService)

	s.invalidate(ctx, id)

	return res, nil
}

func (s *serviceImpl) GetServices(ctx context.Context, id string) (res dto.GetStayServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getByID(ctx, id); err != nil {
		return res, err
	}

	services, err := s.repo.GetServices(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stay services")

		return res, fmt.Errorf("failed to get stay services: %w", err)
	}

	res.FromModels(services)

	return res, nil
}

// CheckOut closes an open stay and, unless the request opts out,
// issues its invoice in the same transaction. Checking out a closed
// stay is rejected so an invoice is never issued twice.
func (s *serviceImpl) CheckOut(ctx context.Context, id string, req dto.CheckOutRequest) (res dto.CheckOutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	stay, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	if stay.Status != model.StatusOpen {
		return res, failure.Conflict("stay has already been checked out") // nolint:wrapcheck
	}

	checkoutAt, err := req.ResolveCheckoutAt()
	if err != nil {
		return res, failure.BadRequestFromString("checkout time must be in RFC3339 format") // nolint:wrapcheck
	}

	if !checkoutAt.After(stay.CheckinAt) {
		return res, failure.BadRequestFromString("checkout time must be after the checkin time") // nolint:wrapcheck
	}

	services, err := s.repo.GetServices(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stay services")

		return res, fmt.Errorf("failed to get stay services: %w", err)
	}

	nights := dto.CalculateNights(stay.CheckinAt, checkoutAt)

	roomCharges := float64(nights) * stay.RoomRate

	serviceCharges := 0.0
	for _, service := range services {
		serviceCharges += float64(service.Quantity) * service.UnitPrice
	}

	generateInvoice := req.ShouldGenerateInvoice()

	var invoice invoiceModel.Invoice

	if generateInvoice {
		invoiceID := uuid.NewString()
		invoice = invoiceModel.Invoice{
			ID:             invoiceID,
			Number:         invoiceDto.GenerateNumber(invoiceID),
			StayID:         stay.ID,
			GuestID:        stay.GuestID,
			RoomCharges:    roomCharges,
			ServiceCharges: serviceCharges,
			TotalAmount:    roomCharges + serviceCharges,
			PaidAmount:     0,
			Status:         invoiceModel.StatusUnpaid,
			IssuedAt:       checkoutAt,
			Metadata: gModel.Metadata{
				CreatedAt:  checkoutAt,
				ModifiedAt: checkoutAt,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		stayFields := map[string]any{
			model.FieldStatus:        model.StatusClosed,
			model.FieldCheckoutAt:    checkoutAt,
			constant.FieldModifiedAt: checkoutAt,
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, stayFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to close stay: %w", err)
		}

		roomFields := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusCleaning,
			constant.FieldModifiedAt: checkoutAt,
			constant.FieldModifiedBy: user,
		}

		if err := s.roomRepo.UpdateTx(ctx, tx, roomFields, shared.FilterByID(stay.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}

		if generateInvoice {
			if err := s.invoiceRepo.InsertTx(ctx, tx, invoice); err != nil {
				return fmt.Errorf("failed to insert invoice: %w", err)
			}
		}

		guestFields := map[string]any{
			guestModel.FieldLastStay: checkoutAt,
			constant.FieldModifiedAt: checkoutAt,
			constant.FieldModifiedBy: user,
		}

		if err := s.guestRepo.UpdateTx(ctx, tx, guestFields, shared.FilterByID(stay.GuestID, guestModel.FieldID, guestModel.TableName)); err != nil {
			return fmt.Errorf("failed to update guest: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check out")

		return res, fmt.Errorf("failed to check out: %w", err)
	}

	res = dto.CheckOutResponse{
		StayID:         stay.ID,
		InvoiceID:      invoice.ID,
		InvoiceNumber:  invoice.Number,
		Nights:         nights,
		RoomCharges:    roomCharges,
		ServiceCharges: serviceCharges,
		TotalAmount:    roomCharges + serviceCharges,
		CheckoutAt:     checkoutAt.Format(constant.DateFormat),
	}

	s.invalidate(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, invoiceModel.EntityName)
		shared.InvalidateCaches(c, s.cache, guestModel.EntityName)
	}()

	payload := map[string]any{
		"stay_id":      stay.ID,
		"guest_id":     stay.GuestID,
		"room_id":      stay.RoomID,
		"total_amount": res.TotalAmount,
	}
	if generateInvoice {
		payload["invoice_id"] = invoice.ID
	}

	s.publisher.Publish(ctx, events.TypeGuestCheckedOut, payload)

	return res, nil
}

// getReservation validates that the reservation can be checked in and
// that the requested room belongs to it.
func (s *serviceImpl) getReservation(ctx context.Context, reservationID, roomID string) (reservationModel.Reservation, error) {
	reservation, err := s.reservationRepo.Get(ctx, shared.FilterByID(reservationID, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	// checked-in stays eligible so the remaining rooms of a multi-room
	// reservation can still be checked in.
	if reservation.Status != reservationModel.StatusConfirmed && reservation.Status != reservationModel.StatusCheckedIn {
		return reservation, failure.Conflict("only a confirmed reservation can be checked in") // nolint:wrapcheck
	}

	rooms, err := s.reservationRepo.GetRooms(ctx, reservationID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation rooms")

		return reservation, fmt.Errorf("failed to get reservation rooms: %w", err)
	}

	for _, room := range rooms {
		if room.RoomID == roomID {
			return reservation, nil
		}
	}

	return reservation, failure.BadRequestFromString("room is not part of the reservation") // nolint:wrapcheck
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Stay, error) {
	stay, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get stay")

		return stay, fmt.Errorf("failed to get stay: %w", err)
	}

	if stay.ID == constant.Empty {
		return stay, failure.NotFound("stay not found") // nolint:wrapcheck
	}

	return stay, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStay, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete stay from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStay)
		shared.InvalidateCaches(c, s.cache, cacheCountStay)
		shared.InvalidateCaches(c, s.cache, roomModel.EntityName)
		shared.InvalidateCaches(c, s.cache, reservationModel.EntityName)
	}()
}
