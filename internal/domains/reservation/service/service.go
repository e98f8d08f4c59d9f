package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"balai/config"
	"balai/infras/otel"
	"balai/internal/domains/guest/model"
	guestRepo "balai/internal/domains/guest/repository"
	reservationModel "balai/internal/domains/reservation/model"
	"balai/internal/domains/reservation/model/dto"
	"balai/internal/domains/reservation/repository"
	roomModel "balai/internal/domains/room/model"
	roomRepo "balai/internal/domains/room/repository"
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
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	NoShow(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Reservation
	guestRepo guestRepo.Guest
	roomRepo  roomRepo.Room
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Reservation,
	guestRepo guestRepo.Guest,
	roomRepo roomRepo.Room,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:      repo,
		guestRepo: guestRepo,
		roomRepo:  roomRepo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequestFromString("dates must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	if !reservation.CheckoutDate.After(reservation.CheckinDate) {
		return res, failure.BadRequestFromString("checkout date must be after checkin date") // nolint:wrapcheck
	}

	guestExists, err := s.guestRepo.Exist(ctx, shared.FilterByID(req.GuestID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return res, failure.BadRequestFromString("guest does not exist") // nolint:wrapcheck
	}

	if err = s.checkRoomsExist(ctx, req.RoomIDs); err != nil {
		return res, err
	}

	if err = s.checkAvailability(ctx, req.RoomIDs, reservation.CheckinDate, reservation.CheckoutDate, constant.Empty); err != nil {
		return res, err
	}

	rooms := make([]reservationModel.ReservationRoom, len(req.RoomIDs))
	for i, roomID := range req.RoomIDs {
		rooms[i] = reservationModel.ReservationRoom{ReservationID: reservation.ID, RoomID: roomID}
	}

	if err = s.repo.InsertWithRooms(ctx, reservation, rooms); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	res.FromModel(reservation)
	res.WithRooms(rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	rooms, err := s.repo.GetRooms(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation rooms")

		return res, fmt.Errorf("failed to get reservation rooms: %w", err)
	}

	res.FromModel(reservation)
	res.WithRooms(rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// Update edits the booking details of a pending or confirmed
// reservation. Status changes go through the dedicated transitions.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateReservationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, reservationModel.FieldID, reservationModel.TableName)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status != reservationModel.StatusPending && reservation.Status != reservationModel.StatusConfirmed {
		return failure.Conflict("only pending or confirmed reservations can be updated") // nolint:wrapcheck
	}

	checkin, checkout := reservation.CheckinDate, reservation.CheckoutDate

	updatedFields := shared.TransformFields(req, user)

	if req.CheckinDate != constant.Empty {
		if checkin, err = time.Parse(constant.DateOnlyFormat, req.CheckinDate); err != nil {
			return failure.BadRequestFromString("checkin date must be in YYYY-MM-DD format") // nolint:wrapcheck
		}

		updatedFields[reservationModel.FieldCheckinDate] = checkin
	}

	if req.CheckoutDate != constant.Empty {
		if checkout, err = time.Parse(constant.DateOnlyFormat, req.CheckoutDate); err != nil {
			return failure.BadRequestFromString("checkout date must be in YYYY-MM-DD format") // nolint:wrapcheck
		}

		updatedFields[reservationModel.FieldCheckoutDate] = checkout
	}

	if !checkout.After(checkin) {
		return failure.BadRequestFromString("checkout date must be after checkin date") // nolint:wrapcheck
	}

	if req.CheckinDate != constant.Empty || req.CheckoutDate != constant.Empty {
		rooms, err := s.repo.GetRooms(ctx, id)
		if err != nil {
			log.Error().Err(err).Msg("failed to get reservation rooms")

			return fmt.Errorf("failed to get reservation rooms: %w", err)
		}

		roomIDs := make([]string, len(rooms))
		for i, room := range rooms {
			roomIDs[i] = room.RoomID
		}

		if err = s.checkAvailability(ctx, roomIDs, checkin, checkout, id); err != nil {
			return err
		}
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status != reservationModel.StatusPending {
		return failure.Conflict("only pending reservations can be confirmed") // nolint:wrapcheck
	}

	if err = s.transition(ctx, reservation, reservationModel.StatusConfirmed, roomModel.StatusReserved); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.TypeReservationConfirmed, map[string]any{
		"reservation_id": reservation.ID,
		"code":           reservation.Code,
		"guest_id":       reservation.GuestID,
	})

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status != reservationModel.StatusPending && reservation.Status != reservationModel.StatusConfirmed {
		return failure.Conflict("only pending or confirmed reservations can be cancelled") // nolint:wrapcheck
	}

	if err = s.transition(ctx, reservation, reservationModel.StatusCancelled, roomModel.StatusAvailable); err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.TypeReservationCancelled, map[string]any{
		"reservation_id": reservation.ID,
		"code":           reservation.Code,
		"guest_id":       reservation.GuestID,
	})

	return nil
}

func (s *serviceImpl) NoShow(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NoShow")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status != reservationModel.StatusConfirmed {
		return failure.Conflict("only confirmed reservations can be marked as no-show") // nolint:wrapcheck
	}

	return s.transition(ctx, reservation, reservationModel.StatusNoShow, roomModel.StatusAvailable)
}

// transition moves the reservation to its new status and aligns the
// assigned rooms with it in a single transaction. Rooms that have moved
// past the reserved state, such as an occupied room, are left alone.
func (s *serviceImpl) transition(ctx context.Context, reservation reservationModel.Reservation, status, roomStatus string) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rooms, err := s.repo.GetRooms(ctx, reservation.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation rooms")

		return fmt.Errorf("failed to get reservation rooms: %w", err)
	}

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		updatedFields := map[string]any{
			reservationModel.FieldStatus: status,
			constant.FieldModifiedAt:     timezone.Now(),
			constant.FieldModifiedBy:     user,
		}

		filter := shared.FilterByID(reservation.ID, reservationModel.FieldID, reservationModel.TableName)
		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return fmt.Errorf("failed to update reservation status: %w", err)
		}

		for _, room := range rooms {
			roomFields := map[string]any{
				roomModel.FieldStatus:    roomStatus,
				constant.FieldModifiedAt: timezone.Now(),
				constant.FieldModifiedBy: user,
			}

			roomFilter := gDto.FilterGroup{
				Filters: []any{
					gDto.Filter{Field: roomModel.FieldID, Operator: gDto.FilterOperatorEq, Value: room.RoomID, Table: roomModel.TableName},
					gDto.Filter{Field: roomModel.FieldStatus, Operator: gDto.FilterOperatorNotEq, Value: roomModel.StatusOccupied, Table: roomModel.TableName},
				},
				Operator: gDto.FilterGroupOperatorAnd,
			}

			if err := s.roomRepo.UpdateTx(ctx, tx, roomFields, roomFilter); err != nil {
				return fmt.Errorf("failed to update room status: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to transition reservation")

		return fmt.Errorf("failed to transition reservation: %w", err)
	}

	s.invalidate(ctx, reservation.ID)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, roomModel.EntityName)
	}()

	return nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (reservationModel.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) checkRoomsExist(ctx context.Context, roomIDs []string) error {
	count, err := s.roomRepo.Count(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: roomModel.FieldID, Operator: gDto.FilterOperatorIn, Value: roomIDs, Table: roomModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check rooms")

		return fmt.Errorf("failed to check rooms: %w", err)
	}

	if count != len(roomIDs) {
		return failure.BadRequestFromString("one or more rooms do not exist") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) checkAvailability(ctx context.Context, roomIDs []string, checkin, checkout time.Time, excludeReservationID string) error {
	overlapping, err := s.repo.CountOverlapping(ctx, roomIDs, checkin, checkout, excludeReservationID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room availability")

		return fmt.Errorf("failed to check room availability: %w", err)
	}

	if overlapping > 0 {
		return failure.Conflict("one or more rooms are already booked for these dates") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}
