package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"balai/config"
	"balai/infras/otel/mocks"
	catalogMocks "balai/internal/domains/catalog/mocks"
	catalogModel "balai/internal/domains/catalog/model"
	guestMocks "balai/internal/domains/guest/mocks"
	invoiceMocks "balai/internal/domains/invoice/mocks"
	reservationMocks "balai/internal/domains/reservation/mocks"
	reservationModel "balai/internal/domains/reservation/model"
	roomMocks "balai/internal/domains/room/mocks"
	roomModel "balai/internal/domains/room/model"
	roomTypeMocks "balai/internal/domains/roomtype/mocks"
	roomTypeModel "balai/internal/domains/roomtype/model"
	stayMocks "balai/internal/domains/stay/mocks"
	"balai/internal/domains/stay/model"
	"balai/internal/domains/stay/model/dto"
	"balai/internal/domains/stay/service"
	"balai/internal/events"
	eventsMocks "balai/internal/events/mocks"
	cacheMocks "balai/shared/cache/mocks"
	"balai/shared/constant"
	"balai/shared/failure"
	"balai/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stayMockSet struct {
	repo            *stayMocks.MockStay
	reservationRepo *reservationMocks.MockReservation
	roomRepo        *roomMocks.MockRoom
	roomTypeRepo    *roomTypeMocks.MockRoomType
	guestRepo       *guestMocks.MockGuest
	catalogRepo     *catalogMocks.MockService
	invoiceRepo     *invoiceMocks.MockInvoice
	publisher       *eventsMocks.MockPublisher
	cache           *cacheMocks.MockRedisCache
}

func newStayService(t *testing.T) (service.Stay, stayMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := stayMockSet{
		repo:            stayMocks.NewMockStay(ctrl),
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
		roomRepo:        roomMocks.NewMockRoom(ctrl),
		roomTypeRepo:    roomTypeMocks.NewMockRoomType(ctrl),
		guestRepo:       guestMocks.NewMockGuest(ctrl),
		catalogRepo:     catalogMocks.NewMockService(ctrl),
		invoiceRepo:     invoiceMocks.NewMockInvoice(ctrl),
		publisher:       eventsMocks.NewMockPublisher(ctrl),
		cache:           cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		set.repo,
		set.reservationRepo,
		set.roomRepo,
		set.roomTypeRepo,
		set.guestRepo,
		set.catalogRepo,
		set.invoiceRepo,
		set.publisher,
		cfg,
		set.cache,
		mocks.NewOtel(),
	)

	return svc, set
}

func (set stayMockSet) expectInvalidation() {
	set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestStayService_CheckIn(t *testing.T) {
	availableRoom := roomModel.Room{
		ID:         "room-id",
		Number:     "201",
		RoomTypeID: "room-type-id",
		Status:     roomModel.StatusAvailable,
	}

	deluxe := roomTypeModel.RoomType{ID: "room-type-id", Name: "Deluxe", BaseRate: 4000}

	t.Run("walk-in check-in", func(t *testing.T) {
		svc, set := newStayService(t)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom, nil)

		set.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		set.guestRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})

		set.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.publisher.EXPECT().
			Publish(gomock.Any(), events.TypeGuestCheckedIn, gomock.Any())

		set.expectInvalidation()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.CheckIn(ctx, dto.CheckInRequest{GuestID: "guest-id", RoomID: "room-id"})

		require.NoError(t, err)
		assert.Equal(t, model.StatusOpen, res.Status)
		assert.Equal(t, 4000.0, res.RoomRate)
		assert.Empty(t, res.ReservationID)
	})

	t.Run("walk-in cannot take a reserved room", func(t *testing.T) {
		svc, set := newStayService(t)

		reserved := availableRoom
		reserved.Status = roomModel.StatusReserved

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(reserved, nil)

		_, err := svc.CheckIn(context.Background(), dto.CheckInRequest{GuestID: "guest-id", RoomID: "room-id"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("check-in with requested times", func(t *testing.T) {
		svc, set := newStayService(t)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom, nil)

		set.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		set.guestRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})

		var inserted model.Stay

		set.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, stay model.Stay) error {
				inserted = stay

				return nil
			})

		set.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.publisher.EXPECT().
			Publish(gomock.Any(), events.TypeGuestCheckedIn, gomock.Any())

		set.expectInvalidation()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.CheckIn(ctx, dto.CheckInRequest{
			GuestID:          "guest-id",
			RoomID:           "room-id",
			CheckinAt:        "2025-01-12T14:30:00Z",
			ExpectedCheckout: "2025-01-15T12:00:00Z",
			Notes:            "late arrival",
		})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, time.January, 12, 14, 30, 0, 0, time.UTC), inserted.CheckinAt.UTC())
		require.NotNil(t, inserted.ExpectedCheckout)
		assert.Equal(t, time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC), inserted.ExpectedCheckout.UTC())
		assert.Equal(t, "late arrival", inserted.Notes)
		assert.Equal(t, "late arrival", res.Notes)
	})

	t.Run("malformed checkin time", func(t *testing.T) {
		svc, set := newStayService(t)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom, nil)

		set.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		set.guestRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.CheckIn(context.Background(), dto.CheckInRequest{
			GuestID:   "guest-id",
			RoomID:    "room-id",
			CheckinAt: "2025-01-12 14:30",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("expected checkout before checkin", func(t *testing.T) {
		svc, set := newStayService(t)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom, nil)

		set.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		set.guestRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.CheckIn(context.Background(), dto.CheckInRequest{
			GuestID:          "guest-id",
			RoomID:           "room-id",
			CheckinAt:        "2025-01-15T12:00:00Z",
			ExpectedCheckout: "2025-01-12T14:30:00Z",
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("check-in from reservation", func(t *testing.T) {
		svc, set := newStayService(t)

		reservedRoom := availableRoom
		reservedRoom.Status = roomModel.StatusReserved

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(reservedRoom, nil)

		set.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		set.reservationRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(reservationModel.Reservation{
				ID:      "reservation-id",
				GuestID: "booked-guest-id",
				Status:  reservationModel.StatusConfirmed,
			}, nil)

		set.reservationRepo.EXPECT().
			GetRooms(gomock.Any(), "reservation-id").
			Return([]reservationModel.ReservationRoom{{ReservationID: "reservation-id", RoomID: "room-id"}}, nil)

		set.repo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})

		set.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.reservationRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.publisher.EXPECT().
			Publish(gomock.Any(), events.TypeGuestCheckedIn, gomock.Any())

		set.expectInvalidation()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.CheckIn(ctx, dto.CheckInRequest{ReservationID: "reservation-id", RoomID: "room-id"})

		require.NoError(t, err)
		assert.Equal(t, "booked-guest-id", res.GuestID)
		assert.Equal(t, "reservation-id", res.ReservationID)
	})

	t.Run("room not found", func(t *testing.T) {
		svc, set := newStayService(t)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, nil)

		_, err := svc.CheckIn(context.Background(), dto.CheckInRequest{GuestID: "guest-id", RoomID: "missing"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("occupied room", func(t *testing.T) {
		svc, set := newStayService(t)

		occupied := availableRoom
		occupied.Status = roomModel.StatusOccupied

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupied, nil)

		_, err := svc.CheckIn(context.Background(), dto.CheckInRequest{GuestID: "guest-id", RoomID: "room-id"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("room not part of the reservation", func(t *testing.T) {
		svc, set := newStayService(t)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom, nil)

		set.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		set.reservationRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(reservationModel.Reservation{
				ID:     "reservation-id",
				Status: reservationModel.StatusConfirmed,
			}, nil)

		set.reservationRepo.EXPECT().
			GetRooms(gomock.Any(), "reservation-id").
			Return([]reservationModel.ReservationRoom{{ReservationID: "reservation-id", RoomID: "other-room"}}, nil)

		_, err := svc.CheckIn(context.Background(), dto.CheckInRequest{ReservationID: "reservation-id", RoomID: "room-id"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("pending reservation cannot be checked in", func(t *testing.T) {
		svc, set := newStayService(t)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom, nil)

		set.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		set.reservationRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(reservationModel.Reservation{
				ID:     "reservation-id",
				Status: reservationModel.StatusPending,
			}, nil)

		_, err := svc.CheckIn(context.Background(), dto.CheckInRequest{ReservationID: "reservation-id", RoomID: "room-id"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("cancelled reservation", func(t *testing.T) {
		svc, set := newStayService(t)

		set.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableRoom, nil)

		set.roomTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(deluxe, nil)

		set.reservationRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(reservationModel.Reservation{
				ID:     "reservation-id",
				Status: reservationModel.StatusCancelled,
			}, nil)

		_, err := svc.CheckIn(context.Background(), dto.CheckInRequest{ReservationID: "reservation-id", RoomID: "room-id"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestStayService_AddService(t *testing.T) {
	openStay := model.Stay{ID: "stay-id", GuestID: "guest-id", RoomID: "room-id", Status: model.StatusOpen}

	t.Run("successful add", func(t *testing.T) {
		svc, set := newStayService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(openStay, nil)

		set.catalogRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(catalogModel.Service{ID: "service-id", Name: "Breakfast", UnitPrice: 350, Active: true}, nil)

		set.repo.EXPECT().
			InsertService(gomock.Any(), gomock.Any()).
			Return(nil)

		set.expectInvalidation()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.AddService(ctx, dto.AddStayServiceRequest{ServiceID: "service-id", Quantity: 2}, "stay-id")

		require.NoError(t, err)
		assert.Equal(t, 350.0, res.UnitPrice, "expected the current price to be snapshotted")
		assert.Equal(t, 700.0, res.Total)
	})

	t.Run("closed stay", func(t *testing.T) {
		svc, set := newStayService(t)

		closed := openStay
		closed.Status = model.StatusClosed

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(closed, nil)

		_, err := svc.AddService(context.Background(), dto.AddStayServiceRequest{ServiceID: "service-id", Quantity: 1}, "stay-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("inactive service", func(t *testing.T) {
		svc, set := newStayService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(openStay, nil)

		set.catalogRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(catalogModel.Service{ID: "service-id", Active: false}, nil)

		_, err := svc.AddService(context.Background(), dto.AddStayServiceRequest{ServiceID: "service-id", Quantity: 1}, "stay-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestStayService_CheckOut(t *testing.T) {
	t.Run("successful checkout bills nights and services", func(t *testing.T) {
		svc, set := newStayService(t)

		// 69.5 hours rounds up to 3 nights.
		openStay := model.Stay{
			ID:        "stay-id",
			GuestID:   "guest-id",
			RoomID:    "room-id",
			RoomRate:  4000,
			Status:    model.StatusOpen,
			CheckinAt: timezone.Now().Add(-(69*time.Hour + 30*time.Minute)),
		}

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(openStay, nil)

		set.repo.EXPECT().
			GetServices(gomock.Any(), "stay-id").
			Return([]model.StayService{
				{ID: "first", Quantity: 2, UnitPrice: 350},
				{ID: "second", Quantity: 1, UnitPrice: 200},
			}, nil)

		set.repo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})

		set.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.invoiceRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.guestRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.publisher.EXPECT().
			Publish(gomock.Any(), events.TypeGuestCheckedOut, gomock.Any())

		set.expectInvalidation()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.CheckOut(ctx, "stay-id", dto.CheckOutRequest{})

		require.NoError(t, err)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, 12000.0, res.RoomCharges)
		assert.Equal(t, 900.0, res.ServiceCharges)
		assert.Equal(t, 12900.0, res.TotalAmount)
		assert.NotEmpty(t, res.InvoiceID)
		assert.NotEmpty(t, res.InvoiceNumber)
	})

	t.Run("requested checkout time drives the bill", func(t *testing.T) {
		svc, set := newStayService(t)

		openStay := model.Stay{
			ID:        "stay-id",
			GuestID:   "guest-id",
			RoomID:    "room-id",
			RoomRate:  4000,
			Status:    model.StatusOpen,
			CheckinAt: time.Date(2025, time.January, 12, 14, 30, 0, 0, time.UTC),
		}

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(openStay, nil)

		set.repo.EXPECT().
			GetServices(gomock.Any(), "stay-id").
			Return(nil, nil)

		set.repo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})

		set.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.invoiceRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.guestRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.publisher.EXPECT().
			Publish(gomock.Any(), events.TypeGuestCheckedOut, gomock.Any())

		set.expectInvalidation()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.CheckOut(ctx, "stay-id", dto.CheckOutRequest{CheckoutAt: "2025-01-15T12:00:00Z"})

		require.NoError(t, err)
		assert.Equal(t, 3, res.Nights)
		assert.Equal(t, 12000.0, res.RoomCharges)
	})

	t.Run("checkout without an invoice", func(t *testing.T) {
		svc, set := newStayService(t)

		openStay := model.Stay{
			ID:        "stay-id",
			GuestID:   "guest-id",
			RoomID:    "room-id",
			RoomRate:  4000,
			Status:    model.StatusOpen,
			CheckinAt: timezone.Now().Add(-20 * time.Hour),
		}

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(openStay, nil)

		set.repo.EXPECT().
			GetServices(gomock.Any(), "stay-id").
			Return(nil, nil)

		set.repo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})

		set.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.roomRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.guestRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.publisher.EXPECT().
			Publish(gomock.Any(), events.TypeGuestCheckedOut, gomock.Any())

		set.expectInvalidation()

		generate := false

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := svc.CheckOut(ctx, "stay-id", dto.CheckOutRequest{GenerateInvoice: &generate})

		require.NoError(t, err)
		assert.Empty(t, res.InvoiceID)
		assert.Empty(t, res.InvoiceNumber)
		assert.Equal(t, 4000.0, res.TotalAmount)
	})

	t.Run("checkout time before checkin", func(t *testing.T) {
		svc, set := newStayService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Stay{
				ID:        "stay-id",
				Status:    model.StatusOpen,
				CheckinAt: time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC),
			}, nil)

		_, err := svc.CheckOut(context.Background(), "stay-id", dto.CheckOutRequest{CheckoutAt: "2025-01-12T14:30:00Z"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("already checked out", func(t *testing.T) {
		svc, set := newStayService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Stay{ID: "stay-id", Status: model.StatusClosed}, nil)

		_, err := svc.CheckOut(context.Background(), "stay-id", dto.CheckOutRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("stay not found", func(t *testing.T) {
		svc, set := newStayService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Stay{}, nil)

		_, err := svc.CheckOut(context.Background(), "missing-id", dto.CheckOutRequest{})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("transaction error", func(t *testing.T) {
		svc, set := newStayService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Stay{ID: "stay-id", Status: model.StatusOpen, CheckinAt: timezone.Now().Add(-time.Hour)}, nil)

		set.repo.EXPECT().
			GetServices(gomock.Any(), "stay-id").
			Return(nil, nil)

		set.repo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.CheckOut(context.Background(), "stay-id", dto.CheckOutRequest{})

		assert.Error(t, err)
	})
}

func TestStayService_GetServices(t *testing.T) {
	svc, set := newStayService(t)

	set.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Stay{ID: "stay-id", Status: model.StatusOpen}, nil)

	set.repo.EXPECT().
		GetServices(gomock.Any(), "stay-id").
		Return([]model.StayService{{ID: "first", Quantity: 2, UnitPrice: 350}}, nil)

	res, err := svc.GetServices(context.Background(), "stay-id")

	require.NoError(t, err)
	require.Len(t, res.Services, 1)
	assert.Equal(t, 700.0, res.Services[0].Total)
}
