package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"balai/config"
	"balai/infras/otel/mocks"
	roomMocks "balai/internal/domains/room/mocks"
	roomTypeMocks "balai/internal/domains/roomtype/mocks"
	"balai/internal/domains/roomtype/model"
	"balai/internal/domains/roomtype/model/dto"
	"balai/internal/domains/roomtype/service"
	cacheMocks "balai/shared/cache/mocks"
	"balai/shared/constant"
	"balai/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roomTypeMockSet struct {
	repo     *roomTypeMocks.MockRoomType
	roomRepo *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
}

func newRoomTypeService(t *testing.T) (service.RoomType, roomTypeMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := roomTypeMockSet{
		repo:     roomTypeMocks.NewMockRoomType(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, set.roomRepo, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func TestRoomTypeService_Create(t *testing.T) {
	svc, set := newRoomTypeService(t)

	set.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	res, err := svc.Create(ctx, dto.CreateRoomTypeRequest{
		Name:     "Deluxe",
		BaseRate: 4000,
		Capacity: 3,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 4000.0, res.BaseRate)
}

func TestRoomTypeService_Get(t *testing.T) {
	t.Run("cache miss", func(t *testing.T) {
		svc, set := newRoomTypeService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{ID: "room-type-id", Name: "Suite", BaseRate: 7500}, nil)

		set.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "room-type-id")

		require.NoError(t, err)
		assert.Equal(t, "Suite", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		svc, set := newRoomTypeService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomTypeService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		svc, _ := newRoomTypeService(t)

		err := svc.Update(context.Background(), dto.UpdateRoomTypeRequest{}, "room-type-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		svc, set := newRoomTypeService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Update(context.Background(), dto.UpdateRoomTypeRequest{BaseRate: 4500}, "room-type-id")

		assert.NoError(t, err)
	})
}

func TestRoomTypeService_Delete(t *testing.T) {
	t.Run("still assigned to rooms", func(t *testing.T) {
		svc, set := newRoomTypeService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Delete(context.Background(), "room-type-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		svc, set := newRoomTypeService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.roomRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		set.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), "room-type-id")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, set := newRoomTypeService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
