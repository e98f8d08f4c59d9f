package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"balai/config"
	"balai/infras/otel/mocks"
	roomMocks "balai/internal/domains/room/mocks"
	"balai/internal/domains/room/model"
	"balai/internal/domains/room/model/dto"
	"balai/internal/domains/room/service"
	roomTypeMocks "balai/internal/domains/roomtype/mocks"
	cacheMocks "balai/shared/cache/mocks"
	"balai/shared/constant"
	"balai/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roomMockSet struct {
	repo         *roomMocks.MockRoom
	roomTypeRepo *roomTypeMocks.MockRoomType
	cache        *cacheMocks.MockRedisCache
}

func newRoomService(t *testing.T) (service.Room, roomMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := roomMockSet{
		repo:         roomMocks.NewMockRoom(ctrl),
		roomTypeRepo: roomTypeMocks.NewMockRoomType(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, set.roomTypeRepo, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		Number:     "101",
		Floor:      1,
		RoomTypeID: "3f1aa6a8-16a1-4f5c-a1c9-08a2f2f7a001",
	}

	t.Run("success", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.roomTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		set.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

		res, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "101", res.Number)
		assert.Equal(t, model.StatusAvailable, res.Status)
	})

	t.Run("unknown room type", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.roomTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("duplicate number", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.roomTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestRoomService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name         string
		currentState string
		expectedCode int
	}{
		{
			name:         "available to maintenance",
			currentState: model.StatusAvailable,
			expectedCode: http.StatusOK,
		},
		{
			name:         "cleaning to available",
			currentState: model.StatusCleaning,
			expectedCode: http.StatusOK,
		},
		{
			name:         "occupied room is managed by the workflow",
			currentState: model.StatusOccupied,
			expectedCode: http.StatusConflict,
		},
		{
			name:         "reserved room is managed by the workflow",
			currentState: model.StatusReserved,
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newRoomService(t)

			set.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Room{ID: "room-id", Status: tt.currentState}, nil)

			if tt.expectedCode == http.StatusOK {
				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			}

			err := svc.UpdateStatus(context.Background(), dto.UpdateRoomStatusRequest{Status: model.StatusMaintenance}, "room-id")

			if tt.expectedCode == http.StatusOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedCode, failure.GetCode(err))
			}
		})
	}

	t.Run("room not found", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		err := svc.UpdateStatus(context.Background(), dto.UpdateRoomStatusRequest{Status: model.StatusCleaning}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_Update(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		svc, _ := newRoomService(t)

		err := svc.Update(context.Background(), dto.UpdateRoomRequest{}, "room-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown room type", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.roomTypeRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateRoomRequest{RoomTypeID: "3f1aa6a8-16a1-4f5c-a1c9-08a2f2f7a001"}, "room-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Update(context.Background(), dto.UpdateRoomRequest{Notes: "repainted"}, "room-id")

		assert.NoError(t, err)
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("occupied room", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-id", Status: model.StatusOccupied}, nil)

		err := svc.Delete(context.Background(), "room-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-id", Status: model.StatusAvailable}, nil)

		set.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), "room-id")

		assert.NoError(t, err)
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("cache miss", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-id", Number: "101", Status: model.StatusAvailable}, nil)

		set.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "room-id")

		require.NoError(t, err)
		assert.Equal(t, "101", res.Number)
	})

	t.Run("not found", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
