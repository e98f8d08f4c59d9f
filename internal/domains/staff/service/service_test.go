package service_test

import (
	"context"
	"net/http"
	"testing"

	"balai/config"
	"balai/infras/otel/mocks"
	staffMocks "balai/internal/domains/staff/mocks"
	"balai/internal/domains/staff/model"
	"balai/internal/domains/staff/model/dto"
	"balai/internal/domains/staff/service"
	cacheMocks "balai/shared/cache/mocks"
	"balai/shared/constant"
	"balai/shared/failure"
	"balai/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type staffMockSet struct {
	repo  *staffMocks.MockStaff
	cache *cacheMocks.MockRedisCache
}

func newStaffService(t *testing.T) (service.Staff, staffMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := staffMockSet{
		repo:  staffMocks.NewMockStaff(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func TestStaffService_Create(t *testing.T) {
	req := dto.CreateStaffRequest{
		FirstName: "Liza",
		LastName:  "Reyes",
		Email:     "frontdesk@example.com",
		Role:      "receptionist",
		HireDate:  "2025-01-15",
		Password:  "secret-password",
	}

	t.Run("success", func(t *testing.T) {
		svc, set := newStaffService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		var inserted model.Staff

		set.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, staff model.Staff) error {
				inserted = staff

				return nil
			})

		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

		res, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, model.StatusActive, res.Status)
		assert.Equal(t, "2025-01-15", res.HireDate)
		assert.NoError(t, password.Verify("secret-password", inserted.PasswordHash))
	})

	t.Run("email already taken", func(t *testing.T) {
		svc, set := newStaffService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestStaffService_Update(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		svc, set := newStaffService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Update(context.Background(), dto.UpdateStaffRequest{Status: model.StatusInactive}, "staff-id")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, set := newStaffService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateStaffRequest{Role: "manager"}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestStaffService_Delete(t *testing.T) {
	t.Run("own account", func(t *testing.T) {
		svc, _ := newStaffService(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-id")

		err := svc.Delete(ctx, "staff-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		svc, set := newStaffService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")

		err := svc.Delete(ctx, "staff-id")

		assert.NoError(t, err)
	})
}
