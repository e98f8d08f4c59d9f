package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"balai/config"
	"balai/infras/otel/mocks"
	catalogMocks "balai/internal/domains/catalog/mocks"
	"balai/internal/domains/catalog/model"
	"balai/internal/domains/catalog/model/dto"
	"balai/internal/domains/catalog/service"
	cacheMocks "balai/shared/cache/mocks"
	"balai/shared/constant"
	"balai/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type catalogMockSet struct {
	repo  *catalogMocks.MockService
	cache *cacheMocks.MockRedisCache
}

func newCatalogService(t *testing.T) (service.Catalog, catalogMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := catalogMockSet{
		repo:  catalogMocks.NewMockService(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, cfg, set.cache, mocks.NewOtel())

	return svc, set
}

func TestCatalogService_Create(t *testing.T) {
	svc, set := newCatalogService(t)

	set.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil)

	set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	res, err := svc.Create(ctx, dto.CreateServiceRequest{
		Name:      "Breakfast",
		Category:  "food",
		UnitPrice: 350,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.True(t, res.Active)
	assert.Equal(t, 350.0, res.UnitPrice)
}

func TestCatalogService_Get(t *testing.T) {
	t.Run("cache miss", func(t *testing.T) {
		svc, set := newCatalogService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Service{ID: "service-id", Name: "Laundry", UnitPrice: 200, Active: true}, nil)

		set.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "service-id")

		require.NoError(t, err)
		assert.Equal(t, "Laundry", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		svc, set := newCatalogService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Service{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCatalogService_Update(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		svc, set := newCatalogService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		var updatedFields map[string]any

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				updatedFields = fields

				return nil
			})

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		inactive := false

		err := svc.Update(context.Background(), dto.UpdateServiceRequest{Active: &inactive}, "service-id")

		require.NoError(t, err)
		assert.Contains(t, updatedFields, model.FieldActive)
	})

	t.Run("not found", func(t *testing.T) {
		svc, set := newCatalogService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateServiceRequest{Name: "Dinner"}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCatalogService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, set := newCatalogService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), "service-id")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, set := newCatalogService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
