package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"balai/config"
	"balai/infras/otel/mocks"
	s3Mocks "balai/infras/s3/mocks"
	guestMocks "balai/internal/domains/guest/mocks"
	"balai/internal/domains/guest/model"
	"balai/internal/domains/guest/model/dto"
	"balai/internal/domains/guest/service"
	cacheMocks "balai/shared/cache/mocks"
	"balai/shared/constant"
	"balai/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type guestMockSet struct {
	repo  *guestMocks.MockGuest
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
}

func newGuestService(t *testing.T) (service.Guest, guestMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)

	set := guestMockSet{
		repo:  guestMocks.NewMockGuest(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(set.repo, cfg, set.cache, set.s3, mocks.NewOtel())

	return svc, set
}

func TestGuestService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, set := newGuestService(t)

		var inserted model.Guest

		set.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, guest model.Guest) error {
				inserted = guest

				return nil
			})

		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		req := dto.CreateGuestRequest{
			FirstName: "Maria",
			LastName:  "Santos",
			Email:     "maria.santos@example.com",
			Phone:     "+639171234567",
			IDType:    "Philippine Passport",
			IDNumber:  "P1234567A",
		}

		res, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, "Maria", res.FirstName)
		assert.Equal(t, "test-user-id", inserted.CreatedBy)
	})

	t.Run("unsupported id type", func(t *testing.T) {
		svc, _ := newGuestService(t)

		_, err := svc.Create(context.Background(), dto.CreateGuestRequest{
			FirstName: "Maria",
			LastName:  "Santos",
			IDType:    "Library Card",
			IDNumber:  "L-001",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("insert error", func(t *testing.T) {
		svc, set := newGuestService(t)

		set.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(context.Background(), dto.CreateGuestRequest{
			FirstName: "Maria",
			LastName:  "Santos",
			IDType:    "UMID",
			IDNumber:  "0011-2233445-6",
		})

		assert.Error(t, err)
	})
}

func TestGuestService_Get(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, set := newGuestService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), "guest:get:guest-id", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.GuestResponse)
				require.True(t, ok)
				res.ID = "guest-id"
				res.FirstName = "Maria"

				return nil
			})

		res, err := svc.Get(context.Background(), "guest-id")

		require.NoError(t, err)
		assert.Equal(t, "Maria", res.FirstName)
	})

	t.Run("cache miss", func(t *testing.T) {
		svc, set := newGuestService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "guest-id", FirstName: "Maria", LastName: "Santos"}, nil)

		set.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "guest-id")

		require.NoError(t, err)
		assert.Equal(t, "Santos", res.LastName)
	})

	t.Run("not found", func(t *testing.T) {
		svc, set := newGuestService(t)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestGuestService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, set := newGuestService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{Phone: "+639170000000"}, "guest-id")

		assert.NoError(t, err)
	})

	t.Run("empty request", func(t *testing.T) {
		svc, _ := newGuestService(t)

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{}, "guest-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		svc, set := newGuestService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(context.Background(), dto.UpdateGuestRequest{Notes: "VIP"}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestGuestService_UploadDocument(t *testing.T) {
	t.Run("replaces the previous document", func(t *testing.T) {
		svc, set := newGuestService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "guest-id", DocumentURL: "https://bucket.s3.amazonaws.com/guest-documents/old.jpg"}, nil)

		set.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), "guest-documents", gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://bucket.s3.amazonaws.com/guest-documents/new.jpg", nil)

		set.s3.EXPECT().
			GetObjectNameFromURL(gomock.Any(), "https://bucket.s3.amazonaws.com/guest-documents/old.jpg").
			Return("old.jpg")

		set.s3.EXPECT().
			DeleteFile(gomock.Any(), gomock.Any(), "guest-documents", "old.jpg").
			Return(nil)

		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		fileHeader := &multipart.FileHeader{Filename: "passport.jpg"}

		res, err := svc.UploadDocument(context.Background(), "guest-id", nil, fileHeader)

		require.NoError(t, err)
		assert.Equal(t, "https://bucket.s3.amazonaws.com/guest-documents/new.jpg", res.DocumentURL)
	})

	t.Run("guest not found", func(t *testing.T) {
		svc, set := newGuestService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		_, err := svc.UploadDocument(context.Background(), "missing-id", nil, &multipart.FileHeader{Filename: "passport.jpg"})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestGuestService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, set := newGuestService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		set.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		set.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		set.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), "guest-id")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, set := newGuestService(t)

		set.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(context.Background(), "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
