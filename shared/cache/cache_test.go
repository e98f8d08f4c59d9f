package cache_test

import (
	"context"
	"testing"

	"balai/infras/otel/mocks"
	"balai/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() {
		_ = client.Close()
	})

	return cache.NewRedisCache(client, mocks.NewOtel()), mr
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	redisCache, _ := newTestCache(t)
	ctx := context.Background()

	t.Run("string value", func(t *testing.T) {
		require.NoError(t, redisCache.Save(ctx, "guest:get:1", "cached-value", 60))

		var value string
		require.NoError(t, redisCache.Get(ctx, "guest:get:1", &value))
		assert.Equal(t, "cached-value", value)
	})

	t.Run("struct value", func(t *testing.T) {
		type payload struct {
			Number string `json:"number"`
			Total  int    `json:"total"`
		}

		require.NoError(t, redisCache.Save(ctx, "invoice:get:1", payload{Number: "INV-1", Total: 3}, 60))

		var value payload
		require.NoError(t, redisCache.Get(ctx, "invoice:get:1", &value))
		assert.Equal(t, payload{Number: "INV-1", Total: 3}, value)
	})

	t.Run("missing key", func(t *testing.T) {
		var value string
		err := redisCache.Get(ctx, "missing", &value)
		assert.ErrorIs(t, err, cache.Nil)
	})
}

func TestRedisCache_Delete(t *testing.T) {
	redisCache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "room:get:1", "value", 60))
	require.NoError(t, redisCache.Delete(ctx, "room:get:1"))

	assert.False(t, mr.Exists("room:get:1"))
}

func TestRedisCache_Clear(t *testing.T) {
	redisCache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "room:get:1", "value", 60))
	require.NoError(t, redisCache.Save(ctx, "room:gets:abc", "value", 60))
	require.NoError(t, redisCache.Save(ctx, "guest:get:1", "value", 60))

	require.NoError(t, redisCache.Clear(ctx, "room:*"))

	assert.False(t, mr.Exists("room:get:1"))
	assert.False(t, mr.Exists("room:gets:abc"))
	assert.True(t, mr.Exists("guest:get:1"))
}
