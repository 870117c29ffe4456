package cache_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"spa/infras/otel/mocks"
	"spa/shared/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dayEntry struct {
	Date  string   `json:"date"`
	Rooms []string `json:"rooms"`
}

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, cache.RedisCache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() { _ = client.Close() })

	return mr, cache.NewRedisCache(client, mocks.NewOtel())
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	mr, redisCache := setupTestRedis(t)
	ctx := context.Background()

	entry := dayEntry{Date: "2025-03-01", Rooms: []string{"5", "02D"}}
	require.NoError(t, redisCache.Save(ctx, "appointment:day:2025-03-01", entry, 60))

	var got dayEntry
	require.NoError(t, redisCache.Get(ctx, "appointment:day:2025-03-01", &got))
	assert.Equal(t, entry, got)

	mr.FastForward(61 * time.Second)

	err := redisCache.Get(ctx, "appointment:day:2025-03-01", &got)
	require.Error(t, err)
	assert.ErrorIs(t, err, cache.Nil)
}

func TestRedisCache_StringValue(t *testing.T) {
	_, redisCache := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "status", "ok", 10))

	var got string
	require.NoError(t, redisCache.Get(ctx, "status", &got))
	assert.Equal(t, "ok", got)
}

func TestRedisCache_GetUnmarshalError(t *testing.T) {
	mr, redisCache := setupTestRedis(t)

	require.NoError(t, mr.Set("broken", "{not json"))

	var got dayEntry
	err := redisCache.Get(context.Background(), "broken", &got)
	assert.ErrorContains(t, err, "failed to unmarshal cache value")
}

func TestRedisCache_DeleteAndClear(t *testing.T) {
	mr, redisCache := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, redisCache.Save(ctx, "assignment:gets:1", "a", 60))
	require.NoError(t, redisCache.Save(ctx, "assignment:gets:2", "b", 60))
	require.NoError(t, redisCache.Save(ctx, "assignment:get:bk-1", "c", 60))

	require.NoError(t, redisCache.Delete(ctx, "assignment:get:bk-1"))
	assert.False(t, mr.Exists("assignment:get:bk-1"))

	require.NoError(t, redisCache.Clear(ctx, "assignment:gets*"))
	assert.False(t, mr.Exists("assignment:gets:1"))
	assert.False(t, mr.Exists("assignment:gets:2"))
}

func TestRedisCache_Increment(t *testing.T) {
	mr, redisCache := setupTestRedis(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := redisCache.Increment(ctx, "limiter:1.1.1.1", 60)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	assert.Equal(t, 60*time.Second, mr.TTL("limiter:1.1.1.1"))

	mr.FastForward(61 * time.Second)

	got, err := redisCache.Increment(ctx, "limiter:1.1.1.1", 60)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestRedisCache_MissIsNotTraced(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ot := mocks.NewOtel()
	redisCache := cache.NewRedisCache(client, ot)

	var got string
	require.ErrorIs(t, redisCache.Get(context.Background(), "absent", &got), cache.Nil)

	scope := ot.Find("cache.Get")
	require.NotNil(t, scope)
	assert.Empty(t, scope.Errors)
	assert.True(t, scope.Ended)
}

func TestRedisCache_ClearManyKeys(t *testing.T) {
	mr, redisCache := setupTestRedis(t)
	ctx := context.Background()

	for i := range 250 {
		require.NoError(t, mr.Set(fmt.Sprintf("assignment:gets:%d", i), "x"))
	}

	require.NoError(t, mr.Set("appointment:day:2025-03-01", "kept"))

	require.NoError(t, redisCache.Clear(ctx, "assignment:gets*"))

	assert.Equal(t, []string{"appointment:day:2025-03-01"}, mr.Keys())
}
