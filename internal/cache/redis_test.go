package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/milk-tracker/internal/config"
	"github.com/magabrotheeeer/milk-tracker/internal/models"
)

func setupTestCache(t *testing.T) *Cache {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	cfg := config.RedisConnection{
		AddressRedis: mr.Addr(),
	}

	cache, err := InitServer(context.Background(), cfg)
	require.NoError(t, err)
	return cache
}

func TestSetAndGet(t *testing.T) {
	cache := setupTestCache(t)

	expected := models.Herd{ID: 7, Name: "North", CowCount: 10, UserID: 1}
	err := cache.Set("herd:7:user:1", expected, time.Minute)
	require.NoError(t, err)

	var actual models.Herd
	found, err := cache.Get("herd:7:user:1", &actual)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, expected.Name, actual.Name)
	assert.Equal(t, expected.CowCount, actual.CowCount)
}

func TestGetNotFound(t *testing.T) {
	cache := setupTestCache(t)

	var out models.Herd
	found, err := cache.Get("no_such_key", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	cache := setupTestCache(t)

	require.NoError(t, cache.Set("herd:7:user:1", models.Herd{ID: 7}, time.Minute))
	require.NoError(t, cache.Invalidate("herd:7:user:1"))

	var out models.Herd
	found, err := cache.Get("herd:7:user:1", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInitServer_BadAddress(t *testing.T) {
	cfg := config.RedisConnection{
		AddressRedis: "127.0.0.1:1",
		DialTimeout:  100 * time.Millisecond,
	}
	_, err := InitServer(context.Background(), cfg)
	assert.Error(t, err)
}
