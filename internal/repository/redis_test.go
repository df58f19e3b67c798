package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/MOTBooker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewRedisClient(config.RedisConfig{Addr: mr.Addr(), PoolSize: 2})
	t.Cleanup(func() { _ = Close(client) })
	return mr, client
}

func TestPing(t *testing.T) {
	_, client := newTestRedis(t)

	assert.NoError(t, Ping(context.Background(), client))
}

func TestDisabledDatesCache_MissThenHit(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewDisabledDatesCache(client, time.Hour)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, 2024, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, 2024, 5, []string{"2024-05-01", "2024-05-06"}))

	dates, ok, err := cache.Get(ctx, 2024, 5)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"2024-05-01", "2024-05-06"}, dates)
	assert.True(t, mr.Exists("motbooker:disabled_dates:2024-05"))
	assert.Equal(t, time.Hour, mr.TTL("motbooker:disabled_dates:2024-05"))
}

func TestDisabledDatesCache_EmptyMonthIsAHit(t *testing.T) {
	_, client := newTestRedis(t)
	cache := NewDisabledDatesCache(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 2024, 6, nil))

	dates, ok, err := cache.Get(ctx, 2024, 6)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, dates)
}

func TestDisabledDatesCache_Expires(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewDisabledDatesCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 2024, 5, []string{"2024-05-01"}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, 2024, 5)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDisabledDatesCache_CorruptValue(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewDisabledDatesCache(client, time.Hour)

	require.NoError(t, mr.Set("motbooker:disabled_dates:2024-05", "not json"))

	_, ok, err := cache.Get(context.Background(), 2024, 5)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestFormSessionStore(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewFormSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Exclude(ctx, "sess-1", "2024-05-09"))
	require.NoError(t, store.Exclude(ctx, "sess-1", "2024-05-02"))
	require.NoError(t, store.Exclude(ctx, "sess-1", "2024-05-09"))
	require.NoError(t, store.Exclude(ctx, "sess-2", "2024-05-03"))

	dates, err := store.Excluded(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-02", "2024-05-09"}, dates)
	assert.Equal(t, 30*time.Minute, mr.TTL("motbooker:form_session:sess-1:excluded"))

	none, err := store.Excluded(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFormSessionStore_SessionExpires(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewFormSessionStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Exclude(ctx, "sess-1", "2024-05-09"))
	mr.FastForward(2 * time.Minute)

	dates, err := store.Excluded(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, dates)
}
