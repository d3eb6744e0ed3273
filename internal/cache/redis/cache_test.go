package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/filesmanager-server/internal/model"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCache(client), srv
}

func TestCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "auth_abc", "user-1", time.Hour))

	v, err := c.Get(ctx, "auth_abc")
	require.NoError(t, err)
	assert.Equal(t, "user-1", v)
}

func TestCache_GetMissing(t *testing.T) {
	c, _ := newTestCache(t)

	_, err := c.Get(context.Background(), "auth_missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCache_Expiry(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "auth_abc", "user-1", model.SessionTTL))
	assert.Equal(t, model.SessionTTL, srv.TTL("auth_abc"))

	srv.FastForward(model.SessionTTL + time.Second)

	_, err := c.Get(ctx, "auth_abc")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCache_DeleteIsIdempotent(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))
	require.NoError(t, c.Delete(ctx, "k"))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCache_Unreachable(t *testing.T) {
	c, srv := newTestCache(t)
	srv.Close()

	ctx := context.Background()
	assert.Error(t, c.Ping(ctx))

	_, err := c.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrNotFound)
}
