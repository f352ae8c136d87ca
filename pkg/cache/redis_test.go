package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client
}

func TestSetGet(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))

	got, err := c.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestGet_Missing(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestDelete(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
	require.NoError(t, c.Delete(ctx, "key"))

	_, err := c.Get(ctx, "key")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestDeletePattern(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "jobboard:open", "a", time.Minute))
	require.NoError(t, c.Set(ctx, "jobboard:all", "b", time.Minute))
	require.NoError(t, c.Set(ctx, "other", "c", time.Minute))

	require.NoError(t, c.DeletePattern(ctx, "jobboard:*"))

	_, err := c.Get(ctx, "jobboard:open")
	assert.ErrorIs(t, err, redis.Nil)
	_, err = c.Get(ctx, "jobboard:all")
	assert.ErrorIs(t, err, redis.Nil)

	got, err := c.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, "c", got)
}
