package department

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "classhub:last-department:")
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Set(ctx, userID, "dept-456"))

	id, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "dept-456", id)
}

func TestRedisStore_Overwrite(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Set(ctx, userID, "dept-1"))
	require.NoError(t, store.Set(ctx, userID, "dept-2"))

	id, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "dept-2", id)
}

func TestRedisStore_Missing(t *testing.T) {
	store := newRedisStore(t)

	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_KeysAreScopedPerUser(t *testing.T) {
	store := newRedisStore(t)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, store.Set(ctx, alice, "dept-1"))

	_, err := store.Get(ctx, bob)
	assert.ErrorIs(t, err, ErrNotFound)
}
