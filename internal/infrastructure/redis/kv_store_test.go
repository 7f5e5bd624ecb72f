package redis_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	infraredis "github.com/jhoicas/pope-market/internal/infrastructure/redis"
)

// Requiere un Redis real: TEST_REDIS_URL=redis://localhost:6379/15
func TestKVStore_Redis(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL no definido")
	}
	ctx := context.Background()
	prefix := "pope_test_" + uuid.NewString()[:8] + "_"
	kv, err := infraredis.NewKVStore(ctx, url, prefix)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	raw, err := kv.Get(ctx, "users")
	require.NoError(t, err)
	assert.Nil(t, raw, "redis.Nil → nil")

	require.NoError(t, kv.SetMany(ctx, map[string][]byte{
		"users": []byte(`[{"id":"u1"}]`), "currentUser": []byte("null"),
	}))
	raw, err = kv.Get(ctx, "users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"u1"}]`, string(raw))

	require.NoError(t, kv.Set(ctx, "currentUser", []byte(`{"id":"u1"}`)))
	raw, err = kv.Get(ctx, "currentUser")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1"}`, string(raw))
}

func TestNewKVStore_BadURL(t *testing.T) {
	_, err := infraredis.NewKVStore(context.Background(), "no-es-una-url", "")
	require.Error(t, err)
}
