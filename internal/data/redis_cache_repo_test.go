package data

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/savelife/savelife-api/internal/testutil"
)

func TestRedisCacheRepo_Set_Get_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	repo := NewRedisCacheRepo(client)
	ctx := context.Background()

	t.Run("set and get", func(t *testing.T) {
		key := "test:blogs:list"
		value := []byte(`[{"id":"1"}]`)
		ttl := 5 * time.Minute

		err := repo.Set(ctx, key, value, ttl)
		require.NoError(t, err)

		result, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, value, result)

		actualTTL := client.TTL(ctx, key).Val()
		assert.True(t, actualTTL > 0 && actualTTL <= ttl)
	})

	t.Run("get non-existent key", func(t *testing.T) {
		result, err := repo.Get(ctx, "non:existent:key")
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("delete existing key", func(t *testing.T) {
		key := "test:blogs:delete"
		require.NoError(t, repo.Set(ctx, key, []byte("x"), time.Minute))

		deleted, err := repo.Delete(ctx, key)
		require.NoError(t, err)
		assert.True(t, deleted)

		result, err := repo.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("delete missing key", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "never:set")
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		assert.Error(t, repo.Set(ctx, "", []byte("x"), time.Minute))
		_, err := repo.Get(ctx, "")
		assert.Error(t, err)
		_, err = repo.Delete(ctx, "")
		assert.Error(t, err)
	})
}
