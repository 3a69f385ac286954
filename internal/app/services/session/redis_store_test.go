package session

import (
	"context"
	"errors"
	"testing"

	"pacientes-service/internal/app/contracts"
	"pacientes-service/internal/pkg/exceptions"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (contracts.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return NewRedisStore(client), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		store, _ := newTestRedisStore(t)

		require.NoError(t, store.Set(ctx, "@patient_data", `{"dni":"30123456"}`))

		value, err := store.Get(ctx, "@patient_data")
		require.NoError(t, err)
		assert.Equal(t, `{"dni":"30123456"}`, value)
	})

	t.Run("Missing Key", func(t *testing.T) {
		store, _ := newTestRedisStore(t)

		_, err := store.Get(ctx, "@patient_data")
		assert.True(t, errors.Is(err, contracts.ErrKeyNotFound))
	})

	t.Run("Delete Removes Key", func(t *testing.T) {
		store, _ := newTestRedisStore(t)
		require.NoError(t, store.Set(ctx, "@patient_data", "value"))

		require.NoError(t, store.Delete(ctx, "@patient_data"))

		_, err := store.Get(ctx, "@patient_data")
		assert.True(t, errors.Is(err, contracts.ErrKeyNotFound))
	})

	t.Run("Delete Missing Key Is Not An Error", func(t *testing.T) {
		store, _ := newTestRedisStore(t)
		assert.NoError(t, store.Delete(ctx, "@patient_data"))
	})

	t.Run("Overwrite Replaces Value", func(t *testing.T) {
		store, _ := newTestRedisStore(t)
		require.NoError(t, store.Set(ctx, "@app_theme", "light"))
		require.NoError(t, store.Set(ctx, "@app_theme", "dark"))

		value, err := store.Get(ctx, "@app_theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", value)
	})

	t.Run("Session Keys Carry No TTL", func(t *testing.T) {
		store, mr := newTestRedisStore(t)
		require.NoError(t, store.Set(ctx, "@patient_data", "value"))

		assert.Zero(t, mr.TTL("@patient_data"))
	})

	t.Run("Unavailable Server Is A Storage Error Not Absence", func(t *testing.T) {
		store, mr := newTestRedisStore(t)
		require.NoError(t, store.Set(ctx, "@patient_data", "value"))
		mr.Close()

		_, err := store.Get(ctx, "@patient_data")
		require.Error(t, err)
		assert.False(t, errors.Is(err, contracts.ErrKeyNotFound))
		assert.True(t, exceptions.IsKind(err, exceptions.KindPersistence))

		assert.True(t, exceptions.IsKind(store.Set(ctx, "@patient_data", "value"), exceptions.KindPersistence))
		assert.True(t, exceptions.IsKind(store.Delete(ctx, "@patient_data"), exceptions.KindPersistence))
	})
}
