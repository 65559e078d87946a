package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CreativeUnicorns/switcherprefs"
)

func TestMemoryStorage(t *testing.T) {
	runBackendTests(t, func(t *testing.T) switcherprefs.Backend {
		return NewMemoryStorage()
	})
}

func TestNewMemoryStorageFrom(t *testing.T) {
	seed := map[string]string{"preferencesVersion": "6.40.0"}
	storage := NewMemoryStorageFrom(seed)
	seed["preferencesVersion"] = "changed"

	v, err := storage.Get(context.Background(), "preferencesVersion")
	require.NoError(t, err)
	assert.Equal(t, "6.40.0", v)
}

func TestMemoryStorage_Close(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := context.Background()

	t.Run("idempotent close", func(t *testing.T) {
		assert.NoError(t, storage.Close())
		assert.NoError(t, storage.Close())
	})

	t.Run("operations after close", func(t *testing.T) {
		_, err := storage.Get(ctx, "k")
		assert.ErrorIs(t, err, switcherprefs.ErrStorageUnavailable)
		assert.ErrorIs(t, storage.Set(ctx, "k", "v"), switcherprefs.ErrStorageUnavailable)
		assert.ErrorIs(t, storage.Delete(ctx, "k"), switcherprefs.ErrStorageUnavailable)
		_, err = storage.GetAll(ctx)
		assert.ErrorIs(t, err, switcherprefs.ErrStorageUnavailable)
		assert.ErrorIs(t, storage.DeleteAll(ctx), switcherprefs.ErrStorageUnavailable)
	})
}

func TestMemoryStorage_Concurrent(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := switcherprefs.KeyHoldShortcut.At(i % switcherprefs.MaxProfiles).Name()
			_ = storage.Set(ctx, key, "⌥")
			_, _ = storage.Get(ctx, key)
			_, _ = storage.GetAll(ctx)
		}(i)
	}
	wg.Wait()

	all, err := storage.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, switcherprefs.MaxProfiles)
}
