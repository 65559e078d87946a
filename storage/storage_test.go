package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CreativeUnicorns/switcherprefs"
)

// runBackendTests exercises the behavior every backend shares.
func runBackendTests(t *testing.T, newBackend func(t *testing.T) switcherprefs.Backend) {
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		b := newBackend(t)
		_, err := b.Get(ctx, "holdShortcut")
		assert.ErrorIs(t, err, switcherprefs.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, b.Set(ctx, "holdShortcut", "⌘"))
		v, err := b.Get(ctx, "holdShortcut")
		require.NoError(t, err)
		assert.Equal(t, "⌘", v)
	})

	t.Run("overwrite", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, b.Set(ctx, "rowsCount", "4"))
		require.NoError(t, b.Set(ctx, "rowsCount", "6"))
		v, err := b.Get(ctx, "rowsCount")
		require.NoError(t, err)
		assert.Equal(t, "6", v)
	})

	t.Run("empty value is kept", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, b.Set(ctx, "holdShortcut", ""))
		v, err := b.Get(ctx, "holdShortcut")
		require.NoError(t, err)
		assert.Equal(t, "", v)
	})

	t.Run("empty key", func(t *testing.T) {
		b := newBackend(t)
		assert.ErrorIs(t, b.Set(ctx, "", "x"), switcherprefs.ErrInvalidKey)
	})

	t.Run("delete", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, b.Set(ctx, "iconSize", "5"))
		require.NoError(t, b.Delete(ctx, "iconSize"))
		_, err := b.Get(ctx, "iconSize")
		assert.ErrorIs(t, err, switcherprefs.ErrNotFound)
		assert.ErrorIs(t, b.Delete(ctx, "iconSize"), switcherprefs.ErrNotFound)
	})

	t.Run("get all and delete all", func(t *testing.T) {
		b := newBackend(t)
		require.NoError(t, b.Set(ctx, "appearanceStyle", "1"))
		require.NoError(t, b.Set(ctx, "appearanceSize", "2"))

		all, err := b.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"appearanceStyle": "1", "appearanceSize": "2"}, all)

		all["appearanceStyle"] = "mutated"
		v, err := b.Get(ctx, "appearanceStyle")
		require.NoError(t, err)
		assert.Equal(t, "1", v, "GetAll must return a copy")

		require.NoError(t, b.DeleteAll(ctx))
		all, err = b.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
