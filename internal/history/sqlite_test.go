package history_test

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/z1gc/gorime/internal/history"
)

func openTestStore(t *testing.T) *history.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := history.Open(path, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestStore(t *testing.T) {
	t.Run("latest of empty is empty", func(t *testing.T) {
		store := openTestStore(t)
		assert.Empty(t, store.LatestText())
	})

	t.Run("push and latest round-trip", func(t *testing.T) {
		store := openTestStore(t)
		store.Push("hello")
		store.Push("world")
		assert.Equal(t, "world", store.LatestText())
	})

	t.Run("clear empties the store", func(t *testing.T) {
		store := openTestStore(t)
		store.Push("a")
		store.Clear()
		assert.Empty(t, store.LatestText())
	})

	t.Run("entries survive reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.db")
		store, err := history.Open(path, zerolog.Nop())
		require.NoError(t, err)
		store.Push("persisted")
		require.NoError(t, store.Close())

		store, err = history.Open(path, zerolog.Nop())
		require.NoError(t, err)
		defer store.Close()
		assert.Equal(t, "persisted", store.LatestText())
	})
}
