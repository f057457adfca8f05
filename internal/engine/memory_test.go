package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/z1gc/gorime/internal/engine"
	"github.com/z1gc/gorime/internal/history"
)

func TestMemoryOptions(t *testing.T) {
	m := engine.NewMemory(history.NewRing(0), nil)

	assert.False(t, m.GetOption("ascii_mode"))
	m.SetOption("ascii_mode", true)
	assert.True(t, m.GetOption("ascii_mode"))
}

func TestMemoryComposition(t *testing.T) {
	t.Run("push and commit", func(t *testing.T) {
		var committed []string
		hist := history.NewRing(0)
		m := engine.NewMemory(hist, func(text string) {
			committed = append(committed, text)
		})

		assert.False(t, m.IsComposing())
		m.PushInput('h')
		m.PushInput('i')
		require.True(t, m.IsComposing())
		assert.Equal(t, "hi", m.Preedit())

		m.Commit()
		assert.False(t, m.IsComposing())
		assert.Equal(t, []string{"hi"}, committed)
		assert.Equal(t, "hi", hist.LatestText())
	})

	t.Run("clear discards without committing", func(t *testing.T) {
		var committed []string
		m := engine.NewMemory(history.NewRing(0), func(text string) {
			committed = append(committed, text)
		})

		m.PushInput('x')
		m.Clear()
		assert.False(t, m.IsComposing())
		assert.Empty(t, committed)
	})

	t.Run("confirm commits the current selection", func(t *testing.T) {
		hist := history.NewRing(0)
		m := engine.NewMemory(hist, nil)

		m.PushInput('o')
		m.PushInput('k')
		m.ConfirmCurrentSelection()
		assert.False(t, m.IsComposing())
		assert.Equal(t, "ok", hist.LatestText())
	})

	t.Run("clear non-confirmed keeps the raw input", func(t *testing.T) {
		hist := history.NewRing(0)
		m := engine.NewMemory(hist, nil)

		m.PushInput('x')
		m.ClearNonConfirmedComposition()
		require.True(t, m.IsComposing())

		m.Commit()
		assert.Equal(t, "x", hist.LatestText())
	})

	t.Run("pop removes the last input character", func(t *testing.T) {
		m := engine.NewMemory(history.NewRing(0), nil)

		m.PushInput('a')
		m.PushInput('b')
		m.PopInput()
		assert.Equal(t, "a", m.Preedit())

		m.PopInput()
		m.PopInput()
		assert.False(t, m.IsComposing())
	})
}

func TestMemoryUpdates(t *testing.T) {
	t.Run("mutations notify subscribers synchronously", func(t *testing.T) {
		m := engine.NewMemory(history.NewRing(0), nil)

		var calls int
		cancel := m.OnUpdate(func() { calls++ })
		defer cancel()

		m.PushInput('a')
		m.Clear()
		assert.Equal(t, 2, calls)
	})

	t.Run("cancel detaches and is idempotent", func(t *testing.T) {
		m := engine.NewMemory(history.NewRing(0), nil)

		var calls int
		cancel := m.OnUpdate(func() { calls++ })
		cancel()
		cancel()

		m.PushInput('a')
		assert.Zero(t, calls)
	})

	t.Run("callbacks may cancel themselves while firing", func(t *testing.T) {
		m := engine.NewMemory(history.NewRing(0), nil)

		var calls int
		var cancel func()
		cancel = m.OnUpdate(func() {
			calls++
			cancel()
		})

		m.PushInput('a')
		m.PushInput('b')
		assert.Equal(t, 1, calls)
	})
}
