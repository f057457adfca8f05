package composer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/z1gc/gorime/internal/composer"
	"github.com/z1gc/gorime/internal/keys"
)

func TestTempAsciiEntry(t *testing.T) {
	t.Run("uppercase while idle enters the mode and is swallowed", func(t *testing.T) {
		h := defaultHarness(t)
		h.ctx.History().Push("stale")

		ev := press('A')
		ev.Shift = true
		assert.Equal(t, composer.Reject, h.comp.ProcessKey(ev))

		assert.True(t, h.tempAscii())
		// entering always clears the history
		assert.Empty(t, h.ctx.History().LatestText())
	})

	t.Run("lowercase while idle stays out of the mode", func(t *testing.T) {
		h := defaultHarness(t)

		assert.Equal(t, composer.Pass, h.comp.ProcessKey(press('a')))
		assert.False(t, h.tempAscii())
	})

	t.Run("mandatory transform keys never enter the mode", func(t *testing.T) {
		h := defaultHarness(t)

		for _, ch := range []int{keys.Comma, '^', keys.Backslash, keys.QuoteDbl, keys.Exclam, keys.Question, keys.Semicolon} {
			ev := press(ch)
			assert.Equal(t, composer.Pass, h.comp.ProcessKey(ev), "key %q", keys.KeysymName(ch))
			assert.False(t, h.tempAscii(), "key %q", keys.KeysymName(ch))
		}
	})

	t.Run("code punctuation while idle stays out of the mode", func(t *testing.T) {
		h := defaultHarness(t)

		for _, ch := range []int{keys.Period, keys.Apostrophe, '<', '>', ':', '(', ')', '[', ']', '{', '}'} {
			assert.Equal(t, composer.Pass, h.comp.ProcessKey(press(ch)), "key %q", keys.KeysymName(ch))
			assert.False(t, h.tempAscii(), "key %q", keys.KeysymName(ch))
		}
	})

	t.Run("return after an all-ascii commit enters the mode", func(t *testing.T) {
		h := defaultHarness(t)
		h.ctx.History().Push("abc")
		h.ctx.PushInput('x') // still composing

		assert.Equal(t, composer.Pass, h.comp.ProcessKey(press(keys.Return)))
		assert.True(t, h.tempAscii())
		// entering cleared the history again
		assert.Empty(t, h.ctx.History().LatestText())
	})

	t.Run("return after a native commit stays out", func(t *testing.T) {
		h := defaultHarness(t)
		h.ctx.History().Push("ab中")
		h.ctx.PushInput('x')

		assert.Equal(t, composer.Pass, h.comp.ProcessKey(press(keys.Return)))
		assert.False(t, h.tempAscii())
	})

	t.Run("release and erase keys are always ignored", func(t *testing.T) {
		h := defaultHarness(t)

		assert.Equal(t, composer.Pass, h.comp.ProcessKey(release('A')))
		assert.Equal(t, composer.Pass, h.comp.ProcessKey(press(keys.BackSpace)))
		assert.Equal(t, composer.Pass, h.comp.ProcessKey(press(keys.Delete)))
		assert.False(t, h.tempAscii())
	})
}

func enterTempAscii(t *testing.T, h *harness) {
	t.Helper()
	ev := press('A')
	ev.Shift = true
	require.Equal(t, composer.Reject, h.comp.ProcessKey(ev))
	require.True(t, h.tempAscii())
}

func TestTempAsciiWhileOn(t *testing.T) {
	t.Run("printable keys are rejected for direct commit", func(t *testing.T) {
		h := defaultHarness(t)
		enterTempAscii(t, h)

		assert.Equal(t, composer.Reject, h.comp.ProcessKey(press('x')))
		assert.True(t, h.tempAscii())
	})

	t.Run("space leaves the mode and passes through", func(t *testing.T) {
		h := defaultHarness(t)
		enterTempAscii(t, h)
		h.ctx.History().Push("stale")

		assert.Equal(t, composer.Pass, h.comp.ProcessKey(press(keys.Space)))
		assert.False(t, h.tempAscii())
		// leaving clears the history too
		assert.Empty(t, h.ctx.History().LatestText())
	})

	t.Run("mandatory transform keys leave the mode", func(t *testing.T) {
		h := defaultHarness(t)
		enterTempAscii(t, h)

		assert.Equal(t, composer.Pass, h.comp.ProcessKey(press(keys.QuoteDbl)))
		assert.False(t, h.tempAscii())
	})

	t.Run("code punctuation stays inside the mode", func(t *testing.T) {
		h := defaultHarness(t)
		enterTempAscii(t, h)

		// optional transform keys only matter while off
		assert.Equal(t, composer.Reject, h.comp.ProcessKey(press(keys.Period)))
		assert.True(t, h.tempAscii())
	})

	t.Run("non-printable keys leave the mode", func(t *testing.T) {
		h := defaultHarness(t)
		enterTempAscii(t, h)

		assert.Equal(t, composer.Pass, h.comp.ProcessKey(press(keys.Escape)))
		assert.False(t, h.tempAscii())
	})

	t.Run("every key is ignored while composing", func(t *testing.T) {
		h := defaultHarness(t)
		enterTempAscii(t, h)
		h.ctx.PushInput('x')

		// a Return mid-composition must not drop the sub-mode
		assert.Equal(t, composer.Pass, h.comp.ProcessKey(press(keys.Return)))
		assert.True(t, h.tempAscii())

		assert.Equal(t, composer.Pass, h.comp.ProcessKey(press(keys.Space)))
		assert.True(t, h.tempAscii())

		assert.Equal(t, composer.Pass, h.comp.ProcessKey(press('q')))
		assert.True(t, h.tempAscii())
	})
}

func TestShiftSpace(t *testing.T) {
	t.Run("shift+space commits a literal space in any mode", func(t *testing.T) {
		h := defaultHarness(t)
		enterTempAscii(t, h)

		ev := press(keys.Space)
		ev.Shift = true
		assert.Equal(t, composer.Pass, h.comp.ProcessKey(ev))
		// the mode survives: this was not an exit
		assert.True(t, h.tempAscii())
	})
}
