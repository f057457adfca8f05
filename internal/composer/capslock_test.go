package composer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/z1gc/gorime/internal/composer"
	"github.com/z1gc/gorime/internal/keys"
)

func capsPress(caps bool) keys.Event {
	return keys.Event{Keycode: keys.CapsLock, Caps: caps}
}

func conventionalHarness(t *testing.T) *harness {
	return newHarness(t, composer.Config{
		SwitchKey:            testSwitchKey(),
		GoodOldCapsLock:      true,
		CapsPolarityInverted: true,
	})
}

func TestConventionalCapsLock(t *testing.T) {
	t.Run("press toggles toward the asserted direction", func(t *testing.T) {
		h := conventionalHarness(t)

		// caps modifier still clear on the press that engages it
		assert.Equal(t, composer.Accept, h.comp.ProcessKey(capsPress(false)))
		assert.True(t, h.asciiMode())
	})

	t.Run("two consecutive presses restore the original mode", func(t *testing.T) {
		h := conventionalHarness(t)

		h.comp.ProcessKey(capsPress(false))
		require.True(t, h.asciiMode())
		h.comp.ProcessKey(capsPress(true))
		assert.False(t, h.asciiMode())
	})

	t.Run("release never fires the toggle", func(t *testing.T) {
		h := conventionalHarness(t)

		ev := capsPress(false)
		ev.Release = true
		assert.Equal(t, composer.Reject, h.comp.ProcessKey(ev))
		assert.False(t, h.asciiMode())
	})

	t.Run("caps lock cannot override a mode picked by another key", func(t *testing.T) {
		h := conventionalHarness(t)

		// enter ascii mode with a shift tap, not with caps lock
		h.comp.ProcessKey(press(keys.ShiftL))
		h.comp.ProcessKey(release(keys.ShiftL))
		require.True(t, h.asciiMode())

		// caps lock is suppressed until it has been used to claim the mode
		assert.Equal(t, composer.Reject, h.comp.ProcessKey(capsPress(false)))
		assert.True(t, h.asciiMode())
	})

	t.Run("polarity knob controls the inversion", func(t *testing.T) {
		h := newHarness(t, composer.Config{
			SwitchKey:            testSwitchKey(),
			GoodOldCapsLock:      true,
			CapsPolarityInverted: false,
		})

		// post-toggle platforms report caps already set on the engaging press
		h.comp.ProcessKey(capsPress(true))
		assert.True(t, h.asciiMode())
	})
}

func TestIgnoredCapsLock(t *testing.T) {
	t.Run("letters typed under caps are case-corrected and committed", func(t *testing.T) {
		h := defaultHarness(t)

		ev := press('a')
		ev.Caps = true
		assert.Equal(t, composer.Accept, h.comp.ProcessKey(ev))
		assert.Equal(t, []string{"A"}, h.committed)
		assert.False(t, h.ctx.IsComposing())

		ev = press('Z')
		ev.Caps = true
		ev.Shift = true
		assert.Equal(t, composer.Accept, h.comp.ProcessKey(ev))
		assert.Equal(t, []string{"A", "z"}, h.committed)
	})

	t.Run("non-alphabetic keys under caps are rejected", func(t *testing.T) {
		h := defaultHarness(t)

		ev := press('5')
		ev.Caps = true
		assert.Equal(t, composer.Reject, h.comp.ProcessKey(ev))
		assert.Empty(t, h.committed)
	})

	t.Run("releases under caps are rejected", func(t *testing.T) {
		h := defaultHarness(t)

		ev := release('a')
		ev.Caps = true
		assert.Equal(t, composer.Reject, h.comp.ProcessKey(ev))
		assert.Empty(t, h.committed)
	})

	t.Run("mode toggle still works on the caps key itself", func(t *testing.T) {
		h := defaultHarness(t)

		assert.Equal(t, composer.Accept, h.comp.ProcessKey(capsPress(false)))
		assert.True(t, h.asciiMode())
	})
}

func TestCapsLockStyleDerivation(t *testing.T) {
	t.Run("inline style is remapped to clear for caps lock", func(t *testing.T) {
		h := newHarness(t, composer.Config{
			SwitchKey:            map[string]string{"Caps_Lock": "inline_ascii"},
			CapsPolarityInverted: true,
		})
		h.ctx.PushInput('n')

		h.comp.ProcessKey(capsPress(false))

		// a held modifier cannot convert inline: the composition is discarded
		assert.False(t, h.ctx.IsComposing())
		assert.Empty(t, h.committed)
		assert.True(t, h.asciiMode())
	})

	t.Run("without a caps binding the caps key is not ours", func(t *testing.T) {
		h := newHarness(t, composer.Config{
			SwitchKey:            map[string]string{"Shift_L": "inline_ascii"},
			CapsPolarityInverted: true,
		})

		assert.Equal(t, composer.Pass, h.comp.ProcessKey(capsPress(false)))
		assert.False(t, h.asciiMode())
	})
}
