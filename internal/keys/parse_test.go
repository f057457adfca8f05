package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/z1gc/gorime/internal/keys"
)

func TestParse(t *testing.T) {
	t.Run("single printable character names itself", func(t *testing.T) {
		ev, err := keys.Parse("a")
		require.NoError(t, err)
		assert.Equal(t, int('a'), ev.Keycode)
		assert.Equal(t, keys.ModNone, ev.Modifier())
	})

	t.Run("named keysyms", func(t *testing.T) {
		cases := map[string]int{
			"space":       keys.Space,
			"Caps_Lock":   keys.CapsLock,
			"Shift_L":     keys.ShiftL,
			"Shift_R":     keys.ShiftR,
			"Control_R":   keys.ControlR,
			"Eisu_toggle": keys.EisuToggle,
			"Return":      keys.Return,
			"BackSpace":   keys.BackSpace,
		}
		for name, want := range cases {
			ev, err := keys.Parse(name)
			require.NoError(t, err, name)
			assert.Equal(t, want, ev.Keycode, name)
		}
	})

	t.Run("modifier prefixes set modifier bits", func(t *testing.T) {
		ev, err := keys.Parse("Shift+a")
		require.NoError(t, err)
		assert.True(t, ev.Shift)
		assert.NotEqual(t, keys.ModNone, ev.Modifier())

		ev, err = keys.Parse("Control+Release+k")
		require.NoError(t, err)
		assert.True(t, ev.Ctrl)
		assert.True(t, ev.Release)
	})

	t.Run("release counts as a modifier", func(t *testing.T) {
		ev, err := keys.Parse("Release+space")
		require.NoError(t, err)
		assert.NotEqual(t, keys.ModNone, ev.Modifier())
	})

	t.Run("names match case-insensitively", func(t *testing.T) {
		// config sources may fold key case
		for repr, want := range map[string]int{
			"caps_lock":   keys.CapsLock,
			"shift_l":     keys.ShiftL,
			"eisu_toggle": keys.EisuToggle,
		} {
			ev, err := keys.Parse(repr)
			require.NoError(t, err, repr)
			assert.Equal(t, want, ev.Keycode, repr)
		}
	})

	t.Run("unknown names fail", func(t *testing.T) {
		_, err := keys.Parse("No_Such_Key")
		require.Error(t, err)

		_, err = keys.Parse("Hyper+a")
		require.Error(t, err)

		_, err = keys.Parse("")
		require.Error(t, err)
	})

	t.Run("string renders parseable notation", func(t *testing.T) {
		for _, repr := range []string{"a", "space", "Caps_Lock", "Shift+space", "Release+Shift_L"} {
			ev, err := keys.Parse(repr)
			require.NoError(t, err)
			back, err := keys.Parse(ev.String())
			require.NoError(t, err, "round-trip %q -> %q", repr, ev.String())
			assert.Equal(t, ev, back)
		}
	})
}

func TestKeysymName(t *testing.T) {
	assert.Equal(t, "a", keys.KeysymName('a'))
	assert.Equal(t, "Caps_Lock", keys.KeysymName(keys.CapsLock))
	assert.Equal(t, "space", keys.KeysymName(keys.Space))
}
