package composer

import (
	"github.com/z1gc/gorime/internal/keys"
)

// processCapsLock handles the caps-lock key and keys typed under an asserted
// caps modifier. Caps-lock releases are always rejected so a toggle cannot
// fire twice per physical press.
func (c *AsciiComposer) processCapsLock(ev keys.Event) Result {
	if ev.Keycode == keys.CapsLock {
		if ev.Release {
			return Reject
		}
		c.shiftDown, c.ctrlDown = false, false
		// When ascii mode was entered with another key (eg. a shift tap),
		// caps lock must not override it until the user presses caps lock
		// once to claim the mode.
		if c.goodOldCapsLock && !c.toggleWithCaps {
			if c.ctx.GetOption(OptionAsciiMode) {
				return Reject
			}
		}
		target := ev.Caps
		if c.capsPolarityInverted {
			// The platform reports the pre-toggle modifier state; negate so
			// "caps lock about to engage" means "ascii mode on".
			target = !target
		}
		c.toggleWithCaps = target
		c.switchAsciiMode(target, c.capsLockSwitchStyle)
		return Accept
	}
	if ev.Caps {
		if !c.goodOldCapsLock && !ev.Release && !ev.Ctrl && isAsciiAlpha(ev.Keycode) {
			// caps lock is cosmetically disabled: shift state alone decides
			// case, so invert what the platform produced and commit directly
			c.ctx.CommitText(string(invertCase(rune(ev.Keycode))))
			return Accept
		}
		return Reject
	}
	return Pass
}

func isAsciiAlpha(ch int) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func invertCase(ch rune) rune {
	switch {
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 'A'
	case ch >= 'A' && ch <= 'Z':
		return ch - 'A' + 'a'
	}
	return ch
}
