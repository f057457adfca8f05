package composer

import (
	"github.com/z1gc/gorime/internal/keys"
)

// Temporary ASCII mode is a transient passthrough sub-mode for quickly mixing
// short ASCII fragments into native-script text without toggling the sticky
// mode. It is entered from a finished all-ASCII composition (Return) or by an
// uppercase-ish trigger key while idle, and left again on space, any
// non-printable key, or a mandatory transform key.

// mayTransform reports whether the key belongs to another transformer (eg.
// half/full-width punctuation) in both states; with optional set, punctuation
// common in code and URLs also counts, so it cannot itself trigger the
// temporary mode.
func mayTransform(ch int, optional bool) bool {
	switch ch {
	case keys.Comma,
		'^', // true^false
		keys.Backslash,
		keys.QuoteDbl,
		keys.Exclam,
		keys.Question,
		keys.Semicolon:
		return true
	}

	if optional {
		switch ch {
		case keys.Period, // namespace.method, 1.2.3.
			keys.Apostrophe, // it's
			'<',             // 1<3
			'>',             // pointer->member
			':',             // namespace::nested
			'(',             // invoke()
			')',             // revoke()
			'[',             // a[4]
			']',             // b[2]
			'{',             // {"foh"}
			'}':             // {"bah"}
			return true
		}
	}

	return false
}

func isPrintable(ch int) bool {
	return ch >= keys.Space && ch <= keys.AsciiTilde
}

func isLowerLetter(ch int) bool {
	return ch >= 'a' && ch <= 'z'
}

// processTempAscii is the temporary-ASCII state machine, reached after every
// higher-priority branch has passed on the event.
func (c *AsciiComposer) processTempAscii(ev keys.Event) Result {
	ch := ev.Keycode
	if ev.Release || ch == keys.BackSpace || ch == keys.Delete {
		return Pass
	}

	// shift+space commits a literal space whatever the mode is
	composing := c.ctx.IsComposing()
	if !composing && ch == keys.Space && ev.Shift {
		return Pass
	}

	if c.ctx.GetOption(OptionTempAscii) {
		// a Return mid-composition must not disturb the sub-mode
		if composing {
			return Pass
		}

		if ch == keys.Space || !isPrintable(ch) || mayTransform(ch, false) {
			// leave the key to the other transformers
			c.tempAsciiOff()
			return Pass
		}

		// same contract as sticky ascii mode: direct commit
		return Reject
	}

	if composing {
		// Return while composing enters the mode when the last committed
		// segment was pure printable ASCII
		if ch == keys.Return {
			latest := c.ctx.History().LatestText()
			if allPrintable(latest) {
				c.tempAsciiOn()
			}
		}
		return Pass
	}

	// Idle and not in the mode: be conservative about what may enter it, so
	// ordinary typing is not disturbed. Lowercase letters, non-printables
	// and transform keys stay untouched.
	if isLowerLetter(ch) || !isPrintable(ch) || mayTransform(ch, true) {
		return Pass
	}

	// uppercase, digits' shifted symbols and the rest trigger the mode; the
	// trigger key itself commits directly like any key while the mode is on
	c.tempAsciiOn()
	return Reject
}

func allPrintable(text string) bool {
	for _, ch := range text {
		if !isPrintable(int(ch)) {
			return false
		}
	}
	return true
}
