package composer

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/z1gc/gorime/internal/keys"
)

// toggleWindow is how long after a shift/ctrl press its release still counts
// as a tap-to-toggle gesture.
const toggleWindow = 500 * time.Millisecond

// Clock supplies the current time for the tap window. Injected so tests can
// drive it deterministically.
type Clock func() time.Time

// Config is the semantic shape of the composer's configuration: the
// switch-key table with its preset fallback, and the caps-lock knobs.
type Config struct {
	// SwitchKey maps key notation to switch style names.
	SwitchKey map[string]string
	// FallbackSwitchKey is consulted only when SwitchKey is absent or empty.
	FallbackSwitchKey map[string]string
	// GoodOldCapsLock selects conventional caps-lock semantics: the key
	// toggles ASCII mode and uppercase typing is left alone. When false,
	// caps lock is cosmetically disabled and alphabetic keys typed under an
	// asserted caps modifier have their case inverted and committed directly.
	GoodOldCapsLock bool
	// CapsPolarityInverted states that the platform reports the pre-toggle
	// caps modifier on a caps-lock key press (the IBus/Linux convention), so
	// the asserted direction is the negation of the reported flag. Platforms
	// that report the post-toggle state need this false.
	CapsPolarityInverted bool
}

// AsciiComposer decides, per key event, between native composition input,
// verbatim ASCII and mode toggles. All state is owned by the goroutine that
// dispatches key events; Reload must be called between events, never
// concurrently with ProcessKey.
type AsciiComposer struct {
	ctx   Context
	log   zerolog.Logger
	clock Clock

	bindings             BindingTable
	capsLockSwitchStyle  SwitchStyle
	goodOldCapsLock      bool
	capsPolarityInverted bool

	// toggleWithCaps remembers whether the last mode toggle was caused by
	// the caps-lock key specifically.
	toggleWithCaps bool

	// Modifier tap tracking. At most one of shiftDown/ctrlDown is true;
	// toggleDeadline is meaningful only while one of them is.
	shiftDown      bool
	ctrlDown       bool
	toggleDeadline time.Time

	// cancelUpdate is the single live composition-update subscription used
	// by the inline-ascii side effect, nil when none is installed.
	cancelUpdate func()
}

// ComposerOption customizes a new AsciiComposer.
type ComposerOption func(*AsciiComposer)

// WithClock injects the clock used for the modifier tap window.
func WithClock(clock Clock) ComposerOption {
	return func(c *AsciiComposer) {
		c.clock = clock
	}
}

// WithLogger injects the logger.
func WithLogger(log zerolog.Logger) ComposerOption {
	return func(c *AsciiComposer) {
		c.log = log
	}
}

// New creates an AsciiComposer bound to a composition context.
func New(ctx Context, cfg Config, opts ...ComposerOption) *AsciiComposer {
	c := &AsciiComposer{
		ctx:   ctx,
		log:   zerolog.Nop(),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Reload(cfg)
	return c
}

// Reload replaces the binding table and derived flags from configuration.
// The swap is whole-value: key processing never observes a partial update.
func (c *AsciiComposer) Reload(cfg Config) {
	bindings := NewBindingTable(cfg.SwitchKey, cfg.FallbackSwitchKey, c.log)
	c.bindings = bindings
	c.capsLockSwitchStyle = bindings.capsLockStyle()
	c.goodOldCapsLock = cfg.GoodOldCapsLock
	c.capsPolarityInverted = cfg.CapsPolarityInverted
}

// Close cancels the update subscription, if any.
func (c *AsciiComposer) Close() {
	c.cancelSubscription()
}

// Bindings returns the active binding table.
func (c *AsciiComposer) Bindings() BindingTable {
	return c.bindings
}

// ProcessKey runs one key event through the dispatch priority order and
// returns the decision. It never fails: malformed input degrades to Pass.
func (c *AsciiComposer) ProcessKey(ev keys.Event) Result {
	if (ev.Shift && ev.Ctrl) || ev.Alt || ev.Super {
		c.shiftDown, c.ctrlDown = false, false
		c.tempAsciiOff()
		return Pass
	}
	if c.capsLockSwitchStyle != StyleNoop {
		if result := c.processCapsLock(ev); result != Pass {
			return result
		}
	}
	ch := ev.Keycode
	if ch == keys.EisuToggle { // alphanumeric toggle
		if ev.Release {
			return Reject
		}
		c.shiftDown, c.ctrlDown = false, false
		c.toggleWithKey(ch)
		return Accept
	}
	isShift := ch == keys.ShiftL || ch == keys.ShiftR
	isCtrl := ch == keys.ControlL || ch == keys.ControlR
	if isShift || isCtrl {
		c.trackModifier(ev, isShift, isCtrl)
		return Pass
	}
	// other keys
	c.shiftDown, c.ctrlDown = false, false
	if c.ctx.GetOption(OptionAsciiMode) {
		if !c.ctx.IsComposing() {
			return Reject // direct commit
		}
		// edit inline ascii string
		if !ev.Release && ch >= keys.Space && ch < 0x80 {
			c.ctx.PushInput(rune(ch))
			return Accept
		}
	}
	return c.processTempAscii(ev)
}

// trackModifier detects shift/ctrl taps: a press starts the window, a
// matching release inside it toggles. Chords never reach here with both
// modifiers (filtered above), and any non-modifier key clears the flags on
// the general path.
func (c *AsciiComposer) trackModifier(ev keys.Event, isShift, isCtrl bool) {
	if ev.Release {
		if !c.shiftDown && !c.ctrlDown {
			return
		}
		if ((isShift && c.shiftDown) || (isCtrl && c.ctrlDown)) &&
			c.clock().Before(c.toggleDeadline) {
			c.tempAsciiOff()
			if ev.Keycode == keys.ShiftR {
				// right shift always forces native mode, regardless
				// of its configured binding
				c.switchAsciiMode(false, StyleNoop)
			} else {
				c.toggleWithKey(ev.Keycode)
			}
		}
		c.shiftDown, c.ctrlDown = false, false
		return
	}
	if c.shiftDown || c.ctrlDown { // not the first key down
		return
	}
	if isShift {
		c.shiftDown = true
	} else {
		// maybe a ctrl+ shortcut, reset temp_ascii
		c.tempAsciiOff()
		c.ctrlDown = true
	}
	// will not toggle unless the key is released shortly
	c.toggleDeadline = c.clock().Add(toggleWindow)
}

// toggleWithKey performs the configured toggle for a key code, if bound.
func (c *AsciiComposer) toggleWithKey(keycode int) bool {
	style, ok := c.bindings[keycode]
	if !ok {
		return false
	}
	c.switchAsciiMode(!c.ctx.GetOption(OptionAsciiMode), style)
	c.toggleWithCaps = keycode == keys.CapsLock
	return true
}

// switchAsciiMode applies the composition side effect for the style, then
// sets the sticky mode. The inline style installs a one-shot update
// subscription that reverts the mode once the composition becomes empty,
// letting the current composition finish in its mode while a new one starts
// in the other.
func (c *AsciiComposer) switchAsciiMode(asciiMode bool, style SwitchStyle) {
	c.log.Debug().Bool("ascii_mode", asciiMode).Stringer("style", style).Msg("switching ascii mode")
	if c.ctx.IsComposing() {
		c.cancelSubscription()
		switch style {
		case StyleInline:
			if asciiMode {
				c.cancelUpdate = c.ctx.OnUpdate(c.onContextUpdate)
			}
		case StyleCommitText:
			c.ctx.ConfirmCurrentSelection()
		case StyleCommitCode:
			c.ctx.ClearNonConfirmedComposition()
			c.ctx.Commit()
		case StyleClear:
			c.ctx.Clear()
		}
	}
	// refresh non-confirmed composition with the new mode
	c.ctx.SetOption(OptionAsciiMode, asciiMode)
}

func (c *AsciiComposer) onContextUpdate() {
	if !c.ctx.IsComposing() {
		c.cancelSubscription()
		// quit inline ascii mode
		c.ctx.SetOption(OptionAsciiMode, false)
	}
}

func (c *AsciiComposer) cancelSubscription() {
	if c.cancelUpdate != nil {
		c.cancelUpdate()
		c.cancelUpdate = nil
	}
}

func (c *AsciiComposer) tempAsciiOn() {
	c.ctx.SetOption(OptionTempAscii, true)
	c.ctx.History().Clear()
}

// tempAsciiOff clears the commit history along with the option so a stale
// latest-text read cannot cause an incorrect re-entry on a later Return.
func (c *AsciiComposer) tempAsciiOff() {
	c.ctx.SetOption(OptionTempAscii, false)
	c.ctx.History().Clear()
}
