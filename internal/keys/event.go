package keys

import "strings"

// Modifier represents keyboard modifier flags.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = 1 << 0
	// ModCaps indicates the Caps Lock modifier is asserted.
	ModCaps Modifier = 1 << 1
	// ModCtrl indicates the Control key is pressed.
	ModCtrl Modifier = 1 << 2
	// ModAlt indicates the Alt key is pressed.
	ModAlt Modifier = 1 << 3
	// ModSuper indicates the Super key is pressed.
	ModSuper Modifier = 1 << 6
	// ModRelease marks a key release transition.
	ModRelease Modifier = 1 << 30
)

// Event is an immutable key event: one physical key transition.
// Keycode holds the keysym value reported for the key ("keyval").
type Event struct {
	Keycode int
	Release bool
	Shift   bool
	Ctrl    bool
	Alt     bool
	Super   bool
	Caps    bool
}

// Modifier returns the combined modifier mask of the event.
// The release flag counts as a modifier, matching the binding notation
// where "Release+x" is a chorded (and therefore invalid) switch key.
func (e Event) Modifier() Modifier {
	var m Modifier
	if e.Shift {
		m |= ModShift
	}
	if e.Ctrl {
		m |= ModCtrl
	}
	if e.Alt {
		m |= ModAlt
	}
	if e.Super {
		m |= ModSuper
	}
	if e.Caps {
		m |= ModCaps
	}
	if e.Release {
		m |= ModRelease
	}
	return m
}

// String renders the event in the same notation Parse accepts.
func (e Event) String() string {
	var sb strings.Builder
	if e.Release {
		sb.WriteString("Release+")
	}
	if e.Shift {
		sb.WriteString("Shift+")
	}
	if e.Ctrl {
		sb.WriteString("Control+")
	}
	if e.Alt {
		sb.WriteString("Alt+")
	}
	if e.Super {
		sb.WriteString("Super+")
	}
	sb.WriteString(KeysymName(e.Keycode))
	return sb.String()
}
