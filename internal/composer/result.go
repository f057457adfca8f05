// Package composer implements the ASCII/native input-mode decision engine:
// for each key event it decides whether the keystroke is native composition
// input, verbatim ASCII, or a mode toggle, tracking temporary-ASCII,
// modifier-tap and caps-lock sub-states across events.
package composer

// Result is the decision produced for a key event.
type Result int

const (
	// Pass means the event is not ours; the next processor handles it.
	Pass Result = iota
	// Accept means the event was consumed.
	Accept
	// Reject means the caller should commit the raw key directly,
	// bypassing composition.
	Reject
)

// String returns the decision name.
func (r Result) String() string {
	switch r {
	case Pass:
		return "pass"
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	}
	return "unknown"
}
