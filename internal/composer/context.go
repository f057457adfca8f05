package composer

// Option names the composer reads and writes on its Context.
const (
	// OptionAsciiMode is the sticky mode: ordinary keys bypass native
	// composition entirely while it is set.
	OptionAsciiMode = "ascii_mode"
	// OptionTempAscii is the short-lived sub-state that locally overrides
	// composition without changing the sticky mode.
	OptionTempAscii = "temp_ascii"
)

// History is the ordered record of recently committed text segments.
type History interface {
	Push(text string)
	Clear()
	// LatestText returns the most recently committed segment, or "".
	LatestText() string
}

// Context is the composition-engine surface the composer consumes. The
// composer never owns composition state; it only queries and mutates it
// through this interface.
type Context interface {
	GetOption(name string) bool
	SetOption(name string, value bool)

	IsComposing() bool
	// PushInput appends a printable ASCII character to the in-progress
	// inline edit buffer.
	PushInput(ch rune)
	// Clear discards the composition entirely.
	Clear()
	// ConfirmCurrentSelection confirms the current selection as-is.
	ConfirmCurrentSelection()
	// ClearNonConfirmedComposition discards tentative conversion results,
	// leaving the raw input code in place.
	ClearNonConfirmedComposition()
	// Commit commits the composition.
	Commit()

	// CommitText commits text directly, bypassing composition.
	CommitText(text string)

	History() History

	// OnUpdate subscribes to composition-update notifications. The callback
	// is invoked synchronously whenever the engine mutates composition
	// state. The returned cancel func detaches the subscription and is safe
	// to call more than once.
	OnUpdate(fn func()) (cancel func())
}
