package composer

// SwitchStyle determines the side effect applied to an in-progress
// composition when switching to ASCII mode.
type SwitchStyle int

const (
	// StyleNoop switches mode with no composition side effect.
	StyleNoop SwitchStyle = iota
	// StyleInline converts the next composition in place: the current one
	// finishes in its mode while new input starts in the target mode.
	StyleInline
	// StyleCommitText confirms the current selection as-is.
	StyleCommitText
	// StyleCommitCode discards the unconfirmed composition and commits the
	// raw input code.
	StyleCommitCode
	// StyleClear discards the composition entirely.
	StyleClear
)

// styleByName maps configuration style names to styles. "noop" is listed so
// that it parses, but noop entries are dropped from the binding table.
var styleByName = map[string]SwitchStyle{
	"noop":         StyleNoop,
	"inline_ascii": StyleInline,
	"commit_text":  StyleCommitText,
	"commit_code":  StyleCommitCode,
	"clear":        StyleClear,
}

// String returns the configuration name of the style.
func (s SwitchStyle) String() string {
	switch s {
	case StyleNoop:
		return "noop"
	case StyleInline:
		return "inline_ascii"
	case StyleCommitText:
		return "commit_text"
	case StyleCommitCode:
		return "commit_code"
	case StyleClear:
		return "clear"
	}
	return "unknown"
}
