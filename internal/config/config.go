// Package config handles configuration loading, validation, watching and
// schema generation for gorime.
package config

// Config is the root configuration.
type Config struct {
	Logging       LoggingConfig       `mapstructure:"logging" json:"logging"`
	History       HistoryConfig       `mapstructure:"history" json:"history"`
	AsciiComposer AsciiComposerConfig `mapstructure:"ascii_composer" json:"ascii_composer"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is "console" or "json".
	Format string `mapstructure:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// HistoryConfig controls the commit-history store.
type HistoryConfig struct {
	// Path of the SQLite commit-history database. Empty selects the
	// in-memory ring.
	Path string `mapstructure:"path" json:"path"`
	// Capacity of the in-memory ring.
	Capacity int `mapstructure:"capacity" json:"capacity" jsonschema:"minimum=1"`
}

// AsciiComposerConfig is the mode-switch configuration consumed by the
// decision core.
type AsciiComposerConfig struct {
	// GoodOldCapsLock selects conventional caps-lock mode-switch semantics.
	// When false, caps lock is cosmetically disabled and letters typed under
	// an asserted caps modifier are case-corrected and committed directly.
	GoodOldCapsLock bool `mapstructure:"good_old_caps_lock" json:"good_old_caps_lock"`
	// CapsPolarityInverted states that the platform reports the pre-toggle
	// caps modifier state on a caps-lock key press (IBus/Linux convention).
	CapsPolarityInverted bool `mapstructure:"caps_polarity_inverted" json:"caps_polarity_inverted"`
	// SwitchKey maps key notation ("Caps_Lock", "Shift_L", ...) to a switch
	// style: inline_ascii, commit_text, commit_code, clear or noop.
	SwitchKey map[string]string `mapstructure:"switch_key" json:"switch_key"`
}
