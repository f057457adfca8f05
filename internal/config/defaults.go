package config

// DefaultConfig returns the built-in preset. The preset switch-key table is
// also the fallback source the composer consults when the user configuration
// carries no switch_key section at all.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		History: HistoryConfig{
			Path:     "",
			Capacity: 20,
		},
		AsciiComposer: AsciiComposerConfig{
			GoodOldCapsLock:      false,
			CapsPolarityInverted: true,
			SwitchKey:            DefaultSwitchKey(),
		},
	}
}

// DefaultSwitchKey returns the preset switch-key table.
func DefaultSwitchKey() map[string]string {
	return map[string]string{
		"Caps_Lock":   "commit_code",
		"Shift_L":     "inline_ascii",
		"Shift_R":     "commit_text",
		"Control_L":   "noop",
		"Control_R":   "noop",
		"Eisu_toggle": "clear",
	}
}

// DefaultTOML returns the default config file contents, with the preset
// switch-key table written out so it is easy to edit.
func DefaultTOML() string {
	return `# gorime configuration

[logging]
level = "info"    # trace, debug, info, warn, error
format = "console" # console, json

[history]
# Path of the SQLite commit-history database, relative to the data
# directory. Empty keeps the history in memory.
path = ""
capacity = 20

[ascii_composer]
# Conventional caps lock: the key toggles ascii mode, uppercase typing is
# left alone. When false, caps lock is cosmetically disabled and letters
# typed with caps asserted are case-corrected and committed directly.
good_old_caps_lock = false
# The platform reports the pre-toggle caps state on a caps-lock key press
# (IBus/Linux). Set false on platforms reporting the post-toggle state.
caps_polarity_inverted = true

[ascii_composer.switch_key]
Caps_Lock = "commit_code"
Shift_L = "inline_ascii"
Shift_R = "commit_text"
Control_L = "noop"
Control_R = "noop"
Eisu_toggle = "clear"
`
}

// setDefaults seeds viper with the preset so env overrides resolve even
// without a config file.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("history.path", defaults.History.Path)
	m.viper.SetDefault("history.capacity", defaults.History.Capacity)
	m.viper.SetDefault("ascii_composer.good_old_caps_lock", defaults.AsciiComposer.GoodOldCapsLock)
	m.viper.SetDefault("ascii_composer.caps_polarity_inverted", defaults.AsciiComposer.CapsPolarityInverted)
	// switch_key is intentionally not defaulted: the composer must be able
	// to tell "user configured nothing" apart from "preset", because the
	// fallback source is consulted only in the former case.
}
