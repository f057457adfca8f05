package config

import "fmt"

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

// validateConfig checks values that would otherwise fail late or silently.
// Switch-key entries are not validated here: per-entry problems degrade to a
// logged skip when the binding table is built, so one bad entry cannot make
// the whole configuration unloadable.
func validateConfig(config *Config) error {
	if config.Logging.Level != "" && !validLogLevels[config.Logging.Level] {
		return fmt.Errorf("invalid logging.level %q", config.Logging.Level)
	}
	switch config.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q", config.Logging.Format)
	}
	if config.History.Capacity < 0 {
		return fmt.Errorf("invalid history.capacity %d", config.History.Capacity)
	}
	return nil
}
