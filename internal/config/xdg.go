package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName  = "gorime"
	dirPerm  = 0o755
	filePerm = 0o644
)

// GetConfigDir returns the XDG config directory for gorime.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determine user config directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// GetDataDir returns the data directory used for the history database.
func GetDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// EnsureDirectories creates the config and data directories.
func EnsureDirectories() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	dataDir, err := GetDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, dirPerm); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
