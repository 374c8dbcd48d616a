package xdg

import (
	"os"
	"path/filepath"
	"runtime"
)

// ConfigDir returns the XDG configuration directory for doctrail.
// Uses $XDG_CONFIG_HOME/doctrail or ~/.config/doctrail on Unix.
// On macOS, uses ~/Library/Application Support/doctrail.
func ConfigDir() (string, error) {
	if homeOverride := os.Getenv("DOCTRAIL_HOME"); homeOverride != "" {
		return filepath.Join(homeOverride, "config"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "doctrail"), nil
	}

	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "doctrail"), nil
	}

	return filepath.Join(home, ".config", "doctrail"), nil
}

// DataDir returns the XDG data directory for doctrail.
// Uses $XDG_DATA_HOME/doctrail or ~/.local/share/doctrail on Unix.
// On macOS, uses ~/Library/Application Support/doctrail.
func DataDir() (string, error) {
	if homeOverride := os.Getenv("DOCTRAIL_HOME"); homeOverride != "" {
		return filepath.Join(homeOverride, "data"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Application Support", "doctrail"), nil
	}

	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "doctrail"), nil
	}

	return filepath.Join(home, ".local", "share", "doctrail"), nil
}
