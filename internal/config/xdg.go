// ABOUTME: XDG Base Directory helpers for perplexity-mcp paths
// ABOUTME: Resolves config file and data directories with home fallbacks
package config

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "perplexity-mcp"

// DataHome returns XDG_DATA_HOME or falls back to ~/.local/share
func DataHome() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(os.Getenv("HOME"), ".local", "share")
}

// ConfigHome returns XDG_CONFIG_HOME or falls back to ~/.config
func ConfigHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

// DefaultPath is where Load looks for config.toml when no path is given.
func DefaultPath() string {
	return filepath.Join(ConfigHome(), AppName, "config.toml")
}

// DefaultTranscriptDir is where search transcripts go when enabled
// without an explicit directory.
func DefaultTranscriptDir() string {
	return filepath.Join(DataHome(), AppName, "transcripts")
}
