package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "WACOMSYNC_CONFIG"
	// ConfigFileName is the default config file name
	ConfigFileName = "wacomsync.yaml"
	// ConfigDirName is the config directory name under XDG
	ConfigDirName = "wacomsync"
	// ProfilesFileName is the profile document kept in the home directory
	ProfilesFileName = ".wacom_profiles.json"
)

// FindConfigPath searches for config file in priority order:
// 1. $WACOMSYNC_CONFIG (explicit path)
// 2. ./wacomsync.yaml (working directory)
// 3. $XDG_CONFIG_HOME/wacomsync/config.yaml
// 4. ~/.config/wacomsync/config.yaml
// 5. /etc/wacomsync/config.yaml
//
// Returns empty string if no config file found
func FindConfigPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		if fileExists(path) {
			return path
		}
	}

	if fileExists(ConfigFileName) {
		if abs, err := filepath.Abs(ConfigFileName); err == nil {
			return abs
		}
		return ConfigFileName
	}

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		path := filepath.Join(xdgHome, ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	if home := os.Getenv("HOME"); home != "" {
		path := filepath.Join(home, ".config", ConfigDirName, "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	systemPath := filepath.Join("/etc", ConfigDirName, "config.yaml")
	if fileExists(systemPath) {
		return systemPath
	}

	return ""
}

// DefaultConfigPath returns the preferred location for a new config file
// Prefers XDG config home, falls back to working directory
func DefaultConfigPath() string {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, ConfigDirName, "config.yaml")
	}

	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", ConfigDirName, "config.yaml")
	}

	return ConfigFileName
}

// DefaultProfilesPath returns ~/.wacom_profiles.json
func DefaultProfilesPath() string {
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ProfilesFileName)
	}
	return ProfilesFileName
}

// DefaultHistoryPath returns the history database under XDG state home
func DefaultHistoryPath() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, ConfigDirName, "history.db")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".local", "state", ConfigDirName, "history.db")
	}
	return "wacomsync-history.db"
}

// ExpandHome replaces a leading "~/" with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home := os.Getenv("HOME")
	if home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir(configPath string) error {
	dir := filepath.Dir(configPath)
	return os.MkdirAll(dir, 0755)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
