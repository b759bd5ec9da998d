// Package config provides configuration management for wacomsync.
//
// Config file locations (priority order):
//  1. $WACOMSYNC_CONFIG
//  2. ./wacomsync.yaml
//  3. $XDG_CONFIG_HOME/wacomsync/config.yaml
//  4. ~/.config/wacomsync/config.yaml
//  5. /etc/wacomsync/config.yaml
//
// Missing files are not an error: defaults reproduce the behavior of running
// xsetwacom and xrandr from PATH with profiles in ~/.wacom_profiles.json.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCommandTimeout bounds each external command
	DefaultCommandTimeout = 5 * time.Second
	// DefaultWatchDebounce collapses bursts of hotplug events
	DefaultWatchDebounce = time.Second
	// DefaultWatchDir is where input device nodes appear
	DefaultWatchDir = "/dev/input"
)

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	return cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	timeout := Duration(DefaultCommandTimeout)
	debounce := Duration(DefaultWatchDebounce)
	return &Config{
		Version:      1,
		ProfilesPath: DefaultProfilesPath(),
		History: HistoryConfig{
			Enabled: true,
			Path:    DefaultHistoryPath(),
		},
		Commands: CommandsConfig{
			Xsetwacom: "xsetwacom",
			Xrandr:    "xrandr",
			Timeout:   &timeout,
		},
		Watch: WatchConfig{
			Dir:      DefaultWatchDir,
			Debounce: &debounce,
		},
		Log: LogConfig{Level: "info"},
	}
}

// applyDefaults fills in values a config file left empty
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.ProfilesPath == "" {
		c.ProfilesPath = DefaultProfilesPath()
	}
	c.ProfilesPath = ExpandHome(c.ProfilesPath)
	if c.History.Path == "" {
		c.History.Path = DefaultHistoryPath()
	}
	c.History.Path = ExpandHome(c.History.Path)
	if c.Commands.Xsetwacom == "" {
		c.Commands.Xsetwacom = "xsetwacom"
	}
	if c.Commands.Xrandr == "" {
		c.Commands.Xrandr = "xrandr"
	}
	if c.Watch.Dir == "" {
		c.Watch.Dir = DefaultWatchDir
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// CommandTimeout returns the per-command bound
func (c *Config) CommandTimeout() time.Duration {
	return durationOrDefault(c.Commands.Timeout, DefaultCommandTimeout)
}

// WatchDebounce returns the hotplug debounce interval
func (c *Config) WatchDebounce() time.Duration {
	return durationOrDefault(c.Watch.Debounce, DefaultWatchDebounce)
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	summary := fmt.Sprintf("Profiles: %s\n", c.ProfilesPath)
	if c.History.Enabled {
		summary += fmt.Sprintf("History: %s\n", c.History.Path)
	} else {
		summary += "History: disabled\n"
	}
	summary += fmt.Sprintf("Tools: %s, %s (timeout %s)\n", c.Commands.Xsetwacom, c.Commands.Xrandr, c.CommandTimeout())
	summary += fmt.Sprintf("Watch: %s (debounce %s)", c.Watch.Dir, c.WatchDebounce())
	return summary
}
