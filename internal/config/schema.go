package config

import (
	"time"
)

// Config is the root configuration structure
type Config struct {
	Version      int            `yaml:"version"`
	ProfilesPath string         `yaml:"profiles_path"`
	History      HistoryConfig  `yaml:"history"`
	Commands     CommandsConfig `yaml:"commands"`
	Watch        WatchConfig    `yaml:"watch"`
	Log          LogConfig      `yaml:"log"`
}

// HistoryConfig holds apply history settings
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// CommandsConfig names the external tools and bounds their runtime
type CommandsConfig struct {
	Xsetwacom string    `yaml:"xsetwacom"`
	Xrandr    string    `yaml:"xrandr"`
	Timeout   *Duration `yaml:"timeout,omitempty"`
}

// WatchConfig holds hotplug watch settings
type WatchConfig struct {
	Dir      string    `yaml:"dir"`
	Debounce *Duration `yaml:"debounce,omitempty"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder instead of JSON
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func durationOrDefault(d *Duration, def time.Duration) time.Duration {
	if d == nil {
		return def
	}
	return d.Duration()
}
