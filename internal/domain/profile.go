package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DesktopTarget maps a device onto the whole virtual desktop instead of a
// single output
const DesktopTarget = "desktop"

// Mode is the pointer mapping mode, spelled the way xsetwacom expects it
type Mode string

const (
	ModeAbsolute Mode = "Absolute"
	ModeRelative Mode = "Relative"
)

var (
	// ErrInvalidMode is returned for a mode other than Absolute or Relative
	ErrInvalidMode = errors.New("invalid mode")
	// ErrEmptyName is returned when a profile is saved without a name
	ErrEmptyName = errors.New("profile name cannot be empty")
)

// ParseMode converts user input to a Mode. It accepts any letter case and the
// one-letter forms "a" and "r".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "absolute", "a":
		return ModeAbsolute, nil
	case "relative", "r":
		return ModeRelative, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Valid reports whether m is one of the known modes
func (m Mode) Valid() bool {
	return m == ModeAbsolute || m == ModeRelative
}

// Profile is a named mapping request
type Profile struct {
	// Target is an output name or DesktopTarget
	Target string `json:"target" yaml:"target"`
	// Mode is the pointer mode applied to every device
	Mode Mode `json:"mode" yaml:"mode"`
	// KeepRatio trims the tablet area to the target output's aspect ratio
	KeepRatio bool `json:"keep_ratio" yaml:"keep_ratio"`
}

// Normalize fills in defaults for missing fields and canonicalizes the mode
// spelling. Unknown modes are left untouched for Validate to reject.
func (p Profile) Normalize() Profile {
	p.Target = strings.TrimSpace(p.Target)
	if p.Target == "" {
		p.Target = DesktopTarget
	}
	if p.Mode == "" {
		p.Mode = ModeAbsolute
	} else if m, err := ParseMode(string(p.Mode)); err == nil {
		p.Mode = m
	}
	return p
}

// Validate checks that the profile can be applied
func (p Profile) Validate() error {
	if !p.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, p.Mode)
	}
	if strings.TrimSpace(p.Target) == "" {
		return errors.New("target cannot be empty")
	}
	return nil
}

// MapsToDesktop reports whether the profile targets the whole desktop
func (p Profile) MapsToDesktop() bool {
	return p.Target == DesktopTarget
}

func (p Profile) String() string {
	return fmt.Sprintf("target: %s | mode: %s | keep ratio: %t", p.Target, p.Mode, p.KeepRatio)
}

// ProfileSet maps profile names to profiles
type ProfileSet map[string]Profile

// Names returns the profile names in sorted order
func (s ProfileSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
