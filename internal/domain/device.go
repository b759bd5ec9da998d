package domain

import (
	"fmt"
	"sort"
)

// DeviceKind is the tool class reported for an input device
type DeviceKind string

const (
	DeviceKindStylus DeviceKind = "stylus"
	DeviceKindEraser DeviceKind = "eraser"
)

// Device is a pen-tablet input device that accepts area and mode settings.
// Name is the identifier xsetwacom expects in set/get invocations.
type Device struct {
	Name string     `json:"name"`
	Kind DeviceKind `json:"kind"`
}

func (d Device) String() string {
	return d.Name
}

// Monitor is a display output with its size in pixels
type Monitor struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Valid reports whether the monitor has a usable geometry
func (m Monitor) Valid() bool {
	return m.Name != "" && m.Width > 0 && m.Height > 0
}

func (m Monitor) String() string {
	return fmt.Sprintf("%s (%dx%d)", m.Name, m.Width, m.Height)
}

// MonitorSet maps output names to monitors
type MonitorSet map[string]Monitor

// Names returns the output names in sorted order
func (s MonitorSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the monitor with the given name
func (s MonitorSet) Lookup(name string) (Monitor, bool) {
	m, ok := s[name]
	return m, ok
}
