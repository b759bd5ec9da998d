// Package domain defines the core types for wacomsync.
//
// The package describes what the desktop looks like to the tablet mapper and
// what a user asked for. It has no dependencies on the external tools that
// produce or consume these values.
//
// # Hardware
//
// Device is a stylus or eraser input device as reported by xsetwacom.
// Monitor is a display output with its pixel geometry as reported by xrandr.
// Both are ephemeral and rebuilt on every discovery refresh.
//
// # Profiles
//
// Profile is a named mapping request: the output to map onto (or the whole
// desktop), the pointer mode, and whether the tablet area should be trimmed to
// the output's aspect ratio. ProfileSet is the persisted collection keyed by
// profile name.
//
// # Results
//
// DeviceResult and ApplyReport record what happened when a profile was applied,
// one entry per device, so callers can render every outcome even when some
// devices failed.
package domain
