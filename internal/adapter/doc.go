// Package adapter talks to the desktop tools that see tablets and monitors.
//
// Every external command goes through the Runner seam. ExecRunner is the
// real implementation; package adaptertest provides a scripted one.
//
// # Tools
//
// Tablet wraps xsetwacom: it lists stylus and eraser devices and sets or
// reads per-device attributes (Mode, MapToOutput, Area, ResetArea).
//
// Display wraps xrandr: it lists monitors with their pixel geometry.
//
// # Parsing
//
// The parsers are exported and side-effect free. Per-line parsers return
// (value, ok) so a malformed line is skipped rather than failing the whole
// listing.
//
// # Discovery
//
// Discoverer combines both tools and never fails: a missing or broken tool
// is logged and yields an empty result.
package adapter
