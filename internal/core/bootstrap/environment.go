package bootstrap

import (
	"fmt"
	"strings"
)

// SessionType is the kind of graphical session
type SessionType string

const (
	SessionX11     SessionType = "x11"
	SessionWayland SessionType = "wayland"
	SessionNone    SessionType = "none"
)

// DetectSessionType classifies the graphical session from the environment
func DetectSessionType(getenv func(string) string) SessionType {
	switch strings.ToLower(getenv("XDG_SESSION_TYPE")) {
	case "wayland":
		return SessionWayland
	case "x11":
		return SessionX11
	}
	if getenv("WAYLAND_DISPLAY") != "" {
		return SessionWayland
	}
	if getenv("DISPLAY") != "" {
		return SessionX11
	}
	return SessionNone
}

// DetectDisplay checks that an X display is reachable. Under Wayland the
// tools only see XWayland devices, which is reported as a warning.
func DetectDisplay(getenv func(string) string) []Check {
	display := getenv("DISPLAY")
	session := DetectSessionType(getenv)

	var checks []Check
	switch {
	case display == "":
		checks = append(checks, Check{
			Category: CategoryEnvironment,
			Name:     "display",
			Status:   StatusFail,
			Detail:   "DISPLAY is not set; xsetwacom and xrandr need an X server",
		})
	default:
		checks = append(checks, Check{
			Category: CategoryEnvironment,
			Name:     "display",
			Status:   StatusOK,
			Detail:   fmt.Sprintf("DISPLAY=%s", display),
		})
	}

	if session == SessionWayland {
		checks = append(checks, Check{
			Category: CategoryEnvironment,
			Name:     "session",
			Status:   StatusWarn,
			Detail:   "Wayland session: only XWayland devices can be configured",
		})
	} else {
		checks = append(checks, Check{
			Category: CategoryEnvironment,
			Name:     "session",
			Status:   StatusOK,
			Detail:   string(session),
		})
	}
	return checks
}
