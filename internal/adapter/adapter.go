package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wacomsync/internal/domain"
)

var (
	// ErrToolUnavailable is returned when the external tool is not installed
	ErrToolUnavailable = errors.New("tool unavailable")
	// ErrCommandTimeout is returned when a command exceeds its deadline
	ErrCommandTimeout = errors.New("command timed out")
	// ErrMalformedArea is returned when an area query cannot be parsed
	ErrMalformedArea = errors.New("malformed area output")
)

// CommandError describes an external command that exited with a non-zero status
type CommandError struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s: exit status %d", e.Name, strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Runner invokes an external command and returns its standard output.
// All text produced by the desktop tools enters the program through this seam.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// DeviceSource enumerates pen-tablet input devices
type DeviceSource interface {
	ListDevices(ctx context.Context) ([]domain.Device, error)
}

// MonitorSource enumerates display outputs
type MonitorSource interface {
	ListMonitors(ctx context.Context) (domain.MonitorSet, error)
}
