package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"wacomsync/internal/domain"
)

// DefaultXsetwacom is the device tool binary name
const DefaultXsetwacom = "xsetwacom"

// Tablet talks to pen-tablet devices through xsetwacom
type Tablet struct {
	runner Runner
	bin    string
}

// NewTablet creates a Tablet that runs bin (DefaultXsetwacom when empty)
func NewTablet(runner Runner, bin string) *Tablet {
	if bin == "" {
		bin = DefaultXsetwacom
	}
	return &Tablet{runner: runner, bin: bin}
}

// ListDevices returns the stylus and eraser devices in the order xsetwacom lists them
func (t *Tablet) ListDevices(ctx context.Context) ([]domain.Device, error) {
	out, err := t.runner.Run(ctx, t.bin, "--list", "devices")
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return ParseDevices(out), nil
}

// ParseDevices parses the output of `xsetwacom --list devices`
func ParseDevices(out string) []domain.Device {
	devices := []domain.Device{}
	for _, line := range strings.Split(out, "\n") {
		if dev, ok := ParseDeviceLine(strings.TrimRight(line, "\r")); ok {
			devices = append(devices, dev)
		}
	}
	return devices
}

// ParseDeviceLine parses a single device listing line such as
//
//	Wacom Intuos S Pen stylus       	id: 9	type: STYLUS
//
// The name is the text before the first tab. Lines that do not mention a
// stylus or eraser are skipped.
func ParseDeviceLine(line string) (domain.Device, bool) {
	name, class, found := strings.Cut(line, "\t")
	if !found {
		class = line
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Device{}, false
	}

	kind, ok := deviceKind(class)
	if !ok {
		kind, ok = deviceKind(line)
	}
	if !ok {
		return domain.Device{}, false
	}
	return domain.Device{Name: name, Kind: kind}, true
}

func deviceKind(s string) (domain.DeviceKind, bool) {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "ERASER"):
		return domain.DeviceKindEraser, true
	case strings.Contains(upper, "STYLUS"):
		return domain.DeviceKindStylus, true
	}
	return "", false
}

// SetMode sets the pointer mode of dev
func (t *Tablet) SetMode(ctx context.Context, dev domain.Device, mode domain.Mode) error {
	return t.set(ctx, dev, "Mode", string(mode))
}

// MapToOutput maps dev onto an output name or domain.DesktopTarget
func (t *Tablet) MapToOutput(ctx context.Context, dev domain.Device, target string) error {
	return t.set(ctx, dev, "MapToOutput", target)
}

// ResetArea restores the hardware default active area of dev
func (t *Tablet) ResetArea(ctx context.Context, dev domain.Device) error {
	return t.set(ctx, dev, "ResetArea")
}

// SetArea sets the active area of dev
func (t *Tablet) SetArea(ctx context.Context, dev domain.Device, area domain.Area) error {
	return t.set(ctx, dev, "Area", area.Args()...)
}

// GetArea queries the current active area of dev
func (t *Tablet) GetArea(ctx context.Context, dev domain.Device) (domain.Area, error) {
	out, err := t.runner.Run(ctx, t.bin, "get", dev.Name, "Area")
	if err != nil {
		return domain.Area{}, fmt.Errorf("get Area: %w", err)
	}
	return ParseArea(out)
}

func (t *Tablet) set(ctx context.Context, dev domain.Device, attr string, values ...string) error {
	args := append([]string{"set", dev.Name, attr}, values...)
	if _, err := t.runner.Run(ctx, t.bin, args...); err != nil {
		return fmt.Errorf("set %s: %w", attr, err)
	}
	return nil
}

// ParseArea parses `xsetwacom get <dev> Area` output, "<x1> <y1> <max_x> <max_y>".
// Only the extents are required to be numeric; the leading fields default to 0.
func ParseArea(out string) (domain.Area, error) {
	fields := strings.Fields(out)
	if len(fields) < 4 {
		return domain.Area{}, fmt.Errorf("%w: %q", ErrMalformedArea, strings.TrimSpace(out))
	}

	maxX, err := strconv.Atoi(fields[2])
	if err != nil {
		return domain.Area{}, fmt.Errorf("%w: max x %q", ErrMalformedArea, fields[2])
	}
	maxY, err := strconv.Atoi(fields[3])
	if err != nil {
		return domain.Area{}, fmt.Errorf("%w: max y %q", ErrMalformedArea, fields[3])
	}

	area := domain.Area{X2: maxX, Y2: maxY}
	if x, err := strconv.Atoi(fields[0]); err == nil {
		area.X1 = x
	}
	if y, err := strconv.Atoi(fields[1]); err == nil {
		area.Y1 = y
	}
	return area, nil
}
