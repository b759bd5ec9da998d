package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"wacomsync/internal/domain"
)

// DefaultXrandr is the display tool binary name
const DefaultXrandr = "xrandr"

// Display enumerates outputs through xrandr
type Display struct {
	runner Runner
	bin    string
}

// NewDisplay creates a Display that runs bin (DefaultXrandr when empty)
func NewDisplay(runner Runner, bin string) *Display {
	if bin == "" {
		bin = DefaultXrandr
	}
	return &Display{runner: runner, bin: bin}
}

// ListMonitors returns the active monitors keyed by output name
func (d *Display) ListMonitors(ctx context.Context) (domain.MonitorSet, error) {
	out, err := d.runner.Run(ctx, d.bin, "--listmonitors")
	if err != nil {
		return nil, fmt.Errorf("list monitors: %w", err)
	}
	return ParseMonitors(out), nil
}

// ParseMonitors parses the output of `xrandr --listmonitors`. The first line
// is the "Monitors: N" summary and is discarded; unparseable lines are skipped.
func ParseMonitors(out string) domain.MonitorSet {
	monitors := domain.MonitorSet{}
	lines := strings.Split(out, "\n")
	for _, line := range lines[1:] {
		if m, ok := ParseMonitorLine(strings.TrimRight(line, "\r")); ok {
			monitors[m.Name] = m
		}
	}
	return monitors
}

// ParseMonitorLine parses one monitor line such as
//
//	0: +*HDMI-1 1920/600x1080/340+0+0  HDMI-1
//
// The last token is the output name and the one before it the geometry.
func ParseMonitorLine(line string) (domain.Monitor, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return domain.Monitor{}, false
	}

	w, h, ok := ParseGeometry(fields[len(fields)-2])
	if !ok {
		return domain.Monitor{}, false
	}

	m := domain.Monitor{Name: fields[len(fields)-1], Width: w, Height: h}
	if !m.Valid() {
		return domain.Monitor{}, false
	}
	return m, true
}

// ParseGeometry extracts width and height from `<w>[/mm]x<h>[/mm][+x+y]`
func ParseGeometry(token string) (w, h int, ok bool) {
	size, _, _ := strings.Cut(token, "+")
	ws, hs, found := strings.Cut(size, "x")
	if !found {
		return 0, 0, false
	}

	w, err := strconv.Atoi(pixels(ws))
	if err != nil {
		return 0, 0, false
	}
	h, err = strconv.Atoi(pixels(hs))
	if err != nil {
		return 0, 0, false
	}
	if w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

// pixels drops the physical size suffix from "1920/600"
func pixels(s string) string {
	px, _, _ := strings.Cut(s, "/")
	return px
}
