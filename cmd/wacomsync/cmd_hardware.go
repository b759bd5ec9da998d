package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// devicesCmd lists the discovered pens
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List tablet stylus and eraser devices",
	Args:  cobra.NoArgs,
	RunE:  runDevices,
}

// monitorsCmd lists the discovered outputs
var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List monitors with their resolution",
	Args:  cobra.NoArgs,
	RunE:  runMonitors,
}

func runDevices(cmd *cobra.Command, args []string) error {
	a := newApp(cmd.Context(), true)
	defer a.Close()

	out := cmd.OutOrStdout()
	devices := a.session.Devices()
	if len(devices) == 0 {
		fmt.Fprintln(out, "No devices found")
		return nil
	}
	for _, dev := range devices {
		fmt.Fprintf(out, "%-8s %s\n", dev.Kind, dev.Name)
	}
	return nil
}

func runMonitors(cmd *cobra.Command, args []string) error {
	a := newApp(cmd.Context(), true)
	defer a.Close()

	out := cmd.OutOrStdout()
	monitors := a.session.Monitors()
	if len(monitors) == 0 {
		fmt.Fprintln(out, "No monitors found")
		return nil
	}
	for _, name := range monitors.Names() {
		m := monitors[name]
		fmt.Fprintf(out, "%-12s %dx%d\n", m.Name, m.Width, m.Height)
	}
	return nil
}
