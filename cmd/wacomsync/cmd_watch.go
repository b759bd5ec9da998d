package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wacomsync/internal/watcher"
)

// devicePattern matches the evdev nodes a tablet creates under /dev/input
const devicePattern = "event*"

// watchCmd re-applies a profile on hotplug
var watchCmd = &cobra.Command{
	Use:   "watch <profile>",
	Short: "Apply a profile now and again whenever input devices change",
	Long: `Applies the named profile, then watches the input device directory and
re-applies it after a tablet is plugged in or removed. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	name := args[0]
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	a := newApp(ctx, true)
	defer a.Close()

	report, err := a.profiles.ApplyNamed(ctx, name)
	if err != nil {
		return err
	}
	printReport(out, report)

	w := watcher.New(cfg.Watch.Dir, func(ctx context.Context) {
		a.session.Refresh(ctx)
		report, err := a.profiles.ApplyNamed(ctx, name)
		if err != nil {
			logger.Error("re-apply failed", zap.String("profile", name), zap.Error(err))
			return
		}
		printReport(out, report)
	}).
		WithDebounce(cfg.WatchDebounce()).
		WithPattern(devicePattern).
		WithLogger(logger.Named("watch"))

	fmt.Fprintf(out, "Watching %s for tablets (Ctrl-C to stop)\n", cfg.Watch.Dir)
	if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
