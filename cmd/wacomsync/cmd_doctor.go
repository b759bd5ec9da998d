package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wacomsync/internal/core/bootstrap"
)

// doctorCmd checks the session can run mappings
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the display, tools and file locations",
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	opts := bootstrap.Options{
		Tools:        []string{cfg.Commands.Xsetwacom, cfg.Commands.Xrandr},
		WatchDir:     cfg.Watch.Dir,
		ProfilesPath: cfg.ProfilesPath,
		Logger:       logger.Named("bootstrap"),
	}
	if cfg.History.Enabled {
		opts.HistoryPath = cfg.History.Path
	}
	result := bootstrap.Run(cmd.Context(), opts)

	out := cmd.OutOrStdout()
	for _, c := range result.Checks {
		fmt.Fprintf(out, "%-5s %-12s %-10s %s\n", c.Status, c.Category, c.Name, c.Detail)
	}
	if !result.OK() {
		return fmt.Errorf("%d checks failed", len(result.Failed()))
	}
	return nil
}
