package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wacomsync/internal/repository/sqlite"
)

var historyLimit int

// historyCmd shows recent apply runs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent apply runs",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of runs to show (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if !cfg.History.Enabled {
		fmt.Fprintln(out, "Apply history is disabled")
		return nil
	}

	repo, err := sqlite.New(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer repo.Close()

	records, err := repo.ListApplies(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No apply runs recorded")
		return nil
	}

	for _, rec := range records {
		name := rec.ProfileName
		if name == "" {
			name = "(ad-hoc)"
		}
		fmt.Fprintf(out, "%s  %-12s %s  [%d devices, %d failed]\n",
			rec.AppliedAt.Local().Format(time.DateTime), name, rec.Profile,
			len(rec.Results), rec.Failed())
		for _, res := range rec.Results {
			if res.Error != "" {
				fmt.Fprintf(out, "    error %s: %s\n", res.Device, res.Error)
			} else {
				fmt.Fprintf(out, "    ok    %s (%s)\n", res.Device, res.Outcome.Label())
			}
		}
	}
	return nil
}
