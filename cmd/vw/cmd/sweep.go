package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Trigger a sweep over all active watches",
		Long: "Run a full sweep immediately instead of waiting for the next\n" +
			"scheduled tick. The command blocks until the sweep completes.",
		Example: `  vw sweep
  vw sweep --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stats, err := c.TriggerSweep(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stats)
			}
			fmt.Printf("Sweep complete: %d watches checked, %d notifications sent, %d failed checks (%s)\n",
				stats.Watches, stats.Notified, stats.FailedChecks, stats.Duration)
			return nil
		},
	}
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show aggregate system counts",
		Example: `  vw state
  vw state --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			state, err := c.GetSystemState(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(state)
			}
			fmt.Printf("Watches:\t%d (%d active)\n", state.WatchesTotal, state.WatchesActive)
			fmt.Printf("Listings:\t%d\n", state.ListingsTotal)
			fmt.Printf("Notifications:\t%d\n", state.NotificationsTotal)
			return nil
		},
	}
}
