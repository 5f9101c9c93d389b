package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/netflow/internal/ledger"
	"github.com/gabapcia/netflow/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// reconcileCommand recomputes the aggregate from the event log.
//
//	netflow reconcile
func reconcileCommand(rc ledger.Reconciler) *cli.Command {
	return &cli.Command{
		Name:        "reconcile",
		Description: "Rebuilds the cumulative net flow from every recorded transaction and reports the drift it corrected.",
		Usage:       "Recomputes the net flow aggregate. Safe to run while the ingestor is running.",
		Action: func(ctx context.Context, c *cli.Command) error {
			result, err := rc.Reconcile(ctx)
			if err != nil {
				return fmt.Errorf("reconcile ledger: %w", err)
			}

			drift := result.Drift()
			logger.Info(ctx, "ledger reconciled",
				"transactions", result.Transactions,
				"previous", result.Previous.String(),
				"recomputed", result.Recomputed.String(),
				"drift", drift.String(),
			)

			w := c.Root().Writer
			fmt.Fprintf(w, "Reconciled %d transactions\n", result.Transactions)
			fmt.Fprintf(w, "Previous net flow: %s POL\n", result.Previous.String())
			fmt.Fprintf(w, "Recomputed net flow: %s POL\n", result.Recomputed.String())
			if drift.IsZero() {
				fmt.Fprintln(w, "No drift found.")
			} else {
				fmt.Fprintf(w, "Corrected drift: %s POL\n", drift.String())
			}

			return nil
		},
	}
}
