package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabapcia/netflow/internal/flow"
	"github.com/gabapcia/netflow/internal/ledger"

	"github.com/urfave/cli/v3"
)

const (
	defaultReportLimit = 5
	maxReportLimit     = 1000

	// shortHashLength keeps the 0x prefix and the first 8 hex digits.
	shortHashLength = 10
)

// ErrInvalidLimit is returned when --limit is outside [1, maxReportLimit].
var ErrInvalidLimit = errors.New("invalid limit")

// reportCommand prints the current net flow and the most recent transactions.
//
//	netflow report --limit 10
func reportCommand(lr ledger.Reader) *cli.Command {
	return &cli.Command{
		Name:        "report",
		Description: "Shows the cumulative net flow of the watched wallets and their latest transactions.",
		Usage:       "Prints the current net flow followed by the most recent transactions, newest block first.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Number of recent transactions to show",
				Value: defaultReportLimit,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			limit := c.Int("limit")
			if limit < 1 || limit > maxReportLimit {
				return fmt.Errorf("%w: %d (expected 1..%d)", ErrInvalidLimit, limit, maxReportLimit)
			}

			aggregate, err := lr.CurrentNetFlow(ctx)
			if err != nil {
				return fmt.Errorf("read net flow: %w", err)
			}

			events, err := lr.RecentTransactions(ctx, limit)
			if err != nil {
				return fmt.Errorf("read recent transactions: %w", err)
			}

			printReport(c.Root().Writer, aggregate, events)
			return nil
		},
	}
}

func printReport(w io.Writer, aggregate ledger.Aggregate, events []flow.Event) {
	fmt.Fprintf(w, "Current cumulative net flow for Binance hot wallets: %s POL\n", aggregate.CumulativeValue.String())
	if !aggregate.LastUpdated.IsZero() {
		fmt.Fprintf(w, "Last updated: %s\n", aggregate.LastUpdated.UTC().Format("2006-01-02 15:04:05 MST"))
	}

	if len(events) == 0 {
		fmt.Fprintln(w, "No recent transactions found.")
		return
	}

	fmt.Fprintf(w, "--- %d Most Recent Transactions ---\n", len(events))
	for _, e := range events {
		fmt.Fprintf(w, "Tx Hash: %s... | Block: %d | Value: %s POL | %s\n",
			shortHash(e.TxHash.Hex()), e.BlockNumber, e.Value.String(), e.Direction)
	}
}

func shortHash(hex string) string {
	if len(hex) <= shortHashLength {
		return hex
	}

	return hex[:shortHashLength]
}
