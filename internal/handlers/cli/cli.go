// Package cli exposes netflow as a command-line application.
package cli

import (
	"context"
	"os"

	"github.com/gabapcia/netflow/internal/ingest"
	"github.com/gabapcia/netflow/internal/ledger"

	"github.com/urfave/cli/v3"
)

// Run builds the netflow command tree and executes it against os.Args.
//
// Commands:
//
//   - `start`: runs the ingestor until interrupted or the block feed ends.
//   - `report`: prints the cumulative net flow and the latest transactions.
//   - `reconcile`: rebuilds the aggregate from the event log.
//   - `deadletter`: lists skipped blocks and failed writes (needs Redis).
//
// dl may be nil when no dead-letter store is configured.
func Run(ctx context.Context, ing ingest.Service, lr ledger.Reader, rc ledger.Reconciler, dl DeadLetterReader) error {
	return newApp(ing, lr, rc, dl).Run(ctx, os.Args)
}

func newApp(ing ingest.Service, lr ledger.Reader, rc ledger.Reconciler, dl DeadLetterReader) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "netflow",
		Description:           "Tracks the net POL flow of the Binance hot wallets on Polygon.",
		Usage:                 "netflow [command] [flags]",
		Commands: []*cli.Command{
			startCommand(ing),
			reportCommand(lr),
			reconcileCommand(rc),
			deadLetterCommand(dl),
		},
	}
}
