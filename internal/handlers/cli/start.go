package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/netflow/internal/ingest"

	"github.com/urfave/cli/v3"
)

// startCommand runs the ingestor in the foreground.
//
//	netflow start
//
// SIGINT and SIGTERM stop it cleanly. A closed block feed ends the command
// with ingest.ErrFeedClosed so a supervisor can restart the process.
func startCommand(ing ingest.Service) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Follows new Polygon blocks and records every POL transfer touching a watched wallet.",
		Usage:       "Runs the ingestor until Ctrl+C, a termination signal or the end of the block feed.",
		Action: func(ctx context.Context, _ *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			return ing.Run(ctx)
		},
	}
}
