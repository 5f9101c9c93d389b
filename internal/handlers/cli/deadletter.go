package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gabapcia/netflow/internal/ingest"

	"github.com/urfave/cli/v3"
)

const defaultDeadLetterLimit = 20

// ErrDeadLetterDisabled is returned by the deadletter command when no store is configured.
var ErrDeadLetterDisabled = errors.New("dead-letter store not configured (set REDIS_ADDR)")

// DeadLetterReader lists what the ingestor could not process.
type DeadLetterReader interface {
	SkippedBlocks(ctx context.Context, limit int64) ([]ingest.SkippedBlocks, error)
	FailedWrites(ctx context.Context, limit int64) ([]ingest.FailedWrite, error)
}

// deadLetterCommand prints the dead-letter trail, newest first.
//
//	netflow deadletter --limit 50
func deadLetterCommand(dl DeadLetterReader) *cli.Command {
	return &cli.Command{
		Name:        "deadletter",
		Description: "Lists block ranges the ingestor skipped and flow events that did not reach the ledger.",
		Usage:       "Prints the dead-letter trail, newest entries first. Requires Redis.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries to show per list",
				Value: defaultDeadLetterLimit,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if dl == nil {
				return ErrDeadLetterDisabled
			}

			limit := c.Int("limit")
			if limit < 1 {
				return fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
			}

			skipped, err := dl.SkippedBlocks(ctx, int64(limit))
			if err != nil {
				return fmt.Errorf("read skipped blocks: %w", err)
			}

			failed, err := dl.FailedWrites(ctx, int64(limit))
			if err != nil {
				return fmt.Errorf("read failed writes: %w", err)
			}

			printDeadLetters(c.Root().Writer, skipped, failed)
			return nil
		},
	}
}

func printDeadLetters(w io.Writer, skipped []ingest.SkippedBlocks, failed []ingest.FailedWrite) {
	fmt.Fprintf(w, "--- Skipped Blocks (%d) ---\n", len(skipped))
	for _, s := range skipped {
		fmt.Fprintf(w, "%s | Blocks: %d-%d | Reason: %s", s.Recorded.UTC().Format(time.RFC3339), s.From, s.To, s.Reason)
		if s.Error != "" {
			fmt.Fprintf(w, " | Error: %s", s.Error)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "--- Failed Writes (%d) ---\n", len(failed))
	for _, f := range failed {
		fmt.Fprintf(w, "%s | Tx Hash: %s | Block: %d | Stage: %s | Error: %s\n",
			f.Recorded.UTC().Format(time.RFC3339), f.Event.TxHash.Hex(), f.Event.BlockNumber, f.Stage, f.Error)
	}
}
