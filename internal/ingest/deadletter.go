package ingest

import (
	"context"
	"time"

	"github.com/gabapcia/netflow/internal/flow"
)

// Reasons attached to dead-letter records.
const (
	ReasonFetchFailed = "fetch_failed" // the block body could not be retrieved
	ReasonGap         = "gap"          // the feed skipped these numbers
)

// Stages of a failed write.
const (
	StageAppend     = "append"     // the event row was not inserted
	StageAccumulate = "accumulate" // the event row exists but its delta was not applied
)

// SkippedBlocks is an inclusive range of blocks whose transactions were not ingested.
type SkippedBlocks struct {
	From     uint64    `json:"from"`
	To       uint64    `json:"to"`
	Reason   string    `json:"reason"`
	Error    string    `json:"error,omitempty"`
	Recorded time.Time `json:"recorded_at"`
}

// FailedWrite is a flow event that did not fully reach the ledger.
type FailedWrite struct {
	Event    flow.Event `json:"event"`
	Stage    string     `json:"stage"`
	Error    string     `json:"error"`
	Recorded time.Time  `json:"recorded_at"`
}

// DeadLetterSink keeps a durable trail of everything the ingestor skipped,
// so an operator can replay it or run a reconciliation.
type DeadLetterSink interface {
	RecordSkippedBlocks(ctx context.Context, skipped SkippedBlocks) error
	RecordFailedWrite(ctx context.Context, failed FailedWrite) error
}

// nopDeadLetter drops every record; failures are still logged by the ingestor.
type nopDeadLetter struct{}

func (nopDeadLetter) RecordSkippedBlocks(_ context.Context, _ SkippedBlocks) error { return nil }

func (nopDeadLetter) RecordFailedWrite(_ context.Context, _ FailedWrite) error { return nil }
