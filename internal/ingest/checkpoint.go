package ingest

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when nothing was saved yet.
var ErrNoCheckpointFound = errors.New("no checkpoint found")

// CheckpointStorage persists the number of the last fully processed block.
//
// The ingestor only uses it to notice blocks missed while it was down; it
// never backfills them.
type CheckpointStorage interface {
	// SaveCheckpoint records number as the last processed block, overwriting
	// any previous value.
	SaveCheckpoint(ctx context.Context, number uint64) error

	// LoadLatestCheckpoint returns the last saved block number, or
	// ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context) (uint64, error)
}

// nopCheckpoint stores nothing and never finds a checkpoint.
type nopCheckpoint struct{}

// SaveCheckpoint is a no-op.
func (nopCheckpoint) SaveCheckpoint(_ context.Context, _ uint64) error {
	return nil
}

// LoadLatestCheckpoint always returns ErrNoCheckpointFound.
func (nopCheckpoint) LoadLatestCheckpoint(_ context.Context) (uint64, error) {
	return 0, ErrNoCheckpointFound
}
