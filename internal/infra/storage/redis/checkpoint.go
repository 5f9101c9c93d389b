package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/netflow/internal/ingest"

	"github.com/redis/go-redis/v9"
)

// checkpointKey holds the number of the last processed block as a decimal string.
const checkpointKey = keyPrefix + ":checkpoint"

// SaveCheckpoint stores number as the last processed block. The key never expires.
func (c *client) SaveCheckpoint(ctx context.Context, number uint64) error {
	return c.conn.Set(ctx, checkpointKey, number, 0).Err()
}

// LoadLatestCheckpoint returns the last saved block number, or
// ingest.ErrNoCheckpointFound when the key does not exist.
func (c *client) LoadLatestCheckpoint(ctx context.Context) (uint64, error) {
	number, err := c.conn.Get(ctx, checkpointKey).Uint64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ingest.ErrNoCheckpointFound
		}

		return 0, fmt.Errorf("load checkpoint: %w", err)
	}

	return number, nil
}

// Compile-time assertion to ensure client implements the CheckpointStorage interface.
var _ ingest.CheckpointStorage = new(client)
