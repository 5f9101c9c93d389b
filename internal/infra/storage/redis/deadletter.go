package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/netflow/internal/ingest"
)

// Dead-letter lists. Entries are JSON documents pushed to the head, so
// LRANGE 0 N returns the newest first.
const (
	skippedBlocksKey = keyPrefix + ":deadletter:blocks"
	failedWritesKey  = keyPrefix + ":deadletter:writes"
)

// RecordSkippedBlocks implements ingest.DeadLetterSink.
func (c *client) RecordSkippedBlocks(ctx context.Context, skipped ingest.SkippedBlocks) error {
	return c.push(ctx, skippedBlocksKey, skipped)
}

// RecordFailedWrite implements ingest.DeadLetterSink.
func (c *client) RecordFailedWrite(ctx context.Context, failed ingest.FailedWrite) error {
	return c.push(ctx, failedWritesKey, failed)
}

// SkippedBlocks returns up to limit skipped ranges, newest first.
func (c *client) SkippedBlocks(ctx context.Context, limit int64) ([]ingest.SkippedBlocks, error) {
	return readList[ingest.SkippedBlocks](ctx, c, skippedBlocksKey, limit)
}

// FailedWrites returns up to limit failed writes, newest first.
func (c *client) FailedWrites(ctx context.Context, limit int64) ([]ingest.FailedWrite, error) {
	return readList[ingest.FailedWrite](ctx, c, failedWritesKey, limit)
}

func (c *client) push(ctx context.Context, key string, entry any) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode dead-letter entry: %w", err)
	}

	pipe := c.conn.TxPipeline()
	pipe.LPush(ctx, key, payload)
	if c.deadLetterLimit > 0 {
		pipe.LTrim(ctx, key, 0, c.deadLetterLimit-1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push to %s: %w", key, err)
	}

	return nil
}

func readList[T any](ctx context.Context, c *client, key string, limit int64) ([]T, error) {
	if limit <= 0 {
		return []T{}, nil
	}

	raw, err := c.conn.LRange(ctx, key, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	entries := make([]T, 0, len(raw))
	for _, item := range raw {
		var entry T
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, fmt.Errorf("decode entry of %s: %w", key, err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// Compile-time assertion to ensure client implements the DeadLetterSink interface.
var _ ingest.DeadLetterSink = new(client)
