package ethereum

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/netflow/internal/pkg/logger"
	"github.com/gabapcia/netflow/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/netflow/internal/pkg/x/chflow"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// headsChannelBufferSize lets the feed run a few heads ahead of the ingestor.
const headsChannelBufferSize = 16

// headResponse is the subset of a newHeads notification we read.
type headResponse struct {
	Number hexutil.Uint64 `json:"number"`
}

// SubscribeNewHeads implements ingest.Blockchain.
func (c *client) SubscribeNewHeads(ctx context.Context) (<-chan uint64, error) {
	if subscriber, ok := c.conn.(jsonrpc.Subscriber); ok {
		return c.subscribeNewHeads(ctx, subscriber)
	}

	return c.pollNewHeads(ctx)
}

// subscribeNewHeads relays newHeads notifications. The channel closes when
// the subscription ends.
func (c *client) subscribeNewHeads(ctx context.Context, subscriber jsonrpc.Subscriber) (<-chan uint64, error) {
	notifications, err := subscriber.Subscribe(ctx, "newHeads")
	if err != nil {
		return nil, fmt.Errorf("subscribe to newHeads: %w", err)
	}

	headsCh := make(chan uint64, headsChannelBufferSize)
	go func() {
		defer close(headsCh)

		for {
			raw, ok := chflow.Receive(ctx, notifications)
			if !ok {
				return
			}

			var head headResponse
			if err := json.Unmarshal(raw, &head); err != nil {
				logger.Warn(ctx, "discarding malformed block header", "error", err)
				continue
			}

			if ok := chflow.Send(ctx, headsCh, uint64(head.Number)); !ok {
				return
			}
		}
	}()

	return headsCh, nil
}

// pollNewHeads polls eth_blockNumber and emits every number from the latest
// block at start onward, in order. The first poll must succeed; later poll
// failures are logged and retried on the next tick.
func (c *client) pollNewHeads(ctx context.Context) (<-chan uint64, error) {
	latest, err := c.getLatestBlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("get latest block number: %w", err)
	}

	headsCh := make(chan uint64, headsChannelBufferSize)
	go func() {
		defer close(headsCh)

		if ok := chflow.Send(ctx, headsCh, latest); !ok {
			return
		}

		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			next, ok := c.pollOnce(ctx, latest, headsCh)
			if !ok {
				return
			}

			latest = next
		}
	}()

	return headsCh, nil
}

// pollOnce emits every block number after last up to the node's latest and
// returns the new last number. It returns false when ctx was canceled.
func (c *client) pollOnce(ctx context.Context, last uint64, headsCh chan<- uint64) (uint64, bool) {
	latest, err := c.getLatestBlockNumber(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return last, false
		}

		logger.Warn(ctx, "failed to poll latest block number", "error", err)
		return last, true
	}

	for number := last + 1; number <= latest; number++ {
		if ok := chflow.Send(ctx, headsCh, number); !ok {
			return last, false
		}

		last = number
	}

	return last, true
}
