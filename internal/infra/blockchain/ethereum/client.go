// Package ethereum implements ingest.Blockchain for Ethereum-compatible
// nodes (Polygon PoS included) over JSON-RPC.
//
// New heads come from an eth_subscribe("newHeads") stream when the
// connection supports subscriptions and from eth_blockNumber polling
// otherwise.
package ethereum

import (
	"time"

	"github.com/gabapcia/netflow/internal/ingest"
	"github.com/gabapcia/netflow/internal/pkg/transport/jsonrpc"
)

// defaultPollInterval is roughly the Polygon PoS block time.
const defaultPollInterval = 2 * time.Second

// client implements ingest.Blockchain.
type client struct {
	conn         jsonrpc.Client
	pollInterval time.Duration
}

// Ensure client implements the ingest.Blockchain interface at compile time.
var _ ingest.Blockchain = (*client)(nil)

// Option configures the client.
type Option func(*client)

// WithPollInterval sets how often eth_blockNumber is polled when the
// connection cannot subscribe. Default: 2 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *client) {
		c.pollInterval = d
	}
}

// NewClient returns a block feed over conn. If conn is a jsonrpc.Subscriber
// heads are pushed by the node; otherwise they are polled.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	c := &client{
		conn:         conn,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
