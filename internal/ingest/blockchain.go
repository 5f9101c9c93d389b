package ingest

import (
	"context"
	"errors"

	"github.com/gabapcia/netflow/internal/flow"
)

var (
	// ErrConnect is returned by Run when the head subscription cannot be established.
	ErrConnect = errors.New("connect to block feed")

	// ErrFeedClosed is returned by Run when the feed ends the head sequence.
	ErrFeedClosed = errors.New("block feed closed")

	// ErrFetch wraps a failure to retrieve a block body.
	ErrFetch = errors.New("fetch block")

	// ErrBlockNotFound is returned by Blockchain.FetchBlockByNumber when the
	// node has no block at the requested number.
	ErrBlockNotFound = errors.New("block not found")
)

// Block is a fully hydrated block. It is consumed once and never retained.
type Block struct {
	Number       uint64             // block number
	Transactions []flow.Transaction // transactions in block order
}

// Blockchain is the block feed consumed by the ingestor.
type Blockchain interface {
	// SubscribeNewHeads starts streaming the numbers of new blocks in the
	// order the node announces them. Numbers may skip (reconnection gaps) or
	// repeat (re-announcements).
	//
	// The returned channel is closed when ctx is canceled or the underlying
	// connection ends.
	SubscribeNewHeads(ctx context.Context) (<-chan uint64, error)

	// FetchBlockByNumber retrieves the block with all of its transactions.
	// It returns ErrBlockNotFound when the node does not know the block.
	FetchBlockByNumber(ctx context.Context, number uint64) (Block, error)
}
