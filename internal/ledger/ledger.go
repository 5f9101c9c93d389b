// Package ledger defines the durable store behind the net flow pipeline: an
// append-only log of flow events plus a single cumulative aggregate.
//
// Implementations live under internal/infra/storage.
package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/netflow/internal/flow"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicateKey is returned by AppendTransaction when the transaction
	// hash is already recorded.
	ErrDuplicateKey = errors.New("transaction already recorded")

	// ErrUnavailable wraps connectivity and I/O failures of the underlying store.
	ErrUnavailable = errors.New("ledger unavailable")
)

// Aggregate is the singleton net flow record.
type Aggregate struct {
	CumulativeValue decimal.Decimal // signed sum of every delta ever applied
	LastUpdated     time.Time       // zero until the first delta is applied
}

// ReconcileResult describes what Reconcile changed.
type ReconcileResult struct {
	Previous     decimal.Decimal // aggregate value before reconciliation
	Recomputed   decimal.Decimal // signed sum over the event log
	Transactions int64           // number of events summed
}

// Drift returns how far the aggregate was from the event log.
func (r ReconcileResult) Drift() decimal.Decimal {
	return r.Recomputed.Sub(r.Previous)
}

// Writer is the write path used by the ingestor.
//
// Every method is durable on return. AppendTransaction and ApplyNetFlowDelta
// are independent operations: a failure between them leaves an event without
// its delta, which a later delivery of the same event or Reconcile repairs.
type Writer interface {
	// AppendTransaction inserts event as a new immutable row.
	//
	// Returns ErrDuplicateKey if event.TxHash is already recorded, and an
	// error wrapping ErrUnavailable on connectivity or I/O failures.
	AppendTransaction(ctx context.Context, event flow.Event) error

	// ApplyNetFlowDelta atomically adds delta to the aggregate (creating it
	// at zero when absent), refreshes its timestamp and returns the new total.
	//
	// key identifies the delta; applying a key that was already applied is a
	// no-op that returns the current total, so callers may safely retry.
	ApplyNetFlowDelta(ctx context.Context, key common.Hash, delta decimal.Decimal) (decimal.Decimal, error)
}

// Reader is the read-only surface used by reporting.
type Reader interface {
	// CurrentNetFlow returns the aggregate, or a zero Aggregate when no delta
	// has been applied yet.
	CurrentNetFlow(ctx context.Context) (Aggregate, error)

	// RecentTransactions returns up to limit events ordered by block number, newest first.
	RecentTransactions(ctx context.Context, limit int) ([]flow.Event, error)
}

// Reconciler rebuilds the aggregate from the event log.
type Reconciler interface {
	// Reconcile recomputes the signed sum of all recorded events, overwrites
	// the aggregate with it and marks every recorded event as applied.
	Reconcile(ctx context.Context) (ReconcileResult, error)
}

// Store is a complete ledger implementation.
type Store interface {
	Writer
	Reader
	Reconciler

	// Close releases the resources held by the store.
	Close()
}
