// Package memory provides an in-process ledger.Store. It backs the
// "memory://" DATABASE_URL and the pipeline tests; nothing survives a restart.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/gabapcia/netflow/internal/flow"
	"github.com/gabapcia/netflow/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Ledger keeps the event log and the aggregate behind a single RWMutex, so
// readers never observe a half-applied delta.
type Ledger struct {
	mu sync.RWMutex

	events    []flow.Event
	recorded  map[common.Hash]struct{}
	applied   map[common.Hash]decimal.Decimal
	aggregate ledger.Aggregate

	now func() time.Time
}

// Compile-time assertion that Ledger implements ledger.Store.
var _ ledger.Store = (*Ledger)(nil)

// NewLedger returns an empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{
		recorded:  make(map[common.Hash]struct{}),
		applied:   make(map[common.Hash]decimal.Decimal),
		aggregate: ledger.Aggregate{CumulativeValue: decimal.Zero},
		now:       time.Now,
	}
}

// AppendTransaction implements ledger.Writer.
func (l *Ledger) AppendTransaction(ctx context.Context, event flow.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.recorded[event.TxHash]; ok {
		return ledger.ErrDuplicateKey
	}

	l.recorded[event.TxHash] = struct{}{}
	l.events = append(l.events, event)
	return nil
}

// ApplyNetFlowDelta implements ledger.Writer.
func (l *Ledger) ApplyNetFlowDelta(ctx context.Context, key common.Hash, delta decimal.Decimal) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Decimal{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.applied[key]; ok {
		return l.aggregate.CumulativeValue, nil
	}

	l.applied[key] = delta
	l.aggregate = ledger.Aggregate{
		CumulativeValue: l.aggregate.CumulativeValue.Add(delta),
		LastUpdated:     l.now().UTC(),
	}

	return l.aggregate.CumulativeValue, nil
}

// CurrentNetFlow implements ledger.Reader.
func (l *Ledger) CurrentNetFlow(ctx context.Context) (ledger.Aggregate, error) {
	if err := ctx.Err(); err != nil {
		return ledger.Aggregate{}, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.aggregate, nil
}

// RecentTransactions implements ledger.Reader.
func (l *Ledger) RecentTransactions(ctx context.Context, limit int) ([]flow.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	events := slices.Clone(l.events)
	l.mu.RUnlock()

	// Stable so events of the same block keep their insertion order, reversed.
	slices.Reverse(events)
	slices.SortStableFunc(events, func(a, b flow.Event) int {
		return cmp.Compare(b.BlockNumber, a.BlockNumber)
	})

	if limit >= 0 && len(events) > limit {
		events = events[:limit]
	}

	return events, nil
}

// Reconcile implements ledger.Reconciler.
func (l *Ledger) Reconcile(ctx context.Context) (ledger.ReconcileResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.ReconcileResult{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	recomputed := decimal.Zero
	for _, event := range l.events {
		recomputed = recomputed.Add(event.Delta())
		l.applied[event.TxHash] = event.Delta()
	}

	result := ledger.ReconcileResult{
		Previous:     l.aggregate.CumulativeValue,
		Recomputed:   recomputed,
		Transactions: int64(len(l.events)),
	}

	l.aggregate = ledger.Aggregate{
		CumulativeValue: recomputed,
		LastUpdated:     l.now().UTC(),
	}

	return result, nil
}

// Close implements ledger.Store. It is a no-op.
func (l *Ledger) Close() {}
