// Package ledgertest holds the behavioural test suite that every ledger.Store
// implementation must pass.
package ledgertest

import (
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/netflow/internal/flow"
	"github.com/gabapcia/netflow/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewStoreFunc returns an empty store. Cleanup must be registered on t.
type NewStoreFunc func(t *testing.T) ledger.Store

var (
	watched   = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	unwatched = common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
)

// Event builds a flow event for tests. Positive values are inflows to the
// watched address, negative values are outflows from it.
func Event(n int, blockNumber uint64, value string) flow.Event {
	amount := decimal.RequireFromString(value)

	event := flow.Event{
		TxHash:      common.BigToHash(big.NewInt(int64(n + 1))),
		BlockNumber: blockNumber,
		From:        unwatched,
		To:          watched,
		Direction:   flow.Inflow,
		Value:       amount.Abs(),
		Timestamp:   time.Date(2025, 7, 1, 12, 0, n%60, 0, time.UTC),
	}

	if amount.IsNegative() {
		event.From, event.To = watched, unwatched
		event.Direction = flow.Outflow
	}

	return event
}

// Run executes the suite against the stores produced by newStore.
func Run(t *testing.T, newStore NewStoreFunc) {
	t.Run("empty aggregate defaults to zero", func(t *testing.T) {
		store := newStore(t)

		aggregate, err := store.CurrentNetFlow(t.Context())
		require.NoError(t, err)
		assert.True(t, aggregate.CumulativeValue.IsZero())
		assert.True(t, aggregate.LastUpdated.IsZero())

		events, err := store.RecentTransactions(t.Context(), 5)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("append rejects duplicate hashes", func(t *testing.T) {
		store := newStore(t)
		event := Event(1, 100, "2")

		require.NoError(t, store.AppendTransaction(t.Context(), event))

		err := store.AppendTransaction(t.Context(), event)
		assert.ErrorIs(t, err, ledger.ErrDuplicateKey)

		events, err := store.RecentTransactions(t.Context(), 10)
		require.NoError(t, err)
		assert.Len(t, events, 1)
	})

	t.Run("appended events keep their fields", func(t *testing.T) {
		store := newStore(t)
		event := Event(7, 4242, "-0.000000000000000001")

		require.NoError(t, store.AppendTransaction(t.Context(), event))

		events, err := store.RecentTransactions(t.Context(), 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		AssertEventEqual(t, event, events[0])
	})

	t.Run("apply delta creates and updates the aggregate", func(t *testing.T) {
		store := newStore(t)

		total, err := store.ApplyNetFlowDelta(t.Context(), common.HexToHash("0x01"), decimal.NewFromInt(-2))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(-2).Equal(total), "got %s", total)

		total, err = store.ApplyNetFlowDelta(t.Context(), common.HexToHash("0x02"), decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(3).Equal(total), "got %s", total)

		aggregate, err := store.CurrentNetFlow(t.Context())
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(3).Equal(aggregate.CumulativeValue))
		assert.False(t, aggregate.LastUpdated.IsZero())
	})

	t.Run("apply delta is idempotent by key", func(t *testing.T) {
		store := newStore(t)
		key := common.HexToHash("0x01")

		_, err := store.ApplyNetFlowDelta(t.Context(), key, decimal.NewFromInt(5))
		require.NoError(t, err)

		total, err := store.ApplyNetFlowDelta(t.Context(), key, decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(5).Equal(total), "got %s", total)
	})

	t.Run("concurrent deltas are never lost", func(t *testing.T) {
		store := newStore(t)
		const writers = 32

		var wg sync.WaitGroup
		for i := range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.ApplyNetFlowDelta(t.Context(), common.BigToHash(big.NewInt(int64(i+1))), decimal.RequireFromString("0.5"))
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		aggregate, err := store.CurrentNetFlow(t.Context())
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(writers/2).Equal(aggregate.CumulativeValue), "got %s", aggregate.CumulativeValue)
	})

	t.Run("recent transactions are ordered by block descending", func(t *testing.T) {
		store := newStore(t)
		for i, block := range []uint64{100, 103, 101, 102, 104, 99} {
			require.NoError(t, store.AppendTransaction(t.Context(), Event(i, block, "1")))
		}

		events, err := store.RecentTransactions(t.Context(), 3)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, uint64(104), events[0].BlockNumber)
		assert.Equal(t, uint64(103), events[1].BlockNumber)
		assert.Equal(t, uint64(102), events[2].BlockNumber)
	})

	t.Run("aggregate matches the signed sum of the log", func(t *testing.T) {
		store := newStore(t)
		values := []string{"-2", "5", "0.1", "-0.3", "1000000.000000000000000001", "-7.25", "0.2"}

		shadow := decimal.Zero
		for i, value := range values {
			event := Event(i, uint64(100+i), value)
			require.NoError(t, store.AppendTransaction(t.Context(), event))
			_, err := store.ApplyNetFlowDelta(t.Context(), event.TxHash, event.Delta())
			require.NoError(t, err)

			shadow = shadow.Add(decimal.RequireFromString(value))
		}

		aggregate, err := store.CurrentNetFlow(t.Context())
		require.NoError(t, err)
		assert.True(t, shadow.Equal(aggregate.CumulativeValue), "shadow %s, stored %s", shadow, aggregate.CumulativeValue)

		events, err := store.RecentTransactions(t.Context(), len(values))
		require.NoError(t, err)

		fromLog := decimal.Zero
		for _, event := range events {
			fromLog = fromLog.Add(event.Delta())
		}
		assert.True(t, fromLog.Equal(aggregate.CumulativeValue), "log %s, stored %s", fromLog, aggregate.CumulativeValue)
	})

	t.Run("reconcile heals an event whose delta was never applied", func(t *testing.T) {
		store := newStore(t)

		applied := Event(1, 100, "-2")
		require.NoError(t, store.AppendTransaction(t.Context(), applied))
		_, err := store.ApplyNetFlowDelta(t.Context(), applied.TxHash, applied.Delta())
		require.NoError(t, err)

		// Crash window: the event is recorded but its delta is not.
		orphan := Event(2, 101, "5")
		require.NoError(t, store.AppendTransaction(t.Context(), orphan))

		result, err := store.Reconcile(t.Context())
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(-2).Equal(result.Previous), "previous %s", result.Previous)
		assert.True(t, decimal.NewFromInt(3).Equal(result.Recomputed), "recomputed %s", result.Recomputed)
		assert.True(t, decimal.NewFromInt(5).Equal(result.Drift()), "drift %s", result.Drift())
		assert.Equal(t, int64(2), result.Transactions)

		// A late redelivery of the orphan must not count it twice.
		total, err := store.ApplyNetFlowDelta(t.Context(), orphan.TxHash, orphan.Delta())
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(3).Equal(total), "got %s", total)
	})

	t.Run("reconcile on an empty ledger", func(t *testing.T) {
		store := newStore(t)

		result, err := store.Reconcile(t.Context())
		require.NoError(t, err)
		assert.True(t, result.Previous.IsZero())
		assert.True(t, result.Recomputed.IsZero())
		assert.Zero(t, result.Transactions)
	})
}

// AssertEventEqual compares two events, using decimal and time equality
// instead of struct equality.
func AssertEventEqual(t *testing.T, want, got flow.Event) {
	t.Helper()

	assert.Equal(t, want.TxHash, got.TxHash, "tx hash")
	assert.Equal(t, want.BlockNumber, got.BlockNumber, "block number")
	assert.Equal(t, want.From, got.From, "from")
	assert.Equal(t, want.To, got.To, "to")
	assert.Equal(t, want.Direction, got.Direction, "direction")
	assert.True(t, want.Value.Equal(got.Value), fmt.Sprintf("value: want %s, got %s", want.Value, got.Value))
	assert.True(t, want.Timestamp.Equal(got.Timestamp), fmt.Sprintf("timestamp: want %s, got %s", want.Timestamp, got.Timestamp))
}
