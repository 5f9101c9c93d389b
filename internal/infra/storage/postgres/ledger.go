package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/netflow/internal/flow"
	"github.com/gabapcia/netflow/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// singletonID is the only id net_flows ever holds.
const singletonID = 1

const (
	insertTransactionQuery = `
		INSERT INTO transactions (tx_hash, block_number, from_address, to_address, value, timestamp, direction)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7)`

	claimDeltaQuery = `
		INSERT INTO net_flow_deltas (tx_hash, delta, applied_at)
		VALUES ($1, $2::numeric, $3)
		ON CONFLICT (tx_hash) DO NOTHING`

	accumulateQuery = `
		INSERT INTO net_flows (id, timestamp, cumulative_net_flow)
		VALUES ($1, $2, $3::numeric)
		ON CONFLICT (id) DO UPDATE
		SET cumulative_net_flow = net_flows.cumulative_net_flow + EXCLUDED.cumulative_net_flow,
		    timestamp = EXCLUDED.timestamp
		RETURNING cumulative_net_flow::text`

	overwriteAggregateQuery = `
		INSERT INTO net_flows (id, timestamp, cumulative_net_flow)
		VALUES ($1, $2, $3::numeric)
		ON CONFLICT (id) DO UPDATE
		SET cumulative_net_flow = EXCLUDED.cumulative_net_flow,
		    timestamp = EXCLUDED.timestamp`

	selectAggregateQuery = `
		SELECT cumulative_net_flow::text, timestamp
		FROM net_flows
		WHERE id = $1`

	lockAggregateQuery = `
		SELECT cumulative_net_flow::text
		FROM net_flows
		WHERE id = $1
		FOR UPDATE`

	sumTransactionsQuery = `
		SELECT COALESCE(SUM(CASE WHEN direction = 'outflow' THEN -value ELSE value END), 0)::text, COUNT(*)
		FROM transactions`

	markAllAppliedQuery = `
		INSERT INTO net_flow_deltas (tx_hash, delta, applied_at)
		SELECT tx_hash, CASE WHEN direction = 'outflow' THEN -value ELSE value END, $1
		FROM transactions
		ON CONFLICT (tx_hash) DO NOTHING`

	recentTransactionsQuery = `
		SELECT tx_hash, block_number, from_address, to_address, value::text, timestamp, direction
		FROM transactions
		ORDER BY block_number DESC
		LIMIT $1`
)

// Ledger is the PostgreSQL ledger.Store. The pool is shared with readers;
// only the singleton row is locked, and only for the length of one upsert.
type Ledger struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// Compile-time assertion that Ledger implements ledger.Store.
var _ ledger.Store = (*Ledger)(nil)

// NewLedger wraps an existing pool. Call Migrate before using it.
func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{
		pool: pool,
		now:  time.Now,
	}
}

// timestamp renders t the way every text timestamp column stores it.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// unavailable wraps a store failure so callers can match ledger.ErrUnavailable.
func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ledger.ErrUnavailable, op, err)
}

// AppendTransaction implements ledger.Writer.
func (l *Ledger) AppendTransaction(ctx context.Context, event flow.Event) error {
	_, err := l.pool.Exec(ctx, insertTransactionQuery,
		event.TxHash.Hex(),
		int64(event.BlockNumber),
		lowerHex(event.From),
		lowerHex(event.To),
		event.Value.String(),
		timestamp(event.Timestamp),
		string(event.Direction),
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ledger.ErrDuplicateKey
		}

		return unavailable("append transaction", err)
	}

	return nil
}

// ApplyNetFlowDelta implements ledger.Writer.
//
// The key claim and the arithmetic upsert run in one transaction; the upsert
// takes the row lock, so concurrent callers serialize on it and no delta is lost.
func (l *Ledger) ApplyNetFlowDelta(ctx context.Context, key common.Hash, delta decimal.Decimal) (decimal.Decimal, error) {
	var (
		total = decimal.Zero
		now   = timestamp(l.now())
	)

	err := pgx.BeginFunc(ctx, l.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, claimDeltaQuery, key.Hex(), delta.String(), now)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			aggregate, err := selectAggregate(ctx, tx)
			total = aggregate.CumulativeValue
			return err
		}

		var raw string
		if err := tx.QueryRow(ctx, accumulateQuery, singletonID, now, delta.String()).Scan(&raw); err != nil {
			return err
		}

		total, err = decimal.NewFromString(raw)
		return err
	})
	if err != nil {
		return decimal.Decimal{}, unavailable("apply net flow delta", err)
	}

	return total, nil
}

// querier is the read surface shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// selectAggregate reads the singleton row, defaulting to zero when absent.
func selectAggregate(ctx context.Context, q querier) (ledger.Aggregate, error) {
	var rawValue, rawTimestamp string

	err := q.QueryRow(ctx, selectAggregateQuery, singletonID).Scan(&rawValue, &rawTimestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Aggregate{CumulativeValue: decimal.Zero}, nil
	}
	if err != nil {
		return ledger.Aggregate{}, err
	}

	value, err := decimal.NewFromString(rawValue)
	if err != nil {
		return ledger.Aggregate{}, fmt.Errorf("decode cumulative_net_flow: %w", err)
	}

	lastUpdated, err := time.Parse(time.RFC3339Nano, rawTimestamp)
	if err != nil {
		return ledger.Aggregate{}, fmt.Errorf("decode net_flows timestamp: %w", err)
	}

	return ledger.Aggregate{CumulativeValue: value, LastUpdated: lastUpdated}, nil
}

// CurrentNetFlow implements ledger.Reader.
func (l *Ledger) CurrentNetFlow(ctx context.Context) (ledger.Aggregate, error) {
	aggregate, err := selectAggregate(ctx, l.pool)
	if err != nil {
		return ledger.Aggregate{}, unavailable("read net flow", err)
	}

	return aggregate, nil
}

// RecentTransactions implements ledger.Reader.
func (l *Ledger) RecentTransactions(ctx context.Context, limit int) ([]flow.Event, error) {
	rows, err := l.pool.Query(ctx, recentTransactionsQuery, limit)
	if err != nil {
		return nil, unavailable("read recent transactions", err)
	}
	defer rows.Close()

	events := make([]flow.Event, 0, limit)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, unavailable("read recent transactions", err)
	}

	return events, nil
}

// scanEvent decodes one transactions row.
func scanEvent(row pgx.Row) (flow.Event, error) {
	var (
		txHash, from, to, rawValue, rawTimestamp, direction string
		blockNumber                                         int64
	)

	if err := row.Scan(&txHash, &blockNumber, &from, &to, &rawValue, &rawTimestamp, &direction); err != nil {
		return flow.Event{}, err
	}

	value, err := decimal.NewFromString(rawValue)
	if err != nil {
		return flow.Event{}, fmt.Errorf("decode value of %s: %w", txHash, err)
	}

	observedAt, err := time.Parse(time.RFC3339Nano, rawTimestamp)
	if err != nil {
		return flow.Event{}, fmt.Errorf("decode timestamp of %s: %w", txHash, err)
	}

	return flow.Event{
		TxHash:      common.HexToHash(txHash),
		BlockNumber: uint64(blockNumber),
		From:        common.HexToAddress(from),
		To:          common.HexToAddress(to),
		Direction:   flow.Direction(direction),
		Value:       value,
		Timestamp:   observedAt,
	}, nil
}

// Reconcile implements ledger.Reconciler.
//
// It runs under REPEATABLE READ so the sum and the applied-key backfill see
// the same snapshot of transactions; a concurrent delta on the aggregate row
// makes it fail with a serialization error instead of losing that delta.
func (l *Ledger) Reconcile(ctx context.Context) (ledger.ReconcileResult, error) {
	var result ledger.ReconcileResult

	err := pgx.BeginTxFunc(ctx, l.pool, pgx.TxOptions{IsoLevel: pgx.RepeatableRead}, func(tx pgx.Tx) error {
		previous := decimal.Zero

		var rawPrevious string
		err := tx.QueryRow(ctx, lockAggregateQuery, singletonID).Scan(&rawPrevious)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
		case err != nil:
			return err
		default:
			if previous, err = decimal.NewFromString(rawPrevious); err != nil {
				return err
			}
		}

		var rawSum string
		if err := tx.QueryRow(ctx, sumTransactionsQuery).Scan(&rawSum, &result.Transactions); err != nil {
			return err
		}

		recomputed, err := decimal.NewFromString(rawSum)
		if err != nil {
			return err
		}

		now := timestamp(l.now())
		if _, err := tx.Exec(ctx, markAllAppliedQuery, now); err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, overwriteAggregateQuery, singletonID, now, recomputed.String()); err != nil {
			return err
		}

		result.Previous = previous
		result.Recomputed = recomputed
		return nil
	})
	if err != nil {
		return ledger.ReconcileResult{}, unavailable("reconcile", err)
	}

	return result, nil
}

// Close implements ledger.Store by closing the pool.
func (l *Ledger) Close() {
	l.pool.Close()
}
