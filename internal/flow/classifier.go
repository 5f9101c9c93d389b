package flow

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Membership answers whether an address is watched. watchset.WatchSet satisfies it.
type Membership interface {
	Contains(addr common.Address) bool
}

// WeiToDisplay converts an amount of wei into an exact decimal amount of the
// chain's display unit. A nil value converts to zero.
func WeiToDisplay(wei *uint256.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(wei.ToBig(), weiExponent)
}

// Classify decides whether tx moves value across the boundary of watched and
// returns the Event to record when it does.
//
// The rules are:
//   - contract creations (no recipient) are ignored;
//   - transfers where neither side is watched are ignored;
//   - transfers where both sides are watched cancel out and are ignored;
//   - zero-value transfers are ignored;
//   - otherwise the event is an Inflow when the recipient is watched and an
//     Outflow when the sender is watched.
//
// observedAt stamps the event with the time the pipeline saw it, not the
// time the block was mined. Classify performs no I/O.
func Classify(tx Transaction, watched Membership, observedAt time.Time) (Event, bool) {
	if tx.To == nil {
		return Event{}, false
	}

	var (
		isOutflow = watched.Contains(tx.From)
		isInflow  = watched.Contains(*tx.To)
	)

	if isOutflow == isInflow {
		return Event{}, false
	}

	value := WeiToDisplay(tx.Value)
	if value.IsZero() {
		return Event{}, false
	}

	direction := Inflow
	if isOutflow {
		direction = Outflow
	}

	return Event{
		TxHash:      tx.Hash,
		BlockNumber: tx.BlockNumber,
		From:        tx.From,
		To:          *tx.To,
		Direction:   direction,
		Value:       value,
		Timestamp:   observedAt.UTC(),
	}, true
}
