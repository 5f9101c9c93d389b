// Package flow decides whether a transaction moves value into or out of the
// watched addresses and derives the FlowEvent that the ledger records.
package flow

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// weiExponent is the scale between the chain's smallest unit and its display unit (10^18).
const weiExponent = -18

// Direction tells on which side of a transfer the watched address sits.
type Direction string

const (
	Inflow  Direction = "inflow"  // value sent to a watched address
	Outflow Direction = "outflow" // value sent from a watched address
)

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == Inflow || d == Outflow
}

// Transaction is the subset of a chain transaction the classifier reads.
type Transaction struct {
	Hash        common.Hash     // 32-byte transaction id
	From        common.Address  // sender
	To          *common.Address // recipient, nil for contract creation
	Value       *uint256.Int    // amount in wei, nil is treated as zero
	BlockNumber uint64          // block that included the transaction
}

// Event is one recorded transaction touching a watched address.
//
// Value is always the absolute amount in display units; the sign lives in
// Direction so the aggregate can be rebuilt from the event log.
type Event struct {
	TxHash      common.Hash     `json:"tx_hash"`
	BlockNumber uint64          `json:"block_number"`
	From        common.Address  `json:"from_address"`
	To          common.Address  `json:"to_address"`
	Direction   Direction       `json:"direction"`
	Value       decimal.Decimal `json:"value"`
	Timestamp   time.Time       `json:"timestamp"`
}

// Delta returns the signed change this event applies to the net flow.
func (e Event) Delta() decimal.Decimal {
	if e.Direction == Outflow {
		return e.Value.Neg()
	}

	return e.Value
}
