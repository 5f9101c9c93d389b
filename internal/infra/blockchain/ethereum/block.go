package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/netflow/internal/flow"
	"github.com/gabapcia/netflow/internal/ingest"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

// ErrValueOverflow is returned when a transaction value does not fit in 256 bits.
var ErrValueOverflow = errors.New("transaction value overflows 256 bits")

type (
	// transactionResponse is the subset of an eth_getBlockByNumber
	// transaction object the classifier needs.
	transactionResponse struct {
		Hash  common.Hash     `json:"hash"`
		From  common.Address  `json:"from"`
		To    *common.Address `json:"to"`
		Value *hexutil.Big    `json:"value"`
	}

	// blockResponse is the subset of an eth_getBlockByNumber result with
	// full transaction objects.
	blockResponse struct {
		Number       hexutil.Uint64        `json:"number"`
		Transactions []transactionResponse `json:"transactions"`
	}
)

// toTransaction converts the wire form. A missing value is zero.
func (t transactionResponse) toTransaction(blockNumber uint64) (flow.Transaction, error) {
	value := new(uint256.Int)
	if t.Value != nil {
		var overflow bool
		value, overflow = uint256.FromBig(t.Value.ToInt())
		if overflow || t.Value.ToInt().Sign() < 0 {
			return flow.Transaction{}, fmt.Errorf("%w: tx %s", ErrValueOverflow, t.Hash.Hex())
		}
	}

	return flow.Transaction{
		Hash:        t.Hash,
		From:        t.From,
		To:          t.To,
		Value:       value,
		BlockNumber: blockNumber,
	}, nil
}

// toBlock converts the wire form, keeping transaction order.
func (b blockResponse) toBlock() (ingest.Block, error) {
	number := uint64(b.Number)

	transactions := make([]flow.Transaction, len(b.Transactions))
	for i, t := range b.Transactions {
		tx, err := t.toTransaction(number)
		if err != nil {
			return ingest.Block{}, err
		}

		transactions[i] = tx
	}

	return ingest.Block{
		Number:       number,
		Transactions: transactions,
	}, nil
}

// getLatestBlockNumber fetches the number of the most recent block.
func (c *client) getLatestBlockNumber(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var number hexutil.Uint64
	if err := json.Unmarshal(data, &number); err != nil {
		return 0, fmt.Errorf("decode eth_blockNumber result: %w", err)
	}

	return uint64(number), nil
}

// FetchBlockByNumber implements ingest.Blockchain.
func (c *client) FetchBlockByNumber(ctx context.Context, number uint64) (ingest.Block, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", hexutil.EncodeUint64(number), true)
	if err != nil {
		return ingest.Block{}, err
	}

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return ingest.Block{}, fmt.Errorf("%w: %d", ingest.ErrBlockNotFound, number)
	}

	var resp blockResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return ingest.Block{}, fmt.Errorf("decode block %d: %w", number, err)
	}

	return resp.toBlock()
}
