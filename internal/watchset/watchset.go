// Package watchset holds the immutable set of addresses whose value movements
// are tracked by the net flow pipeline.
package watchset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/netflow/internal/pkg/types"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidAddress is returned by New when a literal is not a 20-byte hex address.
var ErrInvalidAddress = errors.New("invalid watched address")

// BinanceHotWallets is the compiled-in watch list of Binance hot wallets on Polygon.
var BinanceHotWallets = []string{
	"0xF977814e90dA44bFA03b6295A0616a897441aceC",
	"0xe7804c37c13166fF0b37F5aE0BB07A3aEbb6e245",
	"0x505e71695E9bc45943c58adEC1650577BcA68fD9",
	"0x290275e3db66394C52272398959845170E4DCb88",
	"0xD5C08681719445A5Fdce2Bda98b341A49050d821",
	"0x082489A616aB4D46d1947eE3F912e080815b08DA",
}

// WatchSet is a read-only set of addresses. The zero value watches nothing.
//
// A WatchSet is never mutated after New returns, so it can be shared across
// goroutines without synchronization.
type WatchSet struct {
	addresses types.Set[common.Address]
}

// New parses every literal and builds a WatchSet. Parsing is case-insensitive:
// checksummed, lowercase and uppercase forms of the same address are equal.
//
// It fails on the first literal that is not a valid hex address, wrapping
// ErrInvalidAddress.
func New(literals ...string) (WatchSet, error) {
	addresses := types.NewSet[common.Address]()
	for _, literal := range literals {
		literal = strings.TrimSpace(literal)
		if !common.IsHexAddress(literal) {
			return WatchSet{}, fmt.Errorf("%w: %q", ErrInvalidAddress, literal)
		}

		addresses.Add(common.HexToAddress(literal))
	}

	return WatchSet{addresses: addresses}, nil
}

// MustNew is like New but panics on a malformed literal.
func MustNew(literals ...string) WatchSet {
	ws, err := New(literals...)
	if err != nil {
		panic(err)
	}

	return ws
}

// Contains reports whether addr is watched.
func (w WatchSet) Contains(addr common.Address) bool {
	return w.addresses.Contains(addr)
}

// Len returns the number of distinct watched addresses.
func (w WatchSet) Len() int {
	return w.addresses.Len()
}

// Addresses returns the watched addresses sorted by their byte value.
func (w WatchSet) Addresses() []common.Address {
	return w.addresses.Sorted(common.Address.Cmp)
}
