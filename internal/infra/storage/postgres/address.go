package postgres

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// lowerHex renders an address in the canonical lowercase form stored in the
// address columns, so equality queries do not depend on checksum casing.
func lowerHex(addr common.Address) string {
	return strings.ToLower(addr.Hex())
}
