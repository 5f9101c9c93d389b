package ingest

import (
	"context"

	"github.com/gabapcia/netflow/internal/flow"
)

// Publisher forwards newly recorded flow events to downstream consumers.
//
// Publishing happens after the block's ledger writes; a publishing failure is
// logged and never affects the ledger.
type Publisher interface {
	PublishFlowEvents(ctx context.Context, blockNumber uint64, events []flow.Event) error
}
