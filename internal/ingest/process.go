package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/netflow/internal/flow"
	"github.com/gabapcia/netflow/internal/ledger"
	"github.com/gabapcia/netflow/internal/pkg/logger"
	"github.com/gabapcia/netflow/internal/pkg/x/chflow"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// fetchedBlock is the hand-off between the fetch stage and the write stage.
type fetchedBlock struct {
	Number uint64       // announced block number
	Events []flow.Event // matching events in transaction order
	Err    error        // fetch failure; Events is empty when set
}

// cursor tracks the highest block number announced so far. It is owned by
// the fetch stage.
type cursor struct {
	last uint64
	ok   bool
}

// advance records number as announced and returns the inclusive range of
// numbers the feed skipped to reach it, if any.
func (c *cursor) advance(number uint64) (from, to uint64, gap bool) {
	if c.ok && number > c.last+1 {
		from, to, gap = c.last+1, number-1, true
	}

	if !c.ok || number > c.last {
		c.last, c.ok = number, true
	}

	return from, to, gap
}

// fetchAndClassify consumes block numbers from headsCh, fetches each block
// and classifies its transactions, sending the result to out in feed order.
//
// It returns true when headsCh was closed by the feed and false when ctx was
// canceled. out is not closed here.
func (s *service) fetchAndClassify(ctx context.Context, headsCh <-chan uint64, out chan<- fetchedBlock, c *cursor) bool {
	for {
		number, ok := chflow.Receive(ctx, headsCh)
		if !ok {
			return ctx.Err() == nil
		}

		logger.Debug(ctx, "new block header received", "block.number", number)

		if c.ok && number <= c.last {
			logger.Debug(ctx, "block announced again", "block.number", number, "block.last", c.last)
		}

		if from, to, gap := c.advance(number); gap {
			s.skipGap(ctx, from, to)
		}

		fetched := fetchedBlock{Number: number}

		block, err := s.fetchBlock(ctx, number)
		if ctx.Err() != nil {
			return false
		}

		if err != nil {
			fetched.Err = err
		} else {
			fetched.Events = s.classifyBlock(block)
		}

		if ok := chflow.Send(ctx, out, fetched); !ok {
			return false
		}
	}
}

// skipGap reports block numbers the feed never announced. They are not backfilled.
func (s *service) skipGap(ctx context.Context, from, to uint64) {
	logger.Warn(ctx, "block feed skipped blocks, their transactions will not be ingested",
		"block.from", from,
		"block.to", to,
	)

	s.metrics.blockSkipped(ctx, ReasonGap, int64(to-from+1))
	s.recordSkipped(ctx, SkippedBlocks{From: from, To: to, Reason: ReasonGap})
}

// fetchBlock retrieves a block through the configured retry policy.
func (s *service) fetchBlock(ctx context.Context, number uint64) (Block, error) {
	var block Block

	err := s.retry.Execute(ctx, func() error {
		b, err := s.blockchain.FetchBlockByNumber(ctx, number)
		if err != nil {
			return err
		}

		block = b
		return nil
	})
	if err != nil {
		return Block{}, fmt.Errorf("%w %d: %w", ErrFetch, number, err)
	}

	return block, nil
}

// classifyBlock runs every transaction of block through the classifier, in order.
func (s *service) classifyBlock(block Block) []flow.Event {
	events := make([]flow.Event, 0)
	for _, tx := range block.Transactions {
		tx.BlockNumber = block.Number

		if event, ok := flow.Classify(tx, s.watched, s.now()); ok {
			events = append(events, event)
		}
	}

	return events
}

// writeBlocks applies fetched blocks to the ledger one at a time, in the
// order they arrive. checkpointed is the highest block already checkpointed.
func (s *service) writeBlocks(ctx context.Context, in <-chan fetchedBlock, checkpointed uint64) {
	for {
		fetched, ok := chflow.Receive(ctx, in)
		if !ok {
			return
		}

		if !s.writeBlock(ctx, fetched) {
			return
		}

		if fetched.Number > checkpointed {
			s.saveCheckpoint(ctx, fetched.Number)
			checkpointed = fetched.Number
		}
	}
}

// writeBlock records the events of one block. It returns false when ctx was
// canceled before the block was fully handled.
func (s *service) writeBlock(ctx context.Context, fetched fetchedBlock) bool {
	ctx, span := s.tracer.Start(ctx, "ingest.block", trace.WithAttributes(
		attribute.Int64("block.number", int64(fetched.Number)),
		attribute.Int("block.flow_events", len(fetched.Events)),
	))
	defer span.End()

	if fetched.Err != nil {
		logger.Error(ctx, "failed to fetch block, skipping its transactions",
			"block.number", fetched.Number,
			"error", fetched.Err,
		)

		span.RecordError(fetched.Err)
		span.SetStatus(codes.Error, "block skipped")

		s.metrics.blockSkipped(ctx, ReasonFetchFailed, 1)
		s.recordSkipped(ctx, SkippedBlocks{
			From:   fetched.Number,
			To:     fetched.Number,
			Reason: ReasonFetchFailed,
			Error:  fetched.Err.Error(),
		})
		return true
	}

	recorded := make([]flow.Event, 0, len(fetched.Events))
	for _, event := range fetched.Events {
		if ctx.Err() != nil {
			return false
		}

		if s.recordEvent(ctx, event) {
			recorded = append(recorded, event)
		}
	}

	s.metrics.blockProcessed(ctx)
	s.publish(ctx, fetched.Number, recorded)
	return true
}

// recordEvent appends event and applies its delta. It reports whether the
// event was newly appended.
//
// Both writes run detached from cancellation so shutdown never separates an
// append from its delta.
func (s *service) recordEvent(ctx context.Context, event flow.Event) bool {
	writeCtx := context.WithoutCancel(ctx)

	appended := true
	if err := s.ledger.AppendTransaction(writeCtx, event); err != nil {
		if !errors.Is(err, ledger.ErrDuplicateKey) {
			s.failWrite(ctx, event, StageAppend, err)
			return false
		}

		// Already recorded: apply the delta anyway, it is a no-op unless a
		// previous run crashed between the two writes.
		logger.Debug(ctx, "flow event already recorded", "tx.hash", event.TxHash.Hex())
		appended = false
	}

	total, err := s.ledger.ApplyNetFlowDelta(writeCtx, event.TxHash, event.Delta())
	if err != nil {
		s.failWrite(ctx, event, StageAccumulate, err)
		return false
	}

	if appended {
		s.metrics.flowRecorded(ctx, event.Direction)
		logger.Info(ctx, "flow event recorded",
			"block.number", event.BlockNumber,
			"tx.hash", event.TxHash.Hex(),
			"flow.direction", string(event.Direction),
			"flow.value", event.Value.String(),
			"netflow.total", total.String(),
		)
	}

	return appended
}

// failWrite logs, counts and dead-letters a write that did not complete.
func (s *service) failWrite(ctx context.Context, event flow.Event, stage string, err error) {
	logger.Error(ctx, "failed to write flow event",
		"block.number", event.BlockNumber,
		"tx.hash", event.TxHash.Hex(),
		"write.stage", stage,
		"error", err,
	)

	s.metrics.writeFailed(ctx, stage)

	failed := FailedWrite{Event: event, Stage: stage, Error: err.Error(), Recorded: s.now().UTC()}
	if err := s.deadLetter.RecordFailedWrite(context.WithoutCancel(ctx), failed); err != nil {
		logger.Error(ctx, "failed to dead-letter flow event",
			"tx.hash", event.TxHash.Hex(),
			"error", err,
		)
	}
}

// recordSkipped dead-letters a skipped block range.
func (s *service) recordSkipped(ctx context.Context, skipped SkippedBlocks) {
	skipped.Recorded = s.now().UTC()

	if err := s.deadLetter.RecordSkippedBlocks(context.WithoutCancel(ctx), skipped); err != nil {
		logger.Error(ctx, "failed to dead-letter skipped blocks",
			"block.from", skipped.From,
			"block.to", skipped.To,
			"error", err,
		)
	}
}

// saveCheckpoint persists number; a failure is logged and ingestion continues.
func (s *service) saveCheckpoint(ctx context.Context, number uint64) {
	if err := s.checkpointStorage.SaveCheckpoint(ctx, number); err != nil {
		logger.Error(ctx, "failed to save checkpoint",
			"block.number", number,
			"error", err,
		)
	}
}

// publish hands the newly recorded events of a block to every publisher.
func (s *service) publish(ctx context.Context, blockNumber uint64, events []flow.Event) {
	if len(events) == 0 {
		return
	}

	for _, p := range s.publishers {
		if err := p.PublishFlowEvents(ctx, blockNumber, events); err != nil {
			logger.Error(ctx, "failed to publish flow events",
				"block.number", blockNumber,
				"error", err,
			)
		}
	}
}
