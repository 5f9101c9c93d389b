// Package ingest runs the streaming pipeline that turns new blocks into
// ledger writes: it follows the block feed, fetches every announced block,
// classifies its transactions against the watch set and records the matching
// flow events together with their net flow deltas.
//
// Per-block and per-transaction failures are contained: they are logged,
// counted, sent to the dead-letter sink and the loop moves on.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/netflow/internal/flow"
	"github.com/gabapcia/netflow/internal/ledger"
	"github.com/gabapcia/netflow/internal/pkg/logger"
	"github.com/gabapcia/netflow/internal/pkg/resilience/retry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const instrumentationName = "github.com/gabapcia/netflow/internal/ingest"

// fetchedBlockChannelBufferSize lets fetch-and-classify run one block ahead of the writer.
const fetchedBlockChannelBufferSize = 1

// ErrServiceAlreadyStarted is returned if Run is called while a previous Run is still active.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Service is the block ingestor.
type Service interface {
	// Run subscribes to the feed and processes blocks until ctx is canceled
	// (returns nil) or the feed ends (returns ErrFeedClosed).
	//
	// A failed subscription returns an error wrapping ErrConnect; there is no
	// retry on the initial connection.
	Run(ctx context.Context) error
}

type service struct {
	mu        sync.Mutex
	isRunning bool

	blockchain Blockchain
	ledger     ledger.Writer
	watched    flow.Membership

	checkpointStorage CheckpointStorage
	deadLetter        DeadLetterSink
	publishers        []Publisher
	retry             retry.Retry
	now               func() time.Time

	tracer  trace.Tracer
	metrics *metrics
}

var _ Service = (*service)(nil)

// Run implements Service.
func (s *service) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return ErrServiceAlreadyStarted
	}
	s.isRunning = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()
	}()

	cursor := s.loadCursor(ctx)

	headsCh, err := s.blockchain.SubscribeNewHeads(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConnect, err)
	}

	logger.Info(ctx, "subscribed to new block headers")

	var (
		feedClosed   atomic.Bool
		checkpointed = cursor.last
		fetchedCh    = make(chan fetchedBlock, fetchedBlockChannelBufferSize)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(fetchedCh)

		feedClosed.Store(s.fetchAndClassify(gctx, headsCh, fetchedCh, cursor))
		return nil
	})
	g.Go(func() error {
		s.writeBlocks(gctx, fetchedCh, checkpointed)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if feedClosed.Load() {
		logger.Warn(ctx, "block feed closed, stopping ingestion")
		return ErrFeedClosed
	}

	logger.Info(ctx, "ingestion stopped")
	return nil
}

// loadCursor seeds gap detection with the last checkpoint, if any.
func (s *service) loadCursor(ctx context.Context) *cursor {
	number, err := s.checkpointStorage.LoadLatestCheckpoint(ctx)
	if err != nil {
		if !errors.Is(err, ErrNoCheckpointFound) {
			logger.Warn(ctx, "failed to load checkpoint, gap detection starts from the first header", "error", err)
		}

		return &cursor{}
	}

	logger.Info(ctx, "loaded checkpoint", "block.number", number)
	return &cursor{last: number, ok: true}
}

type config struct {
	checkpointStorage CheckpointStorage
	deadLetter        DeadLetterSink
	publishers        []Publisher
	retry             retry.Retry
	now               func() time.Time
}

// Option configures the ingestor.
type Option func(*config)

// New builds an ingestor reading from blockchain, classifying against watched
// and writing to w.
//
// Without options there is no checkpointing, no dead-letter trail, no
// publishing and a failed block fetch is not retried.
func New(blockchain Blockchain, w ledger.Writer, watched flow.Membership, opts ...Option) *service {
	cfg := config{
		checkpointStorage: nopCheckpoint{},
		deadLetter:        nopDeadLetter{},
		retry:             retry.New(retry.WithAttempts(1)),
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		blockchain:        blockchain,
		ledger:            w,
		watched:           watched,
		checkpointStorage: cfg.checkpointStorage,
		deadLetter:        cfg.deadLetter,
		publishers:        cfg.publishers,
		retry:             cfg.retry,
		now:               cfg.now,
		tracer:            otel.Tracer(instrumentationName),
		metrics:           newMetrics(otel.Meter(instrumentationName)),
	}
}

// WithCheckpointStorage persists the last processed block number.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

// WithDeadLetterSink records skipped blocks and failed writes.
func WithDeadLetterSink(dl DeadLetterSink) Option {
	return func(c *config) {
		c.deadLetter = dl
	}
}

// WithPublisher adds a downstream publisher. It may be given more than once.
func WithPublisher(p Publisher) Option {
	return func(c *config) {
		c.publishers = append(c.publishers, p)
	}
}

// WithFetchRetry retries failed block fetches with r before skipping the block.
func WithFetchRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithClock overrides the wall clock used to stamp flow events.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
