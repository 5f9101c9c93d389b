package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/netflow/internal/config"
	"github.com/gabapcia/netflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/netflow/internal/infra/messaging/kafka"
	"github.com/gabapcia/netflow/internal/infra/messaging/nats"
	"github.com/gabapcia/netflow/internal/ingest"
	"github.com/gabapcia/netflow/internal/ledger"
	"github.com/gabapcia/netflow/internal/pkg/logger"
	"github.com/gabapcia/netflow/internal/pkg/resilience/retry"
	transporthttp "github.com/gabapcia/netflow/internal/pkg/transport/http"
	"github.com/gabapcia/netflow/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/netflow/internal/watchset"
)

// lazyIngestor defers dialing the RPC node and the brokers until `start`
// runs, so read-only commands only need the ledger.
type lazyIngestor struct {
	cfg    config.Config
	ledger ledger.Writer
	redis  redisStore
}

var _ ingest.Service = (*lazyIngestor)(nil)

// Run implements ingest.Service.
func (l *lazyIngestor) Run(ctx context.Context) (err error) {
	var closers []func() error
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			err = errors.Join(err, closers[i]())
		}
	}()

	watched, err := watchset.New(watchset.BinanceHotWallets...)
	if err != nil {
		return err
	}

	conn, err := l.dial(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ingest.ErrConnect, err)
	}
	if c, ok := conn.(jsonrpc.Subscriber); ok {
		closers = append(closers, c.Close)
	}

	opts := []ingest.Option{
		ingest.WithFetchRetry(retry.New(
			retry.WithAttempts(l.cfg.FetchRetryAttempts),
			retry.WithDelay(l.cfg.FetchRetryDelay),
			retry.WithMaxDelay(l.cfg.FetchRetryMaxDelay),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "block fetch failed, retrying", "attempt", attempt+1, "error", err)
			}),
		)),
	}

	if l.redis != nil {
		opts = append(opts,
			ingest.WithCheckpointStorage(l.redis),
			ingest.WithDeadLetterSink(l.redis),
		)
	}

	if l.cfg.NATS.Enabled() {
		nc, err := nats.Connect(l.cfg.NATS.URL)
		if err != nil {
			return err
		}
		closers = append(closers, func() error { return nc.Drain() })

		opts = append(opts, ingest.WithPublisher(nats.NewPublisher(nc, l.cfg.NATS.Subject)))
	}

	if l.cfg.Kafka.Enabled() {
		producer, err := kafka.NewProducer(l.cfg.Kafka.Brokers)
		if err != nil {
			return err
		}
		closers = append(closers, producer.Close)

		opts = append(opts, ingest.WithPublisher(kafka.NewPublisher(producer, l.cfg.Kafka.Topic)))
	}

	feed := ethereum.NewClient(conn, ethereum.WithPollInterval(l.cfg.PollInterval))

	logger.Info(ctx, "starting ingestor",
		"watched.count", watched.Len(),
		"rpc.websocket", l.cfg.UsesWebSocket(),
		"checkpoint.enabled", l.redis != nil,
		"nats.enabled", l.cfg.NATS.Enabled(),
		"kafka.enabled", l.cfg.Kafka.Enabled(),
	)

	return ingest.New(feed, l.ledger, watched, opts...).Run(ctx)
}

// dial opens a WebSocket connection for ws(s) endpoints, which unlocks
// newHeads subscriptions; any other endpoint is polled over HTTP.
func (l *lazyIngestor) dial(ctx context.Context) (jsonrpc.Client, error) {
	if l.cfg.UsesWebSocket() {
		return jsonrpc.DialWebSocket(ctx, l.cfg.RPCURL)
	}

	return jsonrpc.NewHTTPClient(transporthttp.NewClient(), l.cfg.RPCURL), nil
}
