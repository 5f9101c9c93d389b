// Command netflow tracks the net POL flow of the Binance hot wallets on Polygon.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/netflow/internal/config"
	"github.com/gabapcia/netflow/internal/handlers/cli"
	"github.com/gabapcia/netflow/internal/infra/storage/memory"
	"github.com/gabapcia/netflow/internal/infra/storage/postgres"
	"github.com/gabapcia/netflow/internal/infra/storage/redis"
	"github.com/gabapcia/netflow/internal/ingest"
	"github.com/gabapcia/netflow/internal/ledger"
	"github.com/gabapcia/netflow/internal/pkg/logger"
	"github.com/gabapcia/netflow/internal/pkg/telemetry"
)

const shutdownTimeout = 10 * time.Second

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx := context.Background()
	if err := run(ctx); err != nil {
		// No-op when run already configured the logger.
		_ = logger.Init()
		logger.Fatal(ctx, "netflow failed", "error", err)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.OtelEnabled {
		shutdown, initErr := telemetry.Init(ctx, cfg.OtelServiceName, telemetry.WithServiceVersion(version))
		if initErr != nil {
			return initErr
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			err = errors.Join(err, shutdown(sctx))
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	store, err := openLedger(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var deadLetters cli.DeadLetterReader
	rdb, err := openRedis(ctx, cfg)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		deadLetters = rdb
	}

	ingestor := &lazyIngestor{cfg: cfg, ledger: store, redis: rdb}

	return cli.Run(ctx, ingestor, store, store, deadLetters)
}

// openLedger selects the in-memory ledger for memory:// and Postgres otherwise.
func openLedger(ctx context.Context, cfg config.Config) (ledger.Store, error) {
	if cfg.UsesMemoryLedger() {
		logger.Warn(ctx, "using the in-memory ledger, nothing will survive a restart")
		return memory.NewLedger(), nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := postgres.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return postgres.NewLedger(pool), nil
}

// redisStore is the subset of the Redis client shared by the ingestor and the CLI.
type redisStore interface {
	ingest.CheckpointStorage
	ingest.DeadLetterSink
	cli.DeadLetterReader
	Close() error
}

func openRedis(ctx context.Context, cfg config.Config) (redisStore, error) {
	if !cfg.Redis.Enabled() {
		return nil, nil
	}

	client, err := redis.NewClient(ctx,
		cfg.Redis.Addr,
		cfg.Redis.Username,
		cfg.Redis.Password,
		cfg.Redis.DB,
		redis.WithDeadLetterLimit(cfg.Redis.DeadLetterLimit),
	)
	if err != nil {
		return nil, err
	}

	return client, nil
}
