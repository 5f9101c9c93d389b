// Package redis stores the ingestor's checkpoint and dead-letter trail in Redis.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

const keyPrefix = "netflow"

// defaultDeadLetterLimit caps each dead-letter list so a long outage cannot grow it without bound.
const defaultDeadLetterLimit = 10_000

type client struct {
	conn            *redis.Client
	deadLetterLimit int64
}

// Option configures the client.
type Option func(*client)

// WithDeadLetterLimit keeps at most n entries per dead-letter list, newest first.
// A value of zero or less disables trimming.
func WithDeadLetterLimit(n int64) Option {
	return func(c *client) {
		c.deadLetterLimit = n
	}
}

// Close releases the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to addr and checks the connection with a PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	c := &client{
		conn:            conn,
		deadLetterLimit: defaultDeadLetterLimit,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}
