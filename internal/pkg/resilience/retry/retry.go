// Package retry bounds how hard netflow tries a flaky call, such as fetching
// a block body from an RPC node that has not indexed it yet, before giving up
// and moving on. It is a thin layer over avast/retry-go with exponential
// backoff.
//
//	fetch := retry.New(retry.WithAttempts(3), retry.WithDelay(500*time.Millisecond))
//	err := fetch.Execute(ctx, func() error {
//	    block, err = feed.FetchBlockByNumber(ctx, n)
//	    return err
//	})
package retry

import (
	"context"
	"errors"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry runs an operation under an attempt budget.
type Retry interface {
	// Execute calls operation until it returns nil, the attempt budget is
	// spent, ctx is done or the error is marked with Unrecoverable.
	//
	// operation must be safe to repeat. On failure the last error is
	// returned, or every attempt's error joined when WithLastErrorOnly(false)
	// is set.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc observes a failed attempt that will be followed by another one.
// attempt counts from zero.
type OnRetryFunc func(attempt uint, err error)

type config struct {
	attempts    uint // including the first call
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	onRetry     OnRetryFunc
}

// Option tunes a Retry.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry that, unless overridden, makes 3 attempts waiting 1s
// then 2s (capped at 5s) between them and reports the last error.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{cfg: cfg}
}

func (r *retrier) options(ctx context.Context) []retry.Option {
	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(r.cfg.attempts),
		retry.DelayType(retry.BackOffDelay),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
	}

	if r.cfg.onRetry != nil {
		opts = append(opts, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	return opts
}

// Execute implements Retry. retry-go's own error list is flattened into a
// plain errors.Join so callers only need errors.Is.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	err := retry.Do(operation, r.options(ctx)...)

	var attempts retry.Error
	if errors.As(err, &attempts) {
		return errors.Join(attempts.WrappedErrors()...)
	}

	return err
}

// Unrecoverable wraps err so Execute returns it without further attempts,
// e.g. for a response that no retry can fix.
func Unrecoverable(err error) error {
	return retry.Unrecoverable(err)
}

// WithAttempts caps the number of calls. 1 means no retry.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the wait before the second call; it doubles afterwards.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the doubled wait.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly chooses between the last error (true) and all of them.
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers f, typically to log each failed block fetch.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = f
	}
}
