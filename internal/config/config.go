// Package config loads the netflow runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/netflow/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig wraps every failure to read or validate the configuration.
var ErrInvalidConfig = errors.New("invalid configuration")

// MemoryLedgerURL selects the in-process ledger instead of Postgres.
const MemoryLedgerURL = "memory://"

// Config is the full runtime configuration. Every field maps to one
// environment variable; optional integrations stay disabled while their
// address is empty. The integration blocks are embedded so their variables
// keep the flat names below instead of an envconfig field prefix.
type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true" validate:"required,ledger_dsn"`
	RPCURL      string `envconfig:"POLYGON_RPC_URL" required:"true" validate:"required,rpc_url"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	PollInterval       time.Duration `envconfig:"POLL_INTERVAL" default:"2s" validate:"gt=0"`
	FetchRetryAttempts uint          `envconfig:"FETCH_RETRY_ATTEMPTS" default:"1" validate:"gte=1,lte=10"`
	FetchRetryDelay    time.Duration `envconfig:"FETCH_RETRY_DELAY" default:"1s" validate:"gte=0"`
	FetchRetryMaxDelay time.Duration `envconfig:"FETCH_RETRY_MAX_DELAY" default:"5s" validate:"gtefield=FetchRetryDelay"`

	Redis
	NATS
	Kafka

	OtelEnabled     bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OtelServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"netflow" validate:"required"`
}

// Redis holds the checkpoint and dead-letter store settings.
type Redis struct {
	Addr            string `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	Username        string `envconfig:"REDIS_USERNAME"`
	Password        string `envconfig:"REDIS_PASSWORD"`
	DB              int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`
	DeadLetterLimit int64  `envconfig:"REDIS_DEAD_LETTER_LIMIT" default:"10000" validate:"gte=1"`
}

// Enabled reports whether a Redis address was configured.
func (r Redis) Enabled() bool {
	return r.Addr != ""
}

// NATS holds the flow event publishing settings for NATS.
type NATS struct {
	URL     string `envconfig:"NATS_URL" validate:"omitempty,url"`
	Subject string `envconfig:"NATS_SUBJECT" default:"netflow.flows" validate:"required_with=URL"`
}

// Enabled reports whether a NATS URL was configured.
func (n NATS) Enabled() bool {
	return n.URL != ""
}

// Kafka holds the flow event publishing settings for Kafka.
type Kafka struct {
	Brokers []string `envconfig:"KAFKA_BROKERS" validate:"dive,hostname_port"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"netflow.flows" validate:"required_with=Brokers"`
}

// Enabled reports whether at least one Kafka broker was configured.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0
}

// UsesMemoryLedger reports whether the in-process ledger was selected.
func (c Config) UsesMemoryLedger() bool {
	return c.DatabaseURL == MemoryLedgerURL
}

// UsesWebSocket reports whether the RPC endpoint supports push subscriptions.
func (c Config) UsesWebSocket() bool {
	scheme, _, _ := strings.Cut(strings.ToLower(c.RPCURL), "://")
	return scheme == "ws" || scheme == "wss"
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}
