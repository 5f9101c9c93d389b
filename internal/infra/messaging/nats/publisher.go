// Package nats publishes recorded flow events to a NATS subject.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gabapcia/netflow/internal/flow"
	"github.com/gabapcia/netflow/internal/ingest"
	"github.com/gabapcia/netflow/internal/pkg/logger"

	"github.com/nats-io/nats.go"
)

// Header names set on every message. Nats-Msg-Id lets a JetStream stream
// drop re-deliveries of the same transaction.
const (
	headerMsgID       = "Nats-Msg-Id"
	headerBlockNumber = "Netflow-Block-Number"
)

// Conn is the part of *nats.Conn the publisher uses.
type Conn interface {
	PublishMsg(msg *nats.Msg) error
	FlushWithContext(ctx context.Context) error
}

// publisher implements ingest.Publisher.
type publisher struct {
	conn    Conn
	subject string
}

// Compile-time assertion that publisher implements ingest.Publisher.
var _ ingest.Publisher = (*publisher)(nil)

// NewPublisher publishes every flow event as a JSON message on subject.
func NewPublisher(conn Conn, subject string) *publisher {
	return &publisher{
		conn:    conn,
		subject: subject,
	}
}

// PublishFlowEvents implements ingest.Publisher. Messages are flushed once
// per block, so a nil return means the server received all of them.
func (p *publisher) PublishFlowEvents(ctx context.Context, blockNumber uint64, events []flow.Event) error {
	for _, event := range events {
		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("encode flow event %s: %w", event.TxHash.Hex(), err)
		}

		msg := nats.NewMsg(p.subject)
		msg.Data = data
		msg.Header.Set(headerMsgID, event.TxHash.Hex())
		msg.Header.Set(headerBlockNumber, fmt.Sprint(blockNumber))

		if err := p.conn.PublishMsg(msg); err != nil {
			return fmt.Errorf("publish flow event %s: %w", event.TxHash.Hex(), err)
		}
	}

	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush nats connection: %w", err)
	}

	return nil
}

// Connect opens a NATS connection that reconnects forever and logs its state changes.
func Connect(url string) (*nats.Conn, error) {
	ctx := context.Background()

	conn, err := nats.Connect(url,
		nats.Name("netflow"),
		nats.Timeout(5*time.Second),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn(ctx, "nats disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info(ctx, "nats reconnected", "nats.url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(*nats.Conn) {
			logger.Info(ctx, "nats connection closed")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	return conn, nil
}
