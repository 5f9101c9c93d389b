// Package kafka publishes recorded flow events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/netflow/internal/flow"
	"github.com/gabapcia/netflow/internal/ingest"

	"github.com/IBM/sarama"
)

const headerBlockNumber = "block_number"

// publisher implements ingest.Publisher on top of a synchronous producer.
type publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// Compile-time assertion that publisher implements ingest.Publisher.
var _ ingest.Publisher = (*publisher)(nil)

// NewPublisher publishes every flow event to topic, keyed by transaction
// hash so all deliveries of one transaction land on the same partition.
func NewPublisher(producer sarama.SyncProducer, topic string) *publisher {
	return &publisher{
		producer: producer,
		topic:    topic,
	}
}

// PublishFlowEvents implements ingest.Publisher. The block's events are sent
// as one batch and acknowledged by all in-sync replicas before it returns.
func (p *publisher) PublishFlowEvents(ctx context.Context, blockNumber uint64, events []flow.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	messages := make([]*sarama.ProducerMessage, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("encode flow event %s: %w", event.TxHash.Hex(), err)
		}

		messages = append(messages, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(event.TxHash.Hex()),
			Value: sarama.ByteEncoder(payload),
			Headers: []sarama.RecordHeader{
				{Key: []byte(headerBlockNumber), Value: []byte(strconv.FormatUint(blockNumber, 10))},
			},
		})
	}

	if err := p.producer.SendMessages(messages); err != nil {
		var producerErrs sarama.ProducerErrors
		if errors.As(err, &producerErrs) {
			errs := make([]error, 0, len(producerErrs))
			for _, pe := range producerErrs {
				errs = append(errs, pe)
			}

			return fmt.Errorf("publish %d of %d flow events: %w", len(producerErrs), len(messages), errors.Join(errs...))
		}

		return fmt.Errorf("publish flow events: %w", err)
	}

	return nil
}

// NewProducerConfig returns the producer settings the publisher expects:
// acknowledgement by all replicas, idempotent retries and successes returned
// to the caller.
func NewProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = "netflow"
	cfg.Version = sarama.V2_1_0_0

	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Retry.Max = 10
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Net.MaxOpenRequests = 1

	return cfg
}

// NewProducer connects a synchronous producer to brokers.
func NewProducer(brokers []string) (sarama.SyncProducer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}

	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("connect kafka producer: %w", err)
	}

	return producer, nil
}
