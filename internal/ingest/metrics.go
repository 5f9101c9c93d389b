package ingest

import (
	"context"

	"github.com/gabapcia/netflow/internal/flow"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// metrics holds the ingestor's OpenTelemetry counters. They report to the
// global MeterProvider, which is a no-op unless telemetry was initialized.
type metrics struct {
	blocksProcessed metric.Int64Counter
	blocksSkipped   metric.Int64Counter
	flowsRecorded   metric.Int64Counter
	writesFailed    metric.Int64Counter
}

func newMetrics(meter metric.Meter) *metrics {
	m, err := buildMetrics(meter)
	if err != nil {
		m, _ = buildMetrics(noop.NewMeterProvider().Meter(instrumentationName))
	}

	return m
}

func buildMetrics(meter metric.Meter) (*metrics, error) {
	blocksProcessed, err := meter.Int64Counter("netflow.blocks.processed",
		metric.WithDescription("Blocks whose transactions were classified and written."),
		metric.WithUnit("{block}"),
	)
	if err != nil {
		return nil, err
	}

	blocksSkipped, err := meter.Int64Counter("netflow.blocks.skipped",
		metric.WithDescription("Blocks whose transactions were never ingested."),
		metric.WithUnit("{block}"),
	)
	if err != nil {
		return nil, err
	}

	flowsRecorded, err := meter.Int64Counter("netflow.flows.recorded",
		metric.WithDescription("Flow events appended to the ledger."),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	writesFailed, err := meter.Int64Counter("netflow.writes.failed",
		metric.WithDescription("Ledger writes that failed and were dead-lettered."),
		metric.WithUnit("{write}"),
	)
	if err != nil {
		return nil, err
	}

	return &metrics{
		blocksProcessed: blocksProcessed,
		blocksSkipped:   blocksSkipped,
		flowsRecorded:   flowsRecorded,
		writesFailed:    writesFailed,
	}, nil
}

func (m *metrics) blockProcessed(ctx context.Context) {
	m.blocksProcessed.Add(ctx, 1)
}

func (m *metrics) blockSkipped(ctx context.Context, reason string, n int64) {
	m.blocksSkipped.Add(ctx, n, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *metrics) flowRecorded(ctx context.Context, direction flow.Direction) {
	m.flowsRecorded.Add(ctx, 1, metric.WithAttributes(attribute.String("direction", string(direction))))
}

func (m *metrics) writeFailed(ctx context.Context, stage string) {
	m.writesFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
}
