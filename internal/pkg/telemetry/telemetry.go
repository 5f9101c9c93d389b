// Package telemetry wires the OpenTelemetry metric, trace and log pipelines
// of netflow to OTLP/gRPC exporters and installs them as the global providers.
//
// Collector endpoints and credentials come from the standard
// OTEL_EXPORTER_OTLP_* environment variables.
package telemetry

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

const defaultMetricInterval = 15 * time.Second

// loggerProvider is set between Init and shutdown; the logger package reads
// it to attach the otelzap bridge.
var loggerProvider atomic.Pointer[sdklog.LoggerProvider]

// LoggerProvider returns the provider installed by Init, or nil.
func LoggerProvider() *sdklog.LoggerProvider {
	return loggerProvider.Load()
}

// ShutdownFunc flushes and stops every provider started by Init.
type ShutdownFunc func(ctx context.Context) error

type config struct {
	serviceVersion string
	metricInterval time.Duration
}

// Option configures Init.
type Option func(*config)

// WithServiceVersion adds service.version to the resource.
func WithServiceVersion(v string) Option {
	return func(c *config) {
		c.serviceVersion = v
	}
}

// WithMetricInterval sets how often metrics are exported. Default: 15 seconds.
func WithMetricInterval(d time.Duration) Option {
	return func(c *config) {
		c.metricInterval = d
	}
}

// Init starts the metric, trace and log pipelines for serviceName.
//
// It must run before logger.Init so the logger picks up the log bridge. If a
// pipeline fails to start, the ones already running are stopped and the
// error is returned.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	cfg := config{metricInterval: defaultMetricInterval}
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := newResource(serviceName, cfg.serviceVersion)
	if err != nil {
		return nil, err
	}

	var stops []ShutdownFunc
	shutdown := func(ctx context.Context) error {
		defer loggerProvider.Store(nil)

		var errs []error
		for i := len(stops) - 1; i >= 0; i-- {
			errs = append(errs, stops[i](ctx))
		}
		return errors.Join(errs...)
	}

	starters := []func(context.Context, *sdkresource.Resource, config) (ShutdownFunc, error){
		startMetrics,
		startTraces,
		startLogs,
	}
	for _, start := range starters {
		stop, err := start(ctx, res, cfg)
		if err != nil {
			return nil, errors.Join(err, shutdown(ctx))
		}
		stops = append(stops, stop)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return shutdown, nil
}

func startMetrics(ctx context.Context, res *sdkresource.Resource, cfg config) (ShutdownFunc, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(cfg.metricInterval))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	return mp.Shutdown, nil
}

func startTraces(ctx context.Context, res *sdkresource.Resource, _ config) (ShutdownFunc, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}

func startLogs(ctx context.Context, res *sdkresource.Resource, _ config) (ShutdownFunc, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)
	global.SetLoggerProvider(lp)
	loggerProvider.Store(lp)

	return lp.Shutdown, nil
}

// newResource merges the SDK defaults (host, process, SDK version) with the
// service identity.
func newResource(serviceName, serviceVersion string) (*sdkresource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if serviceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(serviceVersion))
	}

	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
}
