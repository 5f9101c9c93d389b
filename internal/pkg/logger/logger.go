// Package logger is the process-wide structured logger of netflow: a sugared
// zap logger writing JSON lines, optionally teed into OpenTelemetry through
// the otelzap bridge.
//
// Every helper takes a context; when it carries a valid span the entry gets
// trace_id and span_id fields.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/gabapcia/netflow/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const instrumentationName = "github.com/gabapcia/netflow"

var (
	// logger discards everything until Init runs.
	logger   = zap.NewNop().Sugar()
	initOnce sync.Once
)

type config struct {
	level  string
	output io.Writer
}

// Option configures Init.
type Option func(*config)

// WithLevel sets the minimum level: debug, info, warn, error or fatal.
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithOutput redirects the JSON lines. Default: stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return cfg
}

// Init builds the global logger. Only the first successful call has any
// effect, so a fallback Init after a failed startup is harmless.
//
// It fails when the level cannot be parsed.
func Init(opts ...Option) error {
	cfg := config{level: "info", output: os.Stdout}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(cfg.output), level)

		if lp := telemetry.LoggerProvider(); lp != nil {
			bridge := otelzap.NewCore(instrumentationName, otelzap.WithLoggerProvider(lp))
			core = zapcore.NewTee(core, bridge)
		}

		logger = zap.New(core).Sugar()
	})

	return nil
}

// Sync flushes buffered entries; call it before exit.
func Sync() error {
	return logger.Sync()
}

func withSpan(ctx context.Context, keysAndValues []any) []any {
	if ctx == nil {
		return keysAndValues
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return keysAndValues
	}

	return append(keysAndValues,
		"trace_id", sc.TraceID().String(),
		"span_id", sc.SpanID().String(),
	)
}

func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, withSpan(ctx, keysAndValues)...)
}

func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, withSpan(ctx, keysAndValues)...)
}

func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, withSpan(ctx, keysAndValues)...)
}

func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, withSpan(ctx, keysAndValues)...)
}

// Fatal logs and exits the process with status 1.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Fatalw(msg, withSpan(ctx, keysAndValues)...)
}
