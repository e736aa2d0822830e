// Package logger holds the process-wide zerolog logger. Every log line
// carries the service name; lines written through WithContext also carry the
// trace and span ids of the surrounding request.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"
)

var Logger zerolog.Logger

// Init configures the global logger. Development mode switches the JSON
// output to the human-readable console writer.
func Init(serviceName string, isDevelopment bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var out io.Writer = os.Stdout
	if isDevelopment {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	Logger = zerolog.New(out).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	log.Logger = Logger
}

// SetLevel sets the global level from its string name, defaulting to info
// when the name is unknown.
func SetLevel(name string) {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// WithContext returns the logger enriched with the trace and span ids of the
// request span, when one is active.
func WithContext(ctx context.Context) *zerolog.Logger {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return &Logger
	}

	enriched := Logger.With().
		Str("trace_id", sc.TraceID().String()).
		Str("span_id", sc.SpanID().String()).
		Logger()
	return &enriched
}

// Error starts an error-level event on the context logger
func Error(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Error()
}

// Warn starts a warn-level event on the context logger
func Warn(ctx context.Context) *zerolog.Event {
	return WithContext(ctx).Warn()
}
