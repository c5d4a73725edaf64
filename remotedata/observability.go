package remotedata

import (
	"context"
	"time"
)

// Logger interface for fetch logging, operational messages, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// MetricsCollector interface for collecting fetch performance and operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware methods so a
// fetch's metrics can be correlated with the trace span of the activation that caused it.
// The interface is optional - fetch engines type-assert for it and fall back to the
// plain MetricsCollector methods when the collector does not implement it.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span covering one fetch or cache operation,
// updatable with a status and attributes until it is finished.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector opens and finishes spans around fetch operations, so one hook
// activation can be followed from the outbound request through cache writes.
// It is dependency-free like the other interfaces here; oteladapters provides the
// OpenTelemetry implementation, and any other tracing backend can be wired the same way.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

// ContextualLogger is the context-aware counterpart of Logger. Fetch engines prefer it
// over Logger when both are configured, passing the activation's context so a backend
// that understands trace correlation can stamp log records with the fetch's span IDs.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
