// Package testdoubles provides test doubles (spies) for the observability interfaces.
//
// This package contains spy implementations for the OpenTelemetry-compatible
// observability interfaces used by the fetch engines:
//   - LoggerSpy: captures log calls per level for verification
//   - ContextualLoggerSpy: captures structured logging with context
//   - MetricsCollectorSpy: captures metrics recording calls
//   - TracingCollectorSpy: captures distributed tracing spans
//
// These test doubles enable testing of observability instrumentation
// without requiring actual telemetry backends.
package testdoubles
