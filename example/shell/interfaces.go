package shell

import (
	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

// Type aliases so the feature slices depend on the shell only,
// not on the library packages directly.

type Logger = remotedata.Logger
type ContextualLogger = remotedata.ContextualLogger
type MetricsCollector = remotedata.MetricsCollector
type ContextualMetricsCollector = remotedata.ContextualMetricsCollector
type TracingCollector = remotedata.TracingCollector
type SpanContext = remotedata.SpanContext
