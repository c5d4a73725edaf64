package shell

import (
	"context"
	"math"
	"time"
)

const (
	// ViewHandlerDurationMetric tracks view handler execution duration (OpenTelemetry-compatible).
	ViewHandlerDurationMetric = "viewhandler_handle_duration_seconds"

	// ViewHandlerCallsMetric tracks total view handler calls.
	ViewHandlerCallsMetric = "viewhandler_handle_calls_total"

	// ViewHandlerComponentDurationMetric tracks per-component timing inside a view handler.
	//
	// Labels:
	//   - view_type: Type of view being handled (e.g., "UserDirectory")
	//   - component: Which phase was timed (fetch, projection, render)
	//   - status: success or error
	ViewHandlerComponentDurationMetric = "viewhandler_component_duration_seconds"

	// ComponentFetch identifies the fetch phase in component timing.
	ComponentFetch = "fetch"

	// ComponentProjection identifies the projection phase in component timing.
	ComponentProjection = "projection"

	// ComponentRender identifies the render phase in component timing.
	ComponentRender = "render"

	// StatusSuccess indicates successful view handling.
	StatusSuccess = "success"

	// StatusError indicates a view handling error.
	StatusError = "error"

	// LogMsgViewStarted is logged when view handling begins.
	LogMsgViewStarted = "view handler started"

	// LogMsgViewCompleted is logged when view handling succeeds.
	LogMsgViewCompleted = "view handler completed"

	// LogMsgViewFailed is logged when view handling fails.
	LogMsgViewFailed = "view handler failed"

	// LogAttrViewType identifies the view type in logs.
	LogAttrViewType = "view_type"

	// LogAttrStatus indicates the view handling status.
	LogAttrStatus = "status"

	// LogAttrDurationMS indicates the processing duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrError contains error details.
	LogAttrError = "error"

	spanNameViewHandle = "viewhandler.handle"
	spanAttrViewType   = "view_type"
)

// StartViewSpan starts a tracing span for view handling if the collector is configured.
func StartViewSpan(ctx context.Context, tracing TracingCollector, viewType string) (context.Context, SpanContext) {
	if tracing == nil {
		return ctx, nil
	}

	return tracing.StartSpan(ctx, spanNameViewHandle, map[string]string{spanAttrViewType: viewType})
}

// FinishViewSpan finishes a tracing span with the given status if the collector is configured.
func FinishViewSpan(tracing TracingCollector, span SpanContext, status string) {
	if tracing != nil && span != nil {
		tracing.FinishSpan(span, status, nil)
	}
}

// LogViewStart logs the start of view handling, preferring the contextual logger.
func LogViewStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, viewType string) {
	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, LogMsgViewStarted, LogAttrViewType, viewType)
		return
	}

	if logger != nil {
		logger.Info(LogMsgViewStarted, LogAttrViewType, viewType)
	}
}

// LogViewSuccess logs successful view handling, preferring the contextual logger.
func LogViewSuccess(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	viewType string,
	duration time.Duration,
) {

	args := []any{LogAttrViewType, viewType, LogAttrDurationMS, toMilliseconds(duration)}

	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, LogMsgViewCompleted, args...)
		return
	}

	if logger != nil {
		logger.Info(LogMsgViewCompleted, args...)
	}
}

// LogViewError logs failed view handling, preferring the contextual logger.
func LogViewError(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	viewType string,
	err error,
	duration time.Duration,
) {

	args := []any{LogAttrViewType, viewType, LogAttrError, err.Error(), LogAttrDurationMS, toMilliseconds(duration)}

	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, LogMsgViewFailed, args...)
		return
	}

	if logger != nil {
		logger.Error(LogMsgViewFailed, args...)
	}
}

// RecordViewDuration records the total view handling duration if the collector is configured.
func RecordViewDuration(
	ctx context.Context,
	metrics MetricsCollector,
	viewType string,
	status string,
	duration time.Duration,
) {

	if metrics == nil {
		return
	}

	labels := map[string]string{LogAttrViewType: viewType, LogAttrStatus: status}

	if contextual, ok := metrics.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, ViewHandlerDurationMetric, duration, labels)
		contextual.IncrementCounterContext(ctx, ViewHandlerCallsMetric, labels)
		return
	}

	metrics.RecordDuration(ViewHandlerDurationMetric, duration, labels)
	metrics.IncrementCounter(ViewHandlerCallsMetric, labels)
}

// RecordComponentDuration records per-component timing if the collector is configured.
func RecordComponentDuration(
	ctx context.Context,
	metrics MetricsCollector,
	viewType string,
	component string,
	status string,
	duration time.Duration,
) {

	if metrics == nil {
		return
	}

	labels := map[string]string{
		LogAttrViewType: viewType,
		"component":     component,
		LogAttrStatus:   status,
	}

	if contextual, ok := metrics.(ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, ViewHandlerComponentDurationMetric, duration, labels)
		return
	}

	metrics.RecordDuration(ViewHandlerComponentDurationMetric, duration, labels)
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
