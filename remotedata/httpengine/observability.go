package httpengine

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

const (
	metricFetchDuration = "remotefetch_fetch_duration_seconds"
	metricFetchErrors   = "remotefetch_fetch_errors_total"
	metricPayloadBytes  = "remotefetch_payload_bytes"

	spanNameFetch      = "remotefetch.fetch"
	spanAttrURL        = "url"
	spanAttrFetchID    = "fetch_id"
	spanAttrStatusCode = "status_code"
	spanAttrOperation  = "operation"
	spanAttrErrorType  = "error_type"

	statusSuccess = "success"
	statusError   = "error"

	errorTypeBuildRequest   = "build_request"
	errorTypeExecuteRequest = "execute_request"
	errorTypeStatusCode     = "status_code"
	errorTypeReadBody       = "read_body"
	errorTypeInvalidPayload = "invalid_payload"
)

// errorTypeFor maps a payload error to its metric label.
func errorTypeFor(err error) string {
	switch {
	case errors.Is(err, ErrUnexpectedStatusCode):
		return errorTypeStatusCode
	case errors.Is(err, ErrReadingResponseBodyFailed):
		return errorTypeReadBody
	case errors.Is(err, remotedata.ErrInvalidPayloadJSON):
		return errorTypeInvalidPayload
	default:
		return statusError
	}
}

// logRequestWithDuration logs executed requests with timing at debug level if a logger is configured.
func (f Fetcher) logRequestWithDuration(ctx context.Context, url string, duration time.Duration) {
	if f.contextualLogger != nil {
		f.contextualLogger.DebugContext(ctx, logMsgRequestExecuted+logActionFetch,
			logAttrDurationMS, f.toMilliseconds(duration), logAttrURL, url)
		return
	}

	if f.logger != nil {
		f.logger.Debug(logMsgRequestExecuted+logActionFetch,
			logAttrDurationMS, f.toMilliseconds(duration), logAttrURL, url)
	}
}

// logOperation logs operational information at info level if a logger is configured.
func (f Fetcher) logOperation(ctx context.Context, msg string, args ...any) {
	if f.contextualLogger != nil {
		f.contextualLogger.InfoContext(ctx, msg, args...)
		return
	}

	if f.logger != nil {
		f.logger.Info(msg, args...)
	}
}

// logWarn logs non-critical issues at warn level if a logger is configured.
func (f Fetcher) logWarn(ctx context.Context, msg string, args ...any) {
	if f.contextualLogger != nil {
		f.contextualLogger.WarnContext(ctx, msg, args...)
		return
	}

	if f.logger != nil {
		f.logger.Warn(msg, args...)
	}
}

// logError logs error information at error level if a logger is configured.
func (f Fetcher) logError(ctx context.Context, msg string, err error, args ...any) {
	allArgs := []any{logAttrError, err.Error()}
	allArgs = append(allArgs, args...)

	if f.contextualLogger != nil {
		f.contextualLogger.ErrorContext(ctx, msg, allArgs...)
		return
	}

	if f.logger != nil {
		f.logger.Error(msg, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (f Fetcher) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

// recordErrorMetrics records fetch error metrics if the metrics collector is configured.
func (f Fetcher) recordErrorMetrics(ctx context.Context, errorType string) {
	if f.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: logActionFetch,
		"status":          statusError,
		spanAttrErrorType: errorType,
	}

	if contextualCollector, ok := f.metricsCollector.(remotedata.ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metricFetchErrors, labels)
	} else {
		f.metricsCollector.IncrementCounter(metricFetchErrors, labels)
	}
}

// recordDurationMetrics records fetch duration metrics if the metrics collector is configured.
func (f Fetcher) recordDurationMetrics(ctx context.Context, duration time.Duration, status string) {
	if f.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: logActionFetch,
		"status":          status,
	}

	if contextualCollector, ok := f.metricsCollector.(remotedata.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metricFetchDuration, duration, labels)
	} else {
		f.metricsCollector.RecordDuration(metricFetchDuration, duration, labels)
	}
}

// recordValueMetrics records value metrics if the metrics collector is configured.
func (f Fetcher) recordValueMetrics(ctx context.Context, metricName string, value float64) {
	if f.metricsCollector == nil {
		return
	}

	labels := map[string]string{
		spanAttrOperation: logActionFetch,
	}

	if contextualCollector, ok := f.metricsCollector.(remotedata.ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metricName, value, labels)
	} else {
		f.metricsCollector.RecordValue(metricName, value, labels)
	}
}

// startTraceSpan starts a tracing span if the tracing collector is configured.
func (f Fetcher) startTraceSpan(
	ctx context.Context,
	operation string,
	attrs map[string]string,
) (context.Context, remotedata.SpanContext) {

	if f.tracingCollector != nil {
		return f.tracingCollector.StartSpan(ctx, operation, attrs)
	}

	return ctx, nil
}

// finishTraceSpan finishes a tracing span if the tracing collector is configured.
func (f Fetcher) finishTraceSpan(span remotedata.SpanContext, status string, attrs map[string]string) {
	if f.tracingCollector != nil && span != nil {
		f.tracingCollector.FinishSpan(span, status, attrs)
	}
}
