package httpengine

import (
	"time"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

// Option defines a functional option for configuring a Fetcher.
type Option func(*Fetcher) error

// WithRequestTimeout sets the per-fetch timeout applied on top of the caller's context.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) error {
		if timeout <= 0 {
			return ErrInvalidRequestTimeout
		}

		f.requestTimeout = timeout

		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every fetch.
func WithUserAgent(userAgent string) Option {
	return func(f *Fetcher) error {
		if userAgent == "" {
			return ErrEmptyUserAgent
		}

		f.userAgent = userAgent

		return nil
	}
}

// WithAcceptHeader overrides the Accept header sent with every fetch.
// The default is "application/json".
func WithAcceptHeader(accept string) Option {
	return func(f *Fetcher) error {
		if accept == "" {
			return ErrEmptyAcceptHeader
		}

		f.acceptHeader = accept

		return nil
	}
}

// WithResponseCache sets the write-through response cache for the Fetcher.
// Every successfully fetched payload is stored in the cache keyed by URL.
// The cache never suppresses a fetch - reads go through CachedPayload.
func WithResponseCache(cache remotedata.ResponseCache) Option {
	return func(f *Fetcher) error {
		f.responseCache = cache
		return nil
	}
}

// WithLogger sets the logger for the Fetcher.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: request URLs with execution timing (development use)
// Info level: payload sizes, durations, status codes (production-safe)
// Warn level: non-critical issues like cache write or body close failures
// Error level: critical failures that cause fetch failures.
func WithLogger(logger remotedata.Logger) Option {
	return func(f *Fetcher) error {
		f.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Fetcher.
// The contextual logger will receive log messages with context information including
// automatic trace/span correlation when tracing is enabled, enabling unified observability.
func WithContextualLogger(logger remotedata.ContextualLogger) Option {
	return func(f *Fetcher) error {
		f.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Fetcher.
// The metrics collector will receive performance and operational metrics including
// fetch durations, payload sizes, status codes, and fetch errors.
func WithMetrics(collector remotedata.MetricsCollector) Option {
	return func(f *Fetcher) error {
		f.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Fetcher.
// The tracing collector will receive distributed tracing information including
// span creation for fetch operations, context propagation, and error tracking.
func WithTracing(collector remotedata.TracingCollector) Option {
	return func(f *Fetcher) error {
		f.tracingCollector = collector
		return nil
	}
}
