package httpengine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

const (
	defaultAcceptHeader = "application/json"

	headerAccept    = "Accept"
	headerUserAgent = "User-Agent"
	headerRequestID = "X-Request-Id"
	headerETag      = "Etag"

	logMsgBuildRequestFailed = "failed to build http request"
	logMsgRequestFailed      = "http request execution failed"
	logMsgReadBodyFailed     = "failed to read response body"
	logMsgCloseBodyFailed    = "failed to close response body"
	logMsgInvalidPayload     = "response body is not valid json"
	logMsgUnexpectedStatus   = "unexpected response status code"
	logMsgCacheWriteFailed   = "failed to write response cache entry"
	logMsgFetchCompleted     = "fetch completed"
	logMsgRequestExecuted    = "executed http request for: "
	logActionFetch           = "fetch"
	logAttrError             = "error"
	logAttrURL               = "url"
	logAttrFetchID           = "fetch_id"
	logAttrStatusCode        = "status_code"
	logAttrPayloadBytes      = "payload_bytes"
	logAttrDurationMS        = "duration_ms"
)

var ErrNilHTTPClient = errors.New("nil http client supplied")
var ErrNilHTTPDoer = errors.New("nil http doer supplied")
var ErrInvalidRequestTimeout = errors.New("request timeout must be positive")
var ErrEmptyUserAgent = errors.New("empty user agent supplied")
var ErrEmptyAcceptHeader = errors.New("empty accept header supplied")
var ErrNoResponseCacheConfigured = errors.New("no response cache configured")
var ErrBuildingRequestFailed = errors.New("building http request failed")
var ErrExecutingRequestFailed = errors.New("executing http request failed")
var ErrReadingResponseBodyFailed = errors.New("reading response body failed")
var ErrUnexpectedStatusCode = errors.New("unexpected response status code")

// Doer abstracts the HTTP client so callers can inject *http.Client or any
// middleware-wrapped transport.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher performs one outbound HTTP GET per Fetch call and returns the
// validated raw JSON payload. It implements remotedata.Fetcher and supports
// customizable logging, metrics, tracing, and write-through response caching.
type Fetcher struct {
	client           Doer
	requestTimeout   time.Duration
	userAgent        string
	acceptHeader     string
	responseCache    remotedata.ResponseCache
	logger           remotedata.Logger
	contextualLogger remotedata.ContextualLogger
	metricsCollector remotedata.MetricsCollector
	tracingCollector remotedata.TracingCollector
}

// NewFetcherFromHTTPClient creates a new Fetcher using an http.Client with optional configuration.
func NewFetcherFromHTTPClient(client *http.Client, options ...Option) (Fetcher, error) {
	if client == nil {
		return Fetcher{}, ErrNilHTTPClient
	}

	return newFetcher(client, options...)
}

// NewFetcherFromDoer creates a new Fetcher using any Doer implementation with optional configuration.
func NewFetcherFromDoer(client Doer, options ...Option) (Fetcher, error) {
	if client == nil {
		return Fetcher{}, ErrNilHTTPDoer
	}

	return newFetcher(client, options...)
}

func newFetcher(client Doer, options ...Option) (Fetcher, error) {
	f := Fetcher{
		client:       client,
		acceptHeader: defaultAcceptHeader,
	}

	for _, option := range options {
		if err := option(&f); err != nil {
			return Fetcher{}, err
		}
	}

	return f, nil
}

// Fetch issues exactly one outbound GET to the given URL and returns the
// validated raw JSON payload together with remotedata.FetchInfo metadata.
//
// Network failures, non-2xx status codes, and invalid JSON payloads all
// surface as errors so callers can transition to a failed state instead of
// loading forever. On success the payload is written through to the
// response cache when one is configured.
func (f Fetcher) Fetch(ctx context.Context, url string) (remotedata.Payload, remotedata.FetchInfo, error) {
	var empty remotedata.Payload

	if url == "" {
		return empty, remotedata.FetchInfo{}, remotedata.ErrEmptyURL
	}

	fetchID := uuid.New().String()
	info := remotedata.FetchInfo{FetchID: fetchID}

	ctx, span := f.startTraceSpan(ctx, spanNameFetch, map[string]string{
		spanAttrURL:     url,
		spanAttrFetchID: fetchID,
	})

	if f.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.requestTimeout)
		defer cancel()
	}

	request, buildErr := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if buildErr != nil {
		joinedErr := errors.Join(ErrBuildingRequestFailed, buildErr)
		f.logError(ctx, logMsgBuildRequestFailed, joinedErr, logAttrURL, url)
		f.recordErrorMetrics(ctx, errorTypeBuildRequest)
		f.finishTraceSpan(span, statusError, nil)

		return empty, info, joinedErr
	}

	request.Header.Set(headerAccept, f.acceptHeader)
	request.Header.Set(headerRequestID, fetchID)
	if f.userAgent != "" {
		request.Header.Set(headerUserAgent, f.userAgent)
	}

	response, duration, execErr := f.executeRequest(ctx, request)
	info.Duration = duration
	if execErr != nil {
		f.recordErrorMetrics(ctx, errorTypeExecuteRequest)
		f.recordDurationMetrics(ctx, duration, statusError)
		f.finishTraceSpan(span, statusError, nil)

		return empty, info, execErr
	}
	defer f.closeBody(response.Body)

	info.StatusCode = response.StatusCode
	info.ETag = response.Header.Get(headerETag)

	body, payload, payloadErr := f.readPayload(ctx, response, url)
	if payloadErr != nil {
		f.recordErrorMetrics(ctx, errorTypeFor(payloadErr))
		f.recordDurationMetrics(ctx, duration, statusError)
		f.finishTraceSpan(span, statusError, map[string]string{
			spanAttrStatusCode: fmt.Sprintf("%d", response.StatusCode),
		})

		return empty, info, payloadErr
	}

	f.writeCacheEntry(ctx, url, info, payload)

	f.recordDurationMetrics(ctx, duration, statusSuccess)
	f.recordValueMetrics(ctx, metricPayloadBytes, float64(len(body)))
	f.finishTraceSpan(span, statusSuccess, map[string]string{
		spanAttrStatusCode: fmt.Sprintf("%d", response.StatusCode),
	})

	f.logOperation(ctx,
		logMsgFetchCompleted,
		logAttrFetchID, fetchID,
		logAttrStatusCode, response.StatusCode,
		logAttrPayloadBytes, len(body),
		logAttrDurationMS, f.toMilliseconds(duration))

	return payload, info, nil
}

// CachedPayload reads the response cache for the given URL.
// It never issues an outbound request.
func (f Fetcher) CachedPayload(ctx context.Context, url string) (remotedata.CachedResponse, error) {
	if f.responseCache == nil {
		return remotedata.CachedResponse{}, ErrNoResponseCacheConfigured
	}

	if url == "" {
		return remotedata.CachedResponse{}, remotedata.ErrEmptyURL
	}

	return f.responseCache.Load(ctx, url)
}

// executeRequest performs the HTTP round trip and returns the response with timing information.
func (f Fetcher) executeRequest(ctx context.Context, request *http.Request) (*http.Response, time.Duration, error) {
	start := time.Now()
	response, execErr := f.client.Do(request)
	duration := time.Since(start)
	f.logRequestWithDuration(ctx, request.URL.String(), duration)

	if execErr != nil {
		joinedErr := errors.Join(ErrExecutingRequestFailed, execErr)
		f.logError(ctx, logMsgRequestFailed, joinedErr, logAttrURL, request.URL.String())

		return nil, duration, joinedErr
	}

	return response, duration, nil
}

// readPayload validates the status code, reads the body, and validates it as JSON.
func (f Fetcher) readPayload(ctx context.Context, response *http.Response, url string) (
	[]byte,
	remotedata.Payload,
	error,
) {

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		statusErr := fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, response.StatusCode)
		f.logError(ctx, logMsgUnexpectedStatus, statusErr, logAttrURL, url, logAttrStatusCode, response.StatusCode)

		return nil, nil, statusErr
	}

	body, readErr := io.ReadAll(response.Body)
	if readErr != nil {
		joinedErr := errors.Join(ErrReadingResponseBodyFailed, readErr)
		f.logError(ctx, logMsgReadBodyFailed, joinedErr, logAttrURL, url)

		return nil, nil, joinedErr
	}

	payload, payloadErr := remotedata.BuildPayload(body)
	if payloadErr != nil {
		f.logError(ctx, logMsgInvalidPayload, payloadErr, logAttrURL, url)

		return nil, nil, payloadErr
	}

	return body, payload, nil
}

// writeCacheEntry stores the payload in the response cache if one is configured.
// Cache write failures are non-critical and only logged at warn level.
func (f Fetcher) writeCacheEntry(ctx context.Context, url string, info remotedata.FetchInfo, payload remotedata.Payload) {
	if f.responseCache == nil {
		return
	}

	cached, buildErr := remotedata.BuildCachedResponse(url, info.ETag, info.FetchID, payload)
	if buildErr != nil {
		f.logWarn(ctx, logMsgCacheWriteFailed, logAttrError, buildErr.Error(), logAttrURL, url)
		return
	}

	if saveErr := f.responseCache.Save(ctx, cached); saveErr != nil {
		f.logWarn(ctx, logMsgCacheWriteFailed, logAttrError, saveErr.Error(), logAttrURL, url)
	}
}

// closeBody safely closes the response body and logs any errors.
func (f Fetcher) closeBody(body io.ReadCloser) {
	if closeErr := body.Close(); closeErr != nil {
		if f.logger != nil {
			f.logger.Warn(logMsgCloseBodyFailed, logAttrError, closeErr.Error())
		}
	}
}
