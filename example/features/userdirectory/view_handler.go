package userdirectory

import (
	"context"
	"errors"
	"time"

	"github.com/jsteinbrecher/remote-data-hooks-go/example/core"
	"github.com/jsteinbrecher/remote-data-hooks-go/example/shell"
	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

// Renderer defines the rendering capability the ViewHandler depends on.
// The feature owns this interface; concrete renderers live in the shell.
type Renderer interface {
	RenderLoading(ctx context.Context) error
	RenderUsers(ctx context.Context, view UserDirectory) error
	RenderError(ctx context.Context, reason error) error
}

const (
	viewType = "UserDirectory"
)

// ErrNilRenderer occurs when no Renderer is supplied.
var ErrNilRenderer = errors.New("renderer must not be nil")

// ErrRenderingFailed occurs when the renderer fails to display the view.
var ErrRenderingFailed = errors.New("rendering the user directory failed")

// ViewHandler orchestrates the complete user directory workflow:
// Fetch -> Project -> Render. It handles infrastructure concerns like
// hook activation and observability instrumentation, and delegates the
// projection logic to the pure core functions.
//
// Each Handle call activates a fresh hook, so a handler may be reused
// while each activation still issues exactly one outbound read.
type ViewHandler struct {
	fetcher          remotedata.Fetcher
	endpointURL      string
	renderer         Renderer
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewViewHandler creates a ViewHandler with the provided fetcher, endpoint
// URL, renderer, and options.
func NewViewHandler(
	fetcher remotedata.Fetcher,
	endpointURL string,
	renderer Renderer,
	opts ...Option,
) (ViewHandler, error) {

	if fetcher == nil {
		return ViewHandler{}, remotedata.ErrNilFetcher
	}

	if endpointURL == "" {
		return ViewHandler{}, remotedata.ErrEmptyURL
	}

	if renderer == nil {
		return ViewHandler{}, ErrNilRenderer
	}

	h := ViewHandler{
		fetcher:     fetcher,
		endpointURL: endpointURL,
		renderer:    renderer,
	}

	for _, opt := range opts {
		if err := opt(&h); err != nil {
			return ViewHandler{}, err
		}
	}

	return h, nil
}

// Handle executes the complete user directory workflow: it renders the
// loading state, activates a hook for exactly one fetch, projects the
// payload into the view model, and renders the result. A failed fetch is
// rendered as an error view, the directory is never stuck loading.
func (h ViewHandler) Handle(ctx context.Context) (UserDirectory, error) {
	handleStart := time.Now()
	ctx, span := shell.StartViewSpan(ctx, h.tracingCollector, viewType)
	shell.LogViewStart(ctx, h.logger, h.contextualLogger, viewType)

	hook, err := remotedata.NewHook[[]core.User](h.fetcher, h.endpointURL)
	if err != nil {
		h.recordViewError(ctx, err, time.Since(handleStart), span)
		return UserDirectory{}, err
	}

	if renderErr := h.renderer.RenderLoading(ctx); renderErr != nil {
		joinedErr := errors.Join(ErrRenderingFailed, renderErr)
		h.recordViewError(ctx, joinedErr, time.Since(handleStart), span)
		return UserDirectory{}, joinedErr
	}

	// Fetch phase
	fetchStart := time.Now()
	result, err := hook.Activate(ctx)
	fetchDuration := time.Since(fetchStart)
	if err != nil {
		h.recordComponentTiming(ctx, shell.ComponentFetch, shell.StatusError, fetchDuration)
		_ = h.renderer.RenderError(ctx, result.Err())
		h.recordViewError(ctx, err, time.Since(handleStart), span)
		return UserDirectory{}, err
	}
	h.recordComponentTiming(ctx, shell.ComponentFetch, shell.StatusSuccess, fetchDuration)

	// Projection phase - delegate to a pure core function
	projectionStart := time.Now()
	users, _ := result.Data()
	view := ProjectUserDirectory(users)
	projectionDuration := time.Since(projectionStart)
	h.recordComponentTiming(ctx, shell.ComponentProjection, shell.StatusSuccess, projectionDuration)

	// Render phase
	renderStart := time.Now()
	renderErr := h.renderer.RenderUsers(ctx, view)
	renderDuration := time.Since(renderStart)
	if renderErr != nil {
		joinedErr := errors.Join(ErrRenderingFailed, renderErr)
		h.recordComponentTiming(ctx, shell.ComponentRender, shell.StatusError, renderDuration)
		h.recordViewError(ctx, joinedErr, time.Since(handleStart), span)
		return UserDirectory{}, joinedErr
	}
	h.recordComponentTiming(ctx, shell.ComponentRender, shell.StatusSuccess, renderDuration)

	h.recordViewSuccess(ctx, time.Since(handleStart), span)

	return view, nil
}

/*** View Handler Options and helper methods for observability ***/

// Option defines a functional option for configuring ViewHandler.
type Option func(*ViewHandler) error

// WithMetrics sets the metrics collector for the ViewHandler.
func WithMetrics(collector shell.MetricsCollector) Option {
	return func(h *ViewHandler) error {
		h.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the ViewHandler.
func WithTracing(collector shell.TracingCollector) Option {
	return func(h *ViewHandler) error {
		h.tracingCollector = collector
		return nil
	}
}

// WithContextualLogging sets the contextual logger for the ViewHandler.
func WithContextualLogging(logger shell.ContextualLogger) Option {
	return func(h *ViewHandler) error {
		h.contextualLogger = logger
		return nil
	}
}

// WithLogging sets the basic logger for the ViewHandler.
func WithLogging(logger shell.Logger) Option {
	return func(h *ViewHandler) error {
		h.logger = logger
		return nil
	}
}

// recordViewSuccess records successful view handling with observability.
func (h ViewHandler) recordViewSuccess(ctx context.Context, duration time.Duration, span shell.SpanContext) {
	shell.RecordViewDuration(ctx, h.metricsCollector, viewType, shell.StatusSuccess, duration)
	shell.FinishViewSpan(h.tracingCollector, span, shell.StatusSuccess)
	shell.LogViewSuccess(ctx, h.logger, h.contextualLogger, viewType, duration)
}

// recordViewError records failed view handling with observability.
func (h ViewHandler) recordViewError(ctx context.Context, err error, duration time.Duration, span shell.SpanContext) {
	shell.RecordViewDuration(ctx, h.metricsCollector, viewType, shell.StatusError, duration)
	shell.FinishViewSpan(h.tracingCollector, span, shell.StatusError)
	shell.LogViewError(ctx, h.logger, h.contextualLogger, viewType, err, duration)
}

// recordComponentTiming records component-level timing metrics.
func (h ViewHandler) recordComponentTiming(ctx context.Context, component string, status string, duration time.Duration) {
	shell.RecordComponentDuration(ctx, h.metricsCollector, viewType, component, status, duration)
}
