package remotedata

import (
	"context"
	"errors"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

// Subscriber is a render callback invoked on every state transition of a Hook.
type Subscriber[T any] func(result Result[T])

// Hook binds a Fetcher and an endpoint URL and owns the loading lifecycle of
// exactly one fetch operation. It transitions to loading on activation,
// issues exactly one outbound read, and on completion transitions to a
// terminal state while storing the decoded payload - notifying subscribers
// on each transition so the rendering layer can re-render.
//
// A failed fetch transitions to Failed and surfaces the reason, it never
// leaves the hook loading forever.
//
// Hooks are safe for concurrent use, but each hook performs at most one
// fetch: a second Activate returns ErrActivationConsumed.
type Hook[T any] struct {
	fetcher Fetcher
	url     string

	mu          sync.Mutex
	activated   bool
	loading     LoadingState
	result      Result[T]
	subscribers []Subscriber[T]
}

// NewHook creates a Hook for the given endpoint URL using the injected Fetcher.
// The hook starts in the pending state with the loading flag set.
func NewHook[T any](fetcher Fetcher, url string) (*Hook[T], error) {
	if fetcher == nil {
		return nil, ErrNilFetcher
	}

	if url == "" {
		return nil, ErrEmptyURL
	}

	return &Hook[T]{
		fetcher: fetcher,
		url:     url,
		loading: NewLoadingState(),
		result:  PendingResult[T](),
	}, nil
}

// URL returns the endpoint URL this hook is bound to.
func (h *Hook[T]) URL() string {
	return h.url
}

// State returns the current Result of this hook.
func (h *Hook[T]) State() Result[T] {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.result
}

// IsLoading reports whether the hook is still waiting for its terminal transition.
func (h *Hook[T]) IsLoading() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.loading.IsLoading
}

// Subscribe registers a render callback which is invoked on every state
// transition, starting with the transition to loading on activation.
func (h *Hook[T]) Subscribe(subscriber Subscriber[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.subscribers = append(h.subscribers, subscriber)
}

// Activate runs the complete fetch lifecycle: transition to loading, issue
// exactly one outbound read through the Fetcher, decode the JSON payload,
// and transition to the terminal state. The terminal Result is returned and
// also published to all subscribers.
//
// Activate consumes the hook: subsequent calls return the current state
// together with ErrActivationConsumed without issuing another fetch.
func (h *Hook[T]) Activate(ctx context.Context) (Result[T], error) {
	h.mu.Lock()
	if h.activated {
		current := h.result
		h.mu.Unlock()

		return current, ErrActivationConsumed
	}
	h.activated = true
	h.mu.Unlock()

	h.transition(LoadingEventOf(LoadingEventTagLoading), PendingResult[T]())

	payload, _, fetchErr := h.fetcher.Fetch(ctx, h.url)
	if fetchErr != nil {
		joinedErr := errors.Join(ErrFetchingPayloadFailed, fetchErr)
		failed := FailedResult[T](joinedErr)
		h.transition(LoadingEventOf(LoadingEventTagFailed), failed)

		return failed, joinedErr
	}

	var data T
	if decodeErr := jsoniter.ConfigFastest.Unmarshal(payload, &data); decodeErr != nil {
		joinedErr := errors.Join(ErrDecodingPayloadFailed, decodeErr)
		failed := FailedResult[T](joinedErr)
		h.transition(LoadingEventOf(LoadingEventTagFailed), failed)

		return failed, joinedErr
	}

	succeeded := SuccessResult(data)
	h.transition(LoadingEventOf(LoadingEventTagFinished), succeeded)

	return succeeded, nil
}

// transition applies the loading event through the reducer, stores the new
// result, and notifies subscribers outside the lock.
func (h *Hook[T]) transition(event LoadingEvent, result Result[T]) {
	h.mu.Lock()
	h.loading = ReduceLoading(h.loading, event)
	h.result = result
	subscribers := make([]Subscriber[T], len(h.subscribers))
	copy(subscribers, h.subscribers)
	h.mu.Unlock()

	for _, subscriber := range subscribers {
		subscriber(result)
	}
}
