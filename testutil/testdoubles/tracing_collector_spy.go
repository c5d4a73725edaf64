package testdoubles

import (
	"context"
	"sync"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

// SpySpan records span lifecycle calls for one span.
type SpySpan struct {
	Name       string
	StartAttrs map[string]string
	Status     string
	EndAttrs   map[string]string
	Finished   bool

	mu sync.Mutex
}

// SetStatus implements the SpanContext interface for testing.
func (s *SpySpan) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Status = status
}

// AddAttribute implements the SpanContext interface for testing.
func (s *SpySpan) AddAttribute(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.EndAttrs == nil {
		s.EndAttrs = make(map[string]string)
	}
	s.EndAttrs[key] = value
}

// TracingCollectorSpy is a TracingCollector implementation that captures spans for testing.
type TracingCollectorSpy struct {
	mu    sync.Mutex
	spans []*SpySpan
}

// NewTracingCollectorSpy creates a new TracingCollectorSpy instance.
func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

// StartSpan implements the TracingCollector interface for testing.
func (s *TracingCollectorSpy) StartSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, remotedata.SpanContext) {

	span := &SpySpan{Name: name, StartAttrs: attrs}

	s.mu.Lock()
	s.spans = append(s.spans, span)
	s.mu.Unlock()

	return ctx, span
}

// FinishSpan implements the TracingCollector interface for testing.
func (s *TracingCollectorSpy) FinishSpan(spanCtx remotedata.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*SpySpan)
	if !ok {
		return
	}

	span.mu.Lock()
	defer span.mu.Unlock()

	span.Status = status
	span.Finished = true
	for key, value := range attrs {
		if span.EndAttrs == nil {
			span.EndAttrs = make(map[string]string)
		}
		span.EndAttrs[key] = value
	}
}

// Spans returns all recorded spans.
func (s *TracingCollectorSpy) Spans() []*SpySpan {
	s.mu.Lock()
	defer s.mu.Unlock()

	spans := make([]*SpySpan, len(s.spans))
	copy(spans, s.spans)

	return spans
}
