package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// StubEndpoint is an httptest-backed endpoint double returning a canned
// response and counting the requests it receives.
type StubEndpoint struct {
	server *httptest.Server

	mu           sync.Mutex
	requestCount int
	lastRequest  *http.Request
}

// GivenStubEndpoint starts a stub endpoint answering every request with the
// given status code and body. The server is shut down on test cleanup.
func GivenStubEndpoint(t testing.TB, statusCode int, body string) *StubEndpoint {
	t.Helper()

	stub := &StubEndpoint{}

	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		stub.requestCount++
		stub.lastRequest = r.Clone(r.Context())
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}))

	t.Cleanup(stub.server.Close)

	return stub
}

// URL returns the base URL of the stub endpoint.
func (s *StubEndpoint) URL() string {
	return s.server.URL
}

// RequestCount returns how many requests the endpoint received.
func (s *StubEndpoint) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.requestCount
}

// LastRequest returns the most recent request the endpoint received, or nil.
func (s *StubEndpoint) LastRequest() *http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastRequest
}
