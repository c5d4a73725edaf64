package remotedata

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrInvalidCachedPayloadJSON is returned when cached payload JSON data is malformed or invalid.
	ErrInvalidCachedPayloadJSON = errors.New("cached payload json is not valid")

	// ErrEmptyCacheURL is returned when an empty URL is provided as a cache key.
	ErrEmptyCacheURL = errors.New("cache url must not be empty")

	// ErrCacheMiss is returned when no cached response exists for the given URL.
	ErrCacheMiss = errors.New("no cached response for url")

	// ErrSavingCachedResponseFailed is returned when the cache save operation fails.
	ErrSavingCachedResponseFailed = errors.New("saving cached response failed")

	// ErrLoadingCachedResponseFailed is returned when the cache load operation fails.
	ErrLoadingCachedResponseFailed = errors.New("loading cached response failed")

	// ErrDeletingCachedResponseFailed is returned when the cache delete operation fails.
	ErrDeletingCachedResponseFailed = errors.New("deleting cached response failed")
)

// CachedResponse represents a stored fetch payload with metadata for later reads.
// It contains the raw JSON payload along with the fetch that produced it,
// enabling a rendering layer to show stale data while a fresh fetch runs.
type CachedResponse struct {
	URL       string          // Endpoint URL the payload was fetched from, also the cache key
	ETag      string          // ETag response header of the producing fetch, empty when absent
	FetchID   FetchIDString   // Identifier of the fetch operation that produced the payload
	Payload   json.RawMessage // Raw JSON payload as returned by the endpoint
	FetchedAt time.Time       // When the payload was fetched
}

// Validate ensures the cached response has valid data for storage operations.
func (c CachedResponse) Validate() error {
	if c.URL == "" {
		return ErrEmptyCacheURL
	}

	if !jsoniter.ConfigFastest.Valid(c.Payload) {
		return ErrInvalidCachedPayloadJSON
	}

	return nil
}

// BuildCachedResponse creates a new CachedResponse with validation.
func BuildCachedResponse(
	url string,
	etag string,
	fetchID FetchIDString,
	payload json.RawMessage,
) (CachedResponse, error) {

	cached := CachedResponse{
		URL:       url,
		ETag:      etag,
		FetchID:   fetchID,
		Payload:   payload,
		FetchedAt: time.Now(),
	}

	if err := cached.Validate(); err != nil {
		return CachedResponse{}, err
	}

	return cached, nil
}

// ResponseCache persists fetched payloads keyed by endpoint URL.
// Implementations live in the cache engine packages (postgrescache, boltcache).
type ResponseCache interface {
	// Save stores the cached response, replacing any existing entry for the same URL.
	Save(ctx context.Context, cached CachedResponse) error

	// Load returns the cached response for the URL, or an error joined with ErrCacheMiss when none exists.
	Load(ctx context.Context, url string) (CachedResponse, error)

	// Delete removes the cached response for the URL. Deleting a missing entry is not an error.
	Delete(ctx context.Context, url string) error
}
