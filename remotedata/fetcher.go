package remotedata

import (
	"context"
	"time"
)

// FetchInfo carries metadata about one completed fetch operation.
type FetchInfo struct {
	FetchID    FetchIDString
	StatusCode int
	ETag       string
	Duration   time.Duration
}

// Fetcher is the data-access capability injected into hooks and rendering
// code. Implementations perform exactly one outbound read per call and
// return the raw JSON payload.
//
// The rendering layer never calls a network primitive directly - it always
// goes through this interface (see httpengine for the HTTP implementation).
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Payload, FetchInfo, error)
}
