package remotedata

import (
	"errors"
)

var ErrNilFetcher = errors.New("nil fetcher supplied")
var ErrEmptyURL = errors.New("empty url supplied")
var ErrActivationConsumed = errors.New("hook activation already consumed, exactly one fetch per activation")
var ErrFetchingPayloadFailed = errors.New("fetching payload failed")
var ErrDecodingPayloadFailed = errors.New("decoding payload failed")

// FetchIDString is a type alias for string, representing the unique identifier of one fetch operation.
type FetchIDString = string
