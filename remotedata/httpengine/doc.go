// Package httpengine implements the remotedata.Fetcher capability over an
// HTTP client, issuing exactly one outbound GET per call.
//
// The engine is agnostic of the decoded data contracts in client code: it
// returns the validated raw JSON payload and leaves typed decoding to the
// hook. It supports optional structured logging, metrics, distributed
// tracing, and write-through response caching through functional options.
package httpengine
