// Package remotedata provides core abstractions and types for remote-data
// hooks: reusable units of fetch logic that drive a loading state machine
// and expose a three-state result to a rendering layer.
//
// This package defines the fundamental interfaces and types used across
// the concrete engine implementations, including the loading reducer,
// the tagged Result type, payload transport, response caching, and common
// error definitions.
//
// A hook moves through the loading lifecycle exactly once per activation:
//
//   - Pending: from creation until the fetch completes
//   - Success: the payload was fetched and decoded
//   - Failed: the fetch or the decode failed
//
// Key types:
//   - Hook: binds a Fetcher and an endpoint URL, owns the lifecycle state
//   - Result: tagged Pending | Success | Failed value exposed to callers
//   - Fetcher: the injected data-access capability (see httpengine)
//   - ResponseCache: optional persistence for fetched payloads
//
// Common usage pattern:
//
//	fetcher, err := httpengine.NewFetcherFromHTTPClient(http.DefaultClient)
//	if err != nil {
//		// handle error
//	}
//
//	hook, err := remotedata.NewHook[[]User](fetcher, "https://api.example.com/users")
//	if err != nil {
//		// handle error
//	}
//
//	hook.Subscribe(func(result remotedata.Result[[]User]) {
//		// re-render with the new state
//	})
//
//	result, err := hook.Activate(ctx)
package remotedata
