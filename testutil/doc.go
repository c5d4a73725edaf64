// Package testutil provides shared test helpers: a stub HTTP endpoint and an
// in-memory response cache for exercising fetchers and hooks without real
// network or storage backends.
package testutil
