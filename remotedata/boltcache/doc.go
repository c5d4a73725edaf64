// Package boltcache implements remotedata.ResponseCache on top of an
// embedded bbolt database, for applications that want cached payloads to
// survive restarts without running a database server.
//
// Entries are stored JSON-encoded in a single bucket keyed by endpoint URL.
package boltcache
