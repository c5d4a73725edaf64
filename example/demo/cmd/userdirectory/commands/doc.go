// Package commands wires the user directory demo CLI: environment based
// configuration, the HTTP fetcher with an optional response cache, optional
// OpenTelemetry observability, and the renderer stack.
package commands
