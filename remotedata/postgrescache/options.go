package postgrescache

import (
	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

// Option defines a functional option for configuring a Cache.
type Option func(*Cache) error

// WithTableName sets the table name for the response cache.
func WithTableName(tableName string) Option {
	return func(c *Cache) error {
		if tableName == "" {
			return ErrEmptyTableNameSupplied
		}

		c.tableName = tableName

		return nil
	}
}

// WithLogger sets the logger for the response cache.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL queries with execution timing (development use)
// Info level: cache operations with durations (production-safe)
// Error level: critical failures that cause operation failures.
func WithLogger(logger remotedata.Logger) Option {
	return func(c *Cache) error {
		c.logger = logger
		return nil
	}
}
