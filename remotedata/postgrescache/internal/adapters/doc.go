// Package adapters provides database driver adapters for the response cache,
// wrapping pgxpool.Pool, sql.DB, and sqlx.DB behind the DBAdapter interface.
package adapters
