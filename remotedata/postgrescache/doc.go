// Package postgrescache implements remotedata.ResponseCache on top of
// Postgres, storing one row per endpoint URL with the payload as jsonb.
//
// The cache supports pgxpool.Pool, sql.DB, and sqlx.DB connections through
// dedicated constructors and a shared internal adapter layer, so it works
// with whichever Postgres driver the surrounding application already uses.
package postgrescache
