package postgrescache

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // driver import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata/postgrescache/internal/adapters"
)

const (
	defaultTableName = "cached_responses"

	logMsgBuildQueryFailed = "failed to build cache query"
	logMsgDBQueryFailed    = "database query execution failed"
	logMsgDBExecFailed     = "database execution failed"
	logMsgCloseRowsFailed  = "failed to close database rows"
	logMsgScanRowFailed    = "failed to scan database row"
	logMsgSQLExecuted      = "executed sql for: "
	logMsgOperation        = "response cache operation: "
	logAttrError           = "error"
	logAttrQuery           = "query"
	logAttrURL             = "url"
	logAttrDurationMS      = "duration_ms"
	logActionSave          = "save"
	logActionLoad          = "load"
	logActionDelete        = "delete"

	colURL       = "url"
	colETag      = "etag"
	colFetchID   = "fetch_id"
	colPayload   = "payload"
	colFetchedAt = "fetched_at"

	dialectPostgres = "postgres"
	castJsonb       = "?::jsonb"
	castTimestamp   = "?::timestamp with time zone"
	sqlExcludedRow  = "EXCLUDED."
)

type sqlQueryString = string

var ErrNilDatabaseConnection = errors.New("nil database connection supplied")
var ErrEmptyTableNameSupplied = errors.New("empty tableName supplied")
var ErrBuildingQueryFailed = errors.New("building cache query failed")

// Cache is a Postgres-backed implementation of remotedata.ResponseCache.
// It leverages a database adapter and supports customizable logging and
// table configuration.
type Cache struct {
	db        adapters.DBAdapter
	tableName string
	logger    remotedata.Logger
}

// NewCacheFromPGXPool creates a new Cache using a pgx Pool with optional configuration.
func NewCacheFromPGXPool(db *pgxpool.Pool, options ...Option) (Cache, error) {
	if db == nil {
		return Cache{}, ErrNilDatabaseConnection
	}

	return newCache(adapters.NewPGXAdapter(db), options...)
}

// NewCacheFromSQLDB creates a new Cache using a sql.DB with optional configuration.
func NewCacheFromSQLDB(db *sql.DB, options ...Option) (Cache, error) {
	if db == nil {
		return Cache{}, ErrNilDatabaseConnection
	}

	return newCache(adapters.NewSQLAdapter(db), options...)
}

// NewCacheFromSQLX creates a new Cache using a sqlx.DB with optional configuration.
func NewCacheFromSQLX(db *sqlx.DB, options ...Option) (Cache, error) {
	if db == nil {
		return Cache{}, ErrNilDatabaseConnection
	}

	return newCache(adapters.NewSQLXAdapter(db), options...)
}

func newCache(db adapters.DBAdapter, options ...Option) (Cache, error) {
	c := Cache{
		db:        db,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(&c); err != nil {
			return Cache{}, err
		}
	}

	return c, nil
}

// Save stores the cached response, replacing any existing entry for the same URL.
func (c Cache) Save(ctx context.Context, cached remotedata.CachedResponse) error {
	if validateErr := cached.Validate(); validateErr != nil {
		return errors.Join(remotedata.ErrSavingCachedResponseFailed, validateErr)
	}

	sqlQuery, buildErr := c.buildUpsertQuery(cached)
	if buildErr != nil {
		c.logError(logMsgBuildQueryFailed, buildErr)
		return errors.Join(remotedata.ErrSavingCachedResponseFailed, buildErr)
	}

	start := time.Now()
	_, execErr := c.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	c.logQueryWithDuration(sqlQuery, logActionSave, duration)

	if execErr != nil {
		c.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		return errors.Join(remotedata.ErrSavingCachedResponseFailed, execErr)
	}

	c.logOperation(logActionSave, logAttrURL, cached.URL, logAttrDurationMS, c.toMilliseconds(duration))

	return nil
}

// Load returns the cached response for the URL, or an error joined with
// remotedata.ErrCacheMiss when no entry exists.
func (c Cache) Load(ctx context.Context, url string) (remotedata.CachedResponse, error) {
	var empty remotedata.CachedResponse

	if url == "" {
		return empty, remotedata.ErrEmptyCacheURL
	}

	sqlQuery, buildErr := c.buildSelectQuery(url)
	if buildErr != nil {
		c.logError(logMsgBuildQueryFailed, buildErr)
		return empty, errors.Join(remotedata.ErrLoadingCachedResponseFailed, buildErr)
	}

	start := time.Now()
	rows, queryErr := c.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	c.logQueryWithDuration(sqlQuery, logActionLoad, duration)

	if queryErr != nil {
		c.logError(logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		return empty, errors.Join(remotedata.ErrLoadingCachedResponseFailed, queryErr)
	}
	defer c.closeRows(rows)

	if !rows.Next() {
		return empty, errors.Join(remotedata.ErrLoadingCachedResponseFailed, remotedata.ErrCacheMiss)
	}

	cached := remotedata.CachedResponse{}
	scanErr := rows.Scan(&cached.URL, &cached.ETag, &cached.FetchID, &cached.Payload, &cached.FetchedAt)
	if scanErr != nil {
		c.logError(logMsgScanRowFailed, scanErr)
		return empty, errors.Join(remotedata.ErrLoadingCachedResponseFailed, scanErr)
	}

	c.logOperation(logActionLoad, logAttrURL, url, logAttrDurationMS, c.toMilliseconds(duration))

	return cached, nil
}

// Delete removes the cached response for the URL. Deleting a missing entry is not an error.
func (c Cache) Delete(ctx context.Context, url string) error {
	if url == "" {
		return remotedata.ErrEmptyCacheURL
	}

	sqlQuery, buildErr := c.buildDeleteQuery(url)
	if buildErr != nil {
		c.logError(logMsgBuildQueryFailed, buildErr)
		return errors.Join(remotedata.ErrDeletingCachedResponseFailed, buildErr)
	}

	start := time.Now()
	_, execErr := c.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	c.logQueryWithDuration(sqlQuery, logActionDelete, duration)

	if execErr != nil {
		c.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		return errors.Join(remotedata.ErrDeletingCachedResponseFailed, execErr)
	}

	c.logOperation(logActionDelete, logAttrURL, url, logAttrDurationMS, c.toMilliseconds(duration))

	return nil
}

func (c Cache) buildUpsertQuery(cached remotedata.CachedResponse) (sqlQueryString, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(c.tableName).
		Cols(colURL, colETag, colFetchID, colPayload, colFetchedAt).
		Vals(goqu.Vals{
			cached.URL,
			cached.ETag,
			cached.FetchID,
			goqu.L(castJsonb, string(cached.Payload)),
			goqu.L(castTimestamp, cached.FetchedAt.Format(time.RFC3339Nano)),
		}).
		OnConflict(goqu.DoUpdate(colURL, goqu.Record{
			colETag:      goqu.L(sqlExcludedRow + colETag),
			colFetchID:   goqu.L(sqlExcludedRow + colFetchID),
			colPayload:   goqu.L(sqlExcludedRow + colPayload),
			colFetchedAt: goqu.L(sqlExcludedRow + colFetchedAt),
		}))

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (c Cache) buildSelectQuery(url string) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(c.tableName).
		Select(colURL, colETag, colFetchID, colPayload, colFetchedAt).
		Where(goqu.C(colURL).Eq(url)).
		Limit(1)

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (c Cache) buildDeleteQuery(url string) (sqlQueryString, error) {
	deleteStmt := goqu.Dialect(dialectPostgres).
		Delete(c.tableName).
		Where(goqu.C(colURL).Eq(url))

	sqlQuery, _, toSQLErr := deleteStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (c Cache) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if c.logger != nil {
		c.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, c.toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (c Cache) logOperation(action string, args ...any) {
	if c.logger != nil {
		c.logger.Info(logMsgOperation+action, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (c Cache) logError(message string, err error, args ...any) {
	if c.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		c.logger.Error(message, allArgs...)
	}
}

// closeRows safely closes database rows and logs any errors.
func (c Cache) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		if c.logger != nil {
			c.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
		}
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func (c Cache) toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
