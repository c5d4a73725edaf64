package boltcache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
)

const defaultBucketName = "cached_responses"

var ErrEmptyPathSupplied = errors.New("empty database path supplied")
var ErrEmptyBucketNameSupplied = errors.New("empty bucketName supplied")

// Option defines a functional option for configuring a Cache.
type Option func(*Cache) error

// WithBucketName sets the bucket name for the response cache.
func WithBucketName(bucketName string) Option {
	return func(c *Cache) error {
		if bucketName == "" {
			return ErrEmptyBucketNameSupplied
		}

		c.bucketName = []byte(bucketName)

		return nil
	}
}

// WithLogger sets the logger for the response cache.
func WithLogger(logger remotedata.Logger) Option {
	return func(c *Cache) error {
		c.logger = logger
		return nil
	}
}

// Cache is a bbolt-backed implementation of remotedata.ResponseCache.
type Cache struct {
	db         *bolt.DB
	bucketName []byte
	logger     remotedata.Logger
}

// Open creates a new Cache backed by the bbolt database file at path,
// creating the file and the bucket when they do not exist yet.
// The caller owns the returned Cache and must Close it when done.
func Open(path string, options ...Option) (*Cache, error) {
	if path == "" {
		return nil, ErrEmptyPathSupplied
	}

	c := &Cache{
		bucketName: []byte(defaultBucketName),
	}

	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}

	db, openErr := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if openErr != nil {
		return nil, openErr
	}

	initErr := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(c.bucketName)
		return err
	})
	if initErr != nil {
		_ = db.Close()
		return nil, initErr
	}

	c.db = db

	return c, nil
}

// Close closes the underlying bbolt database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Save stores the cached response, replacing any existing entry for the same URL.
func (c *Cache) Save(_ context.Context, cached remotedata.CachedResponse) error {
	if validateErr := cached.Validate(); validateErr != nil {
		return errors.Join(remotedata.ErrSavingCachedResponseFailed, validateErr)
	}

	encoded, encodeErr := jsoniter.ConfigFastest.Marshal(cached)
	if encodeErr != nil {
		return errors.Join(remotedata.ErrSavingCachedResponseFailed, encodeErr)
	}

	saveErr := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(c.bucketName).Put([]byte(cached.URL), encoded)
	})
	if saveErr != nil {
		return errors.Join(remotedata.ErrSavingCachedResponseFailed, saveErr)
	}

	if c.logger != nil {
		c.logger.Debug("response cache entry saved", "url", cached.URL)
	}

	return nil
}

// Load returns the cached response for the URL, or an error joined with
// remotedata.ErrCacheMiss when no entry exists.
func (c *Cache) Load(_ context.Context, url string) (remotedata.CachedResponse, error) {
	var empty remotedata.CachedResponse

	if url == "" {
		return empty, remotedata.ErrEmptyCacheURL
	}

	var encoded []byte
	viewErr := c.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(c.bucketName).Get([]byte(url))
		if value == nil {
			return remotedata.ErrCacheMiss
		}

		encoded = make([]byte, len(value))
		copy(encoded, value)

		return nil
	})
	if viewErr != nil {
		return empty, errors.Join(remotedata.ErrLoadingCachedResponseFailed, viewErr)
	}

	cached := remotedata.CachedResponse{}
	if decodeErr := jsoniter.ConfigFastest.Unmarshal(encoded, &cached); decodeErr != nil {
		return empty, errors.Join(remotedata.ErrLoadingCachedResponseFailed, decodeErr)
	}

	return cached, nil
}

// Delete removes the cached response for the URL. Deleting a missing entry is not an error.
func (c *Cache) Delete(_ context.Context, url string) error {
	if url == "" {
		return remotedata.ErrEmptyCacheURL
	}

	deleteErr := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(c.bucketName).Delete([]byte(url))
	})
	if deleteErr != nil {
		return errors.Join(remotedata.ErrDeletingCachedResponseFailed, deleteErr)
	}

	return nil
}
