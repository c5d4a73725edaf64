package boltcache_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata"
	"github.com/jsteinbrecher/remote-data-hooks-go/remotedata/boltcache"
)

func givenOpenCache(t *testing.T, options ...boltcache.Option) *boltcache.Cache {
	t.Helper()

	cache, err := boltcache.Open(filepath.Join(t.TempDir(), "cache.db"), options...)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, cache.Close())
	})

	return cache
}

func Test_Open_ErrorCases(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := boltcache.Open("")

		assert.ErrorIs(t, err, boltcache.ErrEmptyPathSupplied)
	})

	t.Run("empty bucket name", func(t *testing.T) {
		_, err := boltcache.Open(filepath.Join(t.TempDir(), "cache.db"), boltcache.WithBucketName(""))

		assert.ErrorIs(t, err, boltcache.ErrEmptyBucketNameSupplied)
	})
}

func Test_SaveAndLoad_RoundTrip(t *testing.T) {
	cache := givenOpenCache(t)

	cached, err := remotedata.BuildCachedResponse(
		"https://api.example.com/users", `W/"etag-1"`, "fetch-1", []byte(`[{"id": 1, "name": "A"}]`))
	require.NoError(t, err)

	require.NoError(t, cache.Save(context.Background(), cached))

	loaded, err := cache.Load(context.Background(), "https://api.example.com/users")

	require.NoError(t, err)
	assert.Equal(t, cached.URL, loaded.URL)
	assert.Equal(t, cached.ETag, loaded.ETag)
	assert.Equal(t, cached.FetchID, loaded.FetchID)
	assert.JSONEq(t, string(cached.Payload), string(loaded.Payload))
}

func Test_Save_ReplacesExistingEntry(t *testing.T) {
	cache := givenOpenCache(t)

	first, err := remotedata.BuildCachedResponse(
		"https://api.example.com/users", "", "fetch-1", []byte(`[{"id": 1, "name": "A"}]`))
	require.NoError(t, err)
	require.NoError(t, cache.Save(context.Background(), first))

	second, err := remotedata.BuildCachedResponse(
		"https://api.example.com/users", "", "fetch-2", []byte(`[{"id": 2, "name": "B"}]`))
	require.NoError(t, err)
	require.NoError(t, cache.Save(context.Background(), second))

	loaded, err := cache.Load(context.Background(), "https://api.example.com/users")

	require.NoError(t, err)
	assert.Equal(t, "fetch-2", loaded.FetchID)
	assert.JSONEq(t, `[{"id": 2, "name": "B"}]`, string(loaded.Payload))
}

func Test_Save_RejectsInvalidEntry(t *testing.T) {
	cache := givenOpenCache(t)

	err := cache.Save(context.Background(), remotedata.CachedResponse{URL: ""})

	assert.ErrorIs(t, err, remotedata.ErrSavingCachedResponseFailed)
	assert.ErrorIs(t, err, remotedata.ErrEmptyCacheURL)
}

func Test_Load_MissYieldsCacheMiss(t *testing.T) {
	cache := givenOpenCache(t)

	_, err := cache.Load(context.Background(), "https://api.example.com/unknown")

	assert.ErrorIs(t, err, remotedata.ErrCacheMiss)
}

func Test_Delete_RemovesEntryAndToleratesMissing(t *testing.T) {
	cache := givenOpenCache(t, boltcache.WithBucketName("responses"))

	cached, err := remotedata.BuildCachedResponse(
		"https://api.example.com/users", "", "fetch-1", []byte(`[]`))
	require.NoError(t, err)
	require.NoError(t, cache.Save(context.Background(), cached))

	require.NoError(t, cache.Delete(context.Background(), "https://api.example.com/users"))

	_, err = cache.Load(context.Background(), "https://api.example.com/users")
	assert.ErrorIs(t, err, remotedata.ErrCacheMiss)

	assert.NoError(t, cache.Delete(context.Background(), "https://api.example.com/users"))
}
