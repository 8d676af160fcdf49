package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlobCache(t *testing.T) BlobCache {
	t.Helper()
	c, err := NewBlobCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestBlobCache_PutGet(t *testing.T) {
	c := newTestBlobCache(t)

	require.NoError(t, c.Put("a@b.com", "blob-1", 3))

	blob, version, ok := c.Get("a@b.com")
	require.True(t, ok)
	assert.Equal(t, "blob-1", blob)
	assert.Equal(t, int64(3), version)
}

func TestBlobCache_PutReplaces(t *testing.T) {
	c := newTestBlobCache(t)

	require.NoError(t, c.Put("a@b.com", "blob-1", 3))
	require.NoError(t, c.Put("a@b.com", "blob-2", 4))

	blob, version, ok := c.Get("a@b.com")
	require.True(t, ok)
	assert.Equal(t, "blob-2", blob)
	assert.Equal(t, int64(4), version)
}

func TestBlobCache_GetMiss(t *testing.T) {
	c := newTestBlobCache(t)

	_, _, ok := c.Get("nobody@example.com")
	assert.False(t, ok)
}

func TestBlobCache_Delete(t *testing.T) {
	c := newTestBlobCache(t)

	require.NoError(t, c.Put("a@b.com", "blob-1", 1))
	require.NoError(t, c.Delete("a@b.com"))

	_, _, ok := c.Get("a@b.com")
	assert.False(t, ok)

	// Deleting an absent record is fine.
	assert.NoError(t, c.Delete("a@b.com"))
}

func TestBlobCache_ClosedOperations(t *testing.T) {
	c := newTestBlobCache(t)
	require.NoError(t, c.Close())

	assert.ErrorIs(t, c.Put("a@b.com", "blob", 1), ErrCacheClosed)
	_, _, ok := c.Get("a@b.com")
	assert.False(t, ok)
	assert.ErrorIs(t, c.Delete("a@b.com"), ErrCacheClosed)
	assert.NoError(t, c.Close())
}
