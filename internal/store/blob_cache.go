package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	bolt "go.etcd.io/bbolt"
)

var blobsBucket = []byte("blobs")

// cachedBlob is the stored record: the last ciphertext confirmed by the
// server together with the version the server reported for it.
type cachedBlob struct {
	Blob    string `json:"blob"`
	Version int64  `json:"version"`
}

// boltBlobCache is the bbolt-backed implementation of [BlobCache], keyed
// by account email. Only ciphertext ever touches the cache file.
type boltBlobCache struct {
	mu     sync.Mutex
	db     *bolt.DB
	closed bool
}

// NewBlobCache opens (or creates) the cache database at path. When path is
// empty the database lives in the user config directory under
// vaultward/cache.db.
func NewBlobCache(path string) (BlobCache, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "vaultward", "cache.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(blobsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create cache bucket: %w", err)
	}

	return &boltBlobCache{db: db}, nil
}

// Put implements [BlobCache].
func (c *boltBlobCache) Put(email, blob string, version int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrCacheClosed
	}

	data, err := json.Marshal(cachedBlob{Blob: blob, Version: version})
	if err != nil {
		return fmt.Errorf("encode cache record: %w", err)
	}

	err = c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(blobsBucket).Put([]byte(email), data)
	})
	if err != nil {
		return fmt.Errorf("write cache record: %w", err)
	}
	return nil
}

// Get implements [BlobCache].
func (c *boltBlobCache) Get(email string) (string, int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return "", 0, false
	}

	var record cachedBlob
	found := false

	_ = c.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(blobsBucket).Get([]byte(email))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &record); err != nil {
			return nil // corrupted record reads as a cache miss
		}
		found = true
		return nil
	})

	if !found {
		return "", 0, false
	}
	return record.Blob, record.Version, true
}

// Delete implements [BlobCache].
func (c *boltBlobCache) Delete(email string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrCacheClosed
	}

	err := c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(blobsBucket).Delete([]byte(email))
	})
	if err != nil {
		return fmt.Errorf("delete cache record: %w", err)
	}
	return nil
}

// Close implements [BlobCache].
func (c *boltBlobCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.db.Close()
}
