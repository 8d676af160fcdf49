package store

import (
	"fmt"

	"github.com/vaultward/vaultward/internal/config"
	"github.com/vaultward/vaultward/internal/logger"
)

// ClientStorages bundles every local persistence backend the client uses.
type ClientStorages struct {
	// Sessions holds the single authenticated session record.
	Sessions SessionStore

	// Blobs caches the last server-confirmed ciphertext per account.
	Blobs BlobCache
}

// NewClientStorages wires the local storage layer from config. The OS
// keychain is preferred for the session record when enabled; if the
// keychain is unavailable the file store takes over, with a log line so
// the downgrade is visible.
func NewClientStorages(cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	var (
		sessions SessionStore
		err      error
	)

	if cfg.UseKeyring {
		sessions, err = NewKeyringSessionStore()
		if err != nil {
			log.Warn().Err(err).Msg("OS keychain unavailable, falling back to file session store")
		}
	}
	if sessions == nil {
		sessions, err = NewFileSessionStore(cfg.SessionPath)
		if err != nil {
			return nil, fmt.Errorf("create session store: %w", err)
		}
	}

	blobs, err := NewBlobCache(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("create blob cache: %w", err)
	}

	return &ClientStorages{Sessions: sessions, Blobs: blobs}, nil
}

// Close releases resources held by the storage layer.
func (s *ClientStorages) Close() error {
	return s.Blobs.Close()
}
