package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/vaultward/vaultward/models"
)

const (
	keyringService = "vaultward"
	keyringKey     = "session"
)

// keyringSessionStore keeps the session record in the OS keychain instead
// of a plain file. The record itself is the same JSON document the file
// store writes; only the storage location changes.
type keyringSessionStore struct{}

// NewKeyringSessionStore constructs a [SessionStore] backed by the OS
// keychain via zalando/go-keyring. It probes the keychain once so that a
// missing secret service (headless Linux, stripped-down containers) is
// reported at construction time and the caller can fall back to the file
// store.
func NewKeyringSessionStore() (SessionStore, error) {
	if _, err := keyring.Get(keyringService, keyringKey); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return nil, fmt.Errorf("keychain unavailable: %w", err)
	}
	return &keyringSessionStore{}, nil
}

// Save implements [SessionStore].
func (s *keyringSessionStore) Save(session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err = keyring.Set(keyringService, keyringKey, string(data)); err != nil {
		return fmt.Errorf("store session in keychain: %w", err)
	}
	return nil
}

// Load implements [SessionStore].
func (s *keyringSessionStore) Load() (models.Session, bool) {
	data, err := keyring.Get(keyringService, keyringKey)
	if err != nil {
		return models.Session{}, false
	}

	var session models.Session
	if err = json.Unmarshal([]byte(data), &session); err != nil {
		return models.Session{}, false
	}
	if session.Token == "" {
		return models.Session{}, false
	}

	return session, true
}

// Clear implements [SessionStore].
func (s *keyringSessionStore) Clear() error {
	if err := keyring.Delete(keyringService, keyringKey); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("remove session from keychain: %w", err)
	}
	return nil
}
