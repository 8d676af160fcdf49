package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vaultward/vaultward/models"
)

// sessionFileMode keeps the token readable by the owning user only.
const sessionFileMode = 0o600

// fileSessionStore is the default [SessionStore]: one JSON record in a
// well-known file. It is the backend used when no OS keychain is
// available or configured.
type fileSessionStore struct {
	path string

	mu sync.Mutex
}

// NewFileSessionStore constructs a file-backed [SessionStore] at path.
// When path is empty the record lives in the user config directory under
// vaultward/session.json.
func NewFileSessionStore(path string) (SessionStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "vaultward", "session.json")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	return &fileSessionStore{path: path}, nil
}

// Save implements [SessionStore].
func (s *fileSessionStore) Save(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err = os.WriteFile(s.path, data, sessionFileMode); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Load implements [SessionStore]. A missing, unreadable, or unparseable
// file all mean "no session".
func (s *fileSessionStore) Load() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.Session{}, false
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return models.Session{}, false
	}
	if session.Token == "" {
		return models.Session{}, false
	}

	return session, true
}

// Clear implements [SessionStore].
func (s *fileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
