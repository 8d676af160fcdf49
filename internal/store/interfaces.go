package store

import "github.com/vaultward/vaultward/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionStore persists the single authenticated session record. Exactly
// one session exists at a time; saving replaces any previous record.
//
// Load must treat an absent or unparseable record as "no session" rather
// than failing: a client that cannot read its own session file simply
// re-authenticates.
type SessionStore interface {
	// Save persists the session, replacing any existing record.
	Save(session models.Session) error

	// Load returns the stored session. The second return value is false
	// when no usable record exists.
	Load() (models.Session, bool)

	// Clear removes the stored session. Clearing an absent session is
	// not an error.
	Clear() error
}

// BlobCache keeps the last successfully synchronized ciphertext and its
// server version per account. It is a read-side convenience only: the
// server copy stays authoritative and the cache is refreshed after every
// confirmed fetch or push.
type BlobCache interface {
	// Put stores blob and version for the given account email.
	Put(email, blob string, version int64) error

	// Get returns the cached blob and version for email. The third
	// return value is false when nothing is cached.
	Get(email string) (string, int64, bool)

	// Delete drops the cached record for email, if any.
	Delete(email string) error

	// Close releases the underlying database file.
	Close() error
}
