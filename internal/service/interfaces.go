// SPDX-License-Identifier: Apache-2.0

// Package service implements the client-side business logic of the vault:
// account registration and session lifecycle, encrypted vault synchronisation
// with optimistic concurrency, entry editing, and master password rotation.
//
// Services depend on [adapter.ServerAdapter] for transport, [crypto.VaultCipher]
// for the encryption engine, and [store.ClientStorages] for session and blob
// persistence. Plaintext vault contents exist only inside service calls and are
// never written to disk.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/vaultward/vaultward/models"
)

// ClientAuthService defines the client-side contract for account registration
// and session management. Implementations persist sessions locally and install
// the session token into the server adapter on success.
type ClientAuthService interface {
	// Register creates a new account on the server. The initial vault is an
	// empty entry list encrypted client-side with the master password, so the
	// server never observes a plaintext vault even at account creation.
	Register(ctx context.Context, creds models.Credentials) error

	// CreateSession authenticates against the server and returns the new
	// session. The session expiry is normalised to a concrete instant and the
	// session is persisted locally before being returned.
	CreateSession(ctx context.Context, creds models.Credentials) (models.Session, error)

	// EnsureSession returns the locally persisted session if it is still
	// valid, otherwise it authenticates again via CreateSession.
	EnsureSession(ctx context.Context, creds models.Credentials) (models.Session, error)

	// AuthHeader returns the Authorization header value for the current
	// session and true, or "" and false when no valid session exists.
	// It never triggers authentication.
	AuthHeader() (string, bool)

	// Logout invalidates the session on the server on a best-effort basis and
	// always clears the locally persisted session, even when the server call
	// fails.
	Logout(ctx context.Context) error
}

// ClientVaultService defines the client-side contract for fetching, decrypting,
// editing, and pushing the encrypted vault. All editing operations follow the
// fetch-decrypt-modify-encrypt-push cycle against the server's version counter.
type ClientVaultService interface {
	// Fetch downloads the encrypted vault blob and its version. For a
	// first-time account with no stored vault it returns exists=false with an
	// empty blob and version zero, which is not an error.
	Fetch(ctx context.Context, creds models.Credentials) (blob string, version int64, exists bool, err error)

	// Push uploads a new encrypted blob, asserting expectedVersion against
	// the server's current version. On a version mismatch the server rejects
	// the write and Push returns an error matching adapter.ErrConflict.
	// On success it returns the new version.
	Push(ctx context.Context, creds models.Credentials, blob string, expectedVersion int64) (int64, error)

	// Open fetches and decrypts the vault. A first-time account yields an
	// empty vault at version zero.
	Open(ctx context.Context, creds models.Credentials) (models.Vault, int64, error)

	// ListEntries returns the decrypted entries and the vault version.
	ListEntries(ctx context.Context, creds models.Credentials) ([]models.VaultEntry, int64, error)

	// ListCached decrypts the last locally cached blob without contacting the
	// server. Returns an error matching ErrNoCachedVault when nothing has been
	// cached for the account yet.
	ListCached(creds models.Credentials) ([]models.VaultEntry, int64, error)

	// AddEntry appends an entry to the vault and pushes the result. A missing
	// entry ID is filled with a generated UUID. Returns the stored entry and
	// the new vault version.
	AddEntry(ctx context.Context, creds models.Credentials, entry models.VaultEntry) (models.VaultEntry, int64, error)

	// UpdateEntry replaces the entry with the matching ID and pushes the
	// result. Returns an error matching ErrEntryNotFound when no entry has
	// that ID.
	UpdateEntry(ctx context.Context, creds models.Credentials, entry models.VaultEntry) (int64, error)

	// RemoveEntry deletes the entry with the given ID and pushes the result.
	// Returns an error matching ErrEntryNotFound when no entry has that ID.
	RemoveEntry(ctx context.Context, creds models.Credentials, entryID string) (int64, error)
}

// ClientRotationService defines the contract for changing the master password.
type ClientRotationService interface {
	// Rotate re-encrypts the vault under newPassword and updates the server
	// credential, in that order. A decryption failure means the current
	// password is wrong and aborts the rotation. A version conflict on the
	// vault push aborts the rotation before any credential change, leaving
	// both vault and credential untouched. A failure after the vault push
	// returns an error matching ErrRotationIncomplete: the vault is already
	// re-encrypted under newPassword but the server still expects the old
	// credential, and the credential update should be retried.
	Rotate(ctx context.Context, creds models.Credentials, newPassword string) error
}
