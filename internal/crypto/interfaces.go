package crypto

import "github.com/vaultward/vaultward/models"

// VaultCipher owns every cryptographic operation performed on the vault.
// It knows nothing about the network, local storage, or sessions; its only
// inputs are the master password and opaque ciphertext blobs.
//
// Blob format (after base64 std decoding):
//
//	bytes [0,16)   salt    — fresh per encryption, feeds the KDF
//	bytes [16,28)  nonce   — fresh per encryption, feeds AES-GCM
//	bytes [28,...] ciphertext ‖ 16-byte GCM tag
type VaultCipher interface {
	// DeriveKey derives the 256-bit encryption key from the master
	// password and a 16-byte salt via PBKDF2-SHA256 with 100,000
	// iterations. Deterministic: identical inputs always yield the
	// identical key. The result is never persisted; callers decide how
	// long to keep it in memory.
	DeriveKey(password string, salt []byte) []byte

	// Encrypt serializes the vault to canonical JSON and encrypts it
	// with AES-256-GCM under a key derived from password and a fresh
	// random salt. Returns the base64-encoded salt ‖ nonce ‖ ciphertext
	// blob. Consumes entropy from the OS CSPRNG; performs no I/O.
	Encrypt(vault models.Vault, password string) (string, error)

	// Decrypt reverses Encrypt. Every failure mode — malformed encoding,
	// truncated blob, authentication-tag mismatch (wrong password or
	// tampered ciphertext), or a JSON parse failure after decryption —
	// is reported as the single [ErrDecryption] so that callers cannot
	// distinguish a wrong password from corrupted data.
	Decrypt(blob string, password string) (models.Vault, error)

	// NewEmptyVault returns a vault with zero entries, used for
	// brand-new accounts before the first save.
	NewEmptyVault() models.Vault
}
