// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/vaultward/vaultward/models"
)

const (
	// SaltSize is the KDF salt length in bytes.
	SaltSize = 16
	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12
	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32
	// KDFIterations is the PBKDF2 iteration count. Changing it makes
	// previously stored blobs undecryptable because the format does not
	// self-describe its parameters yet.
	KDFIterations = 100_000

	gcmTagSize  = 16
	minBlobSize = SaltSize + NonceSize + gcmTagSize
)

// vaultCipher is the private implementation of [VaultCipher].
type vaultCipher struct {
	iterations int
}

// NewVaultCipher constructs a [VaultCipher] using PBKDF2-SHA256 with
// 100,000 iterations and AES-256-GCM.
func NewVaultCipher() VaultCipher {
	return &vaultCipher{iterations: KDFIterations}
}

// DeriveKey implements [VaultCipher].
func (c *vaultCipher) DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, c.iterations, KeySize, sha256.New)
}

// Encrypt implements [VaultCipher].
func (c *vaultCipher) Encrypt(vault models.Vault, password string) (string, error) {
	plaintext, err := json.Marshal(vault)
	if err != nil {
		return "", fmt.Errorf("marshal vault: %w", err)
	}

	salt := make([]byte, SaltSize)
	if _, err = io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := c.DeriveKey(password, salt)
	defer zeroBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// blob = salt || nonce || ciphertext+tag
	blob := make([]byte, 0, SaltSize+len(nonce)+len(plaintext)+gcmTagSize)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = gcm.Seal(blob, nonce, plaintext, nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [VaultCipher]. All failures collapse into
// [ErrDecryption]; no stage detail leaks out.
func (c *vaultCipher) Decrypt(blob string, password string) (models.Vault, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return models.Vault{}, ErrDecryption
	}
	if len(raw) < minBlobSize {
		return models.Vault{}, ErrDecryption
	}

	salt, nonce, ciphertext := raw[:SaltSize], raw[SaltSize:SaltSize+NonceSize], raw[SaltSize+NonceSize:]

	key := c.DeriveKey(password, salt)
	defer zeroBytes(key)

	gcm, err := newGCM(key)
	if err != nil {
		return models.Vault{}, ErrDecryption
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return models.Vault{}, ErrDecryption
	}
	defer zeroBytes(plaintext)

	var vault models.Vault
	if err = json.Unmarshal(plaintext, &vault); err != nil {
		return models.Vault{}, ErrDecryption
	}

	return vault, nil
}

// NewEmptyVault implements [VaultCipher].
func (c *vaultCipher) NewEmptyVault() models.Vault {
	return models.Vault{Entries: []models.VaultEntry{}}
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// zeroBytes overwrites b so the derived key does not linger in memory
// longer than the operation that needed it.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
