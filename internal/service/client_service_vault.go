package service

import (
	"context"
	"fmt"

	"github.com/vaultward/vaultward/internal/adapter"
	"github.com/vaultward/vaultward/internal/crypto"
	"github.com/vaultward/vaultward/internal/store"
	"github.com/vaultward/vaultward/internal/utils"
	"github.com/vaultward/vaultward/internal/validators"
	"github.com/vaultward/vaultward/models"
)

type clientVaultService struct {
	auth      ClientAuthService
	adapter   adapter.ServerAdapter
	crypto    crypto.VaultCipher
	blobs     store.BlobCache
	uuid      *utils.UUIDGenerator
	validator validators.Validator
}

func NewClientVaultService(auth ClientAuthService, serverAdapter adapter.ServerAdapter, cipher crypto.VaultCipher, blobs store.BlobCache) ClientVaultService {
	return &clientVaultService{
		auth:      auth,
		adapter:   serverAdapter,
		crypto:    cipher,
		blobs:     blobs,
		uuid:      utils.NewUUIDGenerator(),
		validator: validators.NewVaultEntryValidator(),
	}
}

func (s *clientVaultService) Fetch(ctx context.Context, creds models.Credentials) (string, int64, bool, error) {
	if _, err := s.auth.EnsureSession(ctx, creds); err != nil {
		return "", 0, false, err
	}

	resp, err := s.adapter.GetVault(ctx)
	if err != nil {
		return "", 0, false, fmt.Errorf("fetch vault: %w", err)
	}

	// An account that has never stored a vault is a valid state, reported
	// through exists=false rather than an error.
	if resp.EncryptedVault == nil || *resp.EncryptedVault == "" {
		return "", 0, false, nil
	}

	var version int64
	if resp.VaultVersion != nil {
		version = *resp.VaultVersion
	}

	// Cache refresh is best effort: a broken cache must not fail a fetch.
	_ = s.blobs.Put(creds.Email, *resp.EncryptedVault, version)

	return *resp.EncryptedVault, version, true, nil
}

func (s *clientVaultService) Push(ctx context.Context, creds models.Credentials, blob string, expectedVersion int64) (int64, error) {
	if _, err := s.auth.EnsureSession(ctx, creds); err != nil {
		return 0, err
	}

	resp, err := s.adapter.UpdateVault(ctx, models.VaultUpdateRequest{
		EncryptedVault: blob,
		VaultVersion:   &expectedVersion,
	})
	if err != nil {
		return 0, fmt.Errorf("push vault: %w", err)
	}

	// Successful writes advance the version by one. A server that echoes the
	// new version in its response is authoritative over that assumption.
	newVersion := expectedVersion + 1
	if resp.VaultVersion != nil {
		newVersion = *resp.VaultVersion
	}

	_ = s.blobs.Put(creds.Email, blob, newVersion)

	return newVersion, nil
}

func (s *clientVaultService) Open(ctx context.Context, creds models.Credentials) (models.Vault, int64, error) {
	blob, version, exists, err := s.Fetch(ctx, creds)
	if err != nil {
		return models.Vault{}, 0, err
	}
	if !exists {
		return s.crypto.NewEmptyVault(), 0, nil
	}

	vault, err := s.crypto.Decrypt(blob, creds.MasterPassword)
	if err != nil {
		return models.Vault{}, 0, err
	}

	return vault, version, nil
}

func (s *clientVaultService) ListEntries(ctx context.Context, creds models.Credentials) ([]models.VaultEntry, int64, error) {
	vault, version, err := s.Open(ctx, creds)
	if err != nil {
		return nil, 0, err
	}

	return vault.Entries, version, nil
}

func (s *clientVaultService) ListCached(creds models.Credentials) ([]models.VaultEntry, int64, error) {
	blob, version, ok := s.blobs.Get(creds.Email)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrNoCachedVault, creds.Email)
	}

	vault, err := s.crypto.Decrypt(blob, creds.MasterPassword)
	if err != nil {
		return nil, 0, err
	}

	return vault.Entries, version, nil
}

func (s *clientVaultService) AddEntry(ctx context.Context, creds models.Credentials, entry models.VaultEntry) (models.VaultEntry, int64, error) {
	if entry.ID == "" {
		entry.ID = s.uuid.Generate()
	}
	if err := s.validator.Validate(ctx, entry); err != nil {
		return models.VaultEntry{}, 0, err
	}

	vault, version, err := s.Open(ctx, creds)
	if err != nil {
		return models.VaultEntry{}, 0, err
	}

	vault.Entries = append(vault.Entries, entry)

	newVersion, err := s.encryptAndPush(ctx, creds, vault, version)
	if err != nil {
		return models.VaultEntry{}, 0, err
	}

	return entry, newVersion, nil
}

func (s *clientVaultService) UpdateEntry(ctx context.Context, creds models.Credentials, entry models.VaultEntry) (int64, error) {
	if err := s.validator.Validate(ctx, entry); err != nil {
		return 0, err
	}

	vault, version, err := s.Open(ctx, creds)
	if err != nil {
		return 0, err
	}

	idx := vault.FindEntry(entry.ID)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s", ErrEntryNotFound, entry.ID)
	}
	vault.Entries[idx] = entry

	return s.encryptAndPush(ctx, creds, vault, version)
}

func (s *clientVaultService) RemoveEntry(ctx context.Context, creds models.Credentials, entryID string) (int64, error) {
	vault, version, err := s.Open(ctx, creds)
	if err != nil {
		return 0, err
	}

	idx := vault.FindEntry(entryID)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %s", ErrEntryNotFound, entryID)
	}
	vault.Entries = append(vault.Entries[:idx], vault.Entries[idx+1:]...)

	return s.encryptAndPush(ctx, creds, vault, version)
}

func (s *clientVaultService) encryptAndPush(ctx context.Context, creds models.Credentials, vault models.Vault, version int64) (int64, error) {
	blob, err := s.crypto.Encrypt(vault, creds.MasterPassword)
	if err != nil {
		return 0, fmt.Errorf("encrypt vault: %w", err)
	}

	return s.Push(ctx, creds, blob, version)
}
