package service

import (
	"context"
	"fmt"

	"github.com/vaultward/vaultward/internal/adapter"
	"github.com/vaultward/vaultward/internal/crypto"
	"github.com/vaultward/vaultward/models"
)

type clientRotationService struct {
	vault   ClientVaultService
	adapter adapter.ServerAdapter
	crypto  crypto.VaultCipher
}

func NewClientRotationService(vault ClientVaultService, serverAdapter adapter.ServerAdapter, cipher crypto.VaultCipher) ClientRotationService {
	return &clientRotationService{vault: vault, adapter: serverAdapter, crypto: cipher}
}

// Rotate runs the password change sequence: fetch, decrypt under the current
// password, re-encrypt under the new one, push against the fetched version,
// and only then update the server credential. Ordering matters: if the push
// is rejected with a version conflict the credential is never touched, so a
// failed rotation leaves the account exactly as it was.
func (s *clientRotationService) Rotate(ctx context.Context, creds models.Credentials, newPassword string) error {
	blob, version, exists, err := s.vault.Fetch(ctx, creds)
	if err != nil {
		return err
	}

	vault := s.crypto.NewEmptyVault()
	if exists {
		// A decryption failure here means the supplied current password is
		// wrong; rotating on top of it would brick the vault.
		vault, err = s.crypto.Decrypt(blob, creds.MasterPassword)
		if err != nil {
			return fmt.Errorf("current password rejected: %w", err)
		}
	}

	newBlob, err := s.crypto.Encrypt(vault, newPassword)
	if err != nil {
		return fmt.Errorf("re-encrypt vault: %w", err)
	}

	if _, err := s.vault.Push(ctx, creds, newBlob, version); err != nil {
		return fmt.Errorf("rotate vault: %w", err)
	}

	err = s.adapter.ChangePassword(ctx, models.ChangePasswordRequest{
		CurrentPassword: creds.MasterPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRotationIncomplete, err)
	}

	return nil
}
