package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vaultward/vaultward/internal/adapter"
	"github.com/vaultward/vaultward/internal/crypto"
	"github.com/vaultward/vaultward/internal/store"
	"github.com/vaultward/vaultward/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	crypto     crypto.VaultCipher

	now func() time.Time
}

func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cipher crypto.VaultCipher) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, crypto: cipher, now: time.Now}
}

func (a *clientAuthService) Register(ctx context.Context, creds models.Credentials) error {
	// The account starts with an encrypted empty vault so that the very first
	// GetVault after registration can already return a decryptable blob.
	blob, err := a.crypto.Encrypt(a.crypto.NewEmptyVault(), creds.MasterPassword)
	if err != nil {
		return fmt.Errorf("encrypt initial vault: %w", err)
	}

	err = a.adapter.Register(ctx, models.RegisterRequest{
		Email:          creds.Email,
		MasterPassword: creds.MasterPassword,
		EncryptedVault: blob,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, err)
	}

	return nil
}

func (a *clientAuthService) CreateSession(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := a.adapter.CreateSession(ctx, models.SessionRequest{
		Email:          creds.Email,
		MasterPassword: creds.MasterPassword,
	})
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	session := models.Session{
		Token:     resp.SessionToken,
		ExpiresAt: store.NormalizeExpiry(resp.ExpiresAt, a.now()),
	}

	// A session that cannot be persisted is still usable for this process;
	// the next run simply authenticates again.
	_ = a.localStore.Sessions.Save(session)

	a.adapter.SetToken(session.Token)

	return session, nil
}

func (a *clientAuthService) EnsureSession(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if session, ok := a.localStore.Sessions.Load(); ok && session.Valid(a.now()) {
		a.adapter.SetToken(session.Token)
		return session, nil
	}

	return a.CreateSession(ctx, creds)
}

func (a *clientAuthService) AuthHeader() (string, bool) {
	session, ok := a.localStore.Sessions.Load()
	if !ok || !session.Valid(a.now()) {
		return "", false
	}

	return "Bearer " + session.Token, true
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if session, ok := a.localStore.Sessions.Load(); ok && session.Valid(a.now()) {
		a.adapter.SetToken(session.Token)
		// Server-side invalidation is best effort: an unreachable server must
		// not keep the session on disk.
		_ = a.adapter.Logout(ctx)
	}

	a.adapter.SetToken("")

	if err := a.localStore.Sessions.Clear(); err != nil {
		return fmt.Errorf("clear local session: %w", err)
	}

	return nil
}
