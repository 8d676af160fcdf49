// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultward/vaultward/internal/adapter"
	"github.com/vaultward/vaultward/internal/crypto"
	"github.com/vaultward/vaultward/internal/mock"
	"github.com/vaultward/vaultward/internal/store"
	"github.com/vaultward/vaultward/internal/validators"
	"github.com/vaultward/vaultward/models"
	"go.uber.org/mock/gomock"
)

var vaultCreds = models.Credentials{Email: "a@b.com", MasterPassword: "CorrectHorse9!"}

type vaultFixture struct {
	adapter *mock.MockServerAdapter
	blobs   *mock.MockBlobCache
	cipher  crypto.VaultCipher
	svc     ClientVaultService
}

func newVaultFixture(t *testing.T) *vaultFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	blobs := mock.NewMockBlobCache(ctrl)

	sessions, err := store.NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	require.NoError(t, sessions.Save(models.Session{Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}))

	serverAdapter.EXPECT().SetToken("tok").AnyTimes()
	blobs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	localStore := &store.ClientStorages{Sessions: sessions, Blobs: blobs}
	cipher := crypto.NewVaultCipher()
	auth := NewClientAuthService(localStore, serverAdapter, cipher)

	return &vaultFixture{
		adapter: serverAdapter,
		blobs:   blobs,
		cipher:  cipher,
		svc:     NewClientVaultService(auth, serverAdapter, cipher, blobs),
	}
}

func (f *vaultFixture) encrypt(t *testing.T, entries ...models.VaultEntry) string {
	t.Helper()
	blob, err := f.cipher.Encrypt(models.Vault{Entries: entries}, vaultCreds.MasterPassword)
	require.NoError(t, err)
	return blob
}

func ptrString(s string) *string { return &s }
func ptrInt64(v int64) *int64    { return &v }

func TestFetch_FirstTimeAccount(t *testing.T) {
	f := newVaultFixture(t)

	f.adapter.EXPECT().GetVault(gomock.Any()).Return(models.VaultResponse{}, nil)

	blob, version, exists, err := f.svc.Fetch(context.Background(), vaultCreds)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, blob)
	assert.Zero(t, version)
}

func TestFetch_ExistingBlobRefreshesCache(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.encrypt(t, models.VaultEntry{ID: "1", Name: "Mail"})

	f.adapter.EXPECT().GetVault(gomock.Any()).
		Return(models.VaultResponse{EncryptedVault: ptrString(stored), VaultVersion: ptrInt64(3)}, nil)

	blob, version, exists, err := f.svc.Fetch(context.Background(), vaultCreds)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, stored, blob)
	assert.Equal(t, int64(3), version)
}

func TestPush_VersionAdvancesByOne(t *testing.T) {
	f := newVaultFixture(t)
	blob := f.encrypt(t)

	f.adapter.EXPECT().UpdateVault(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.VaultUpdateRequest) (models.VaultUpdateResponse, error) {
			require.NotNil(t, req.VaultVersion)
			assert.Equal(t, int64(4), *req.VaultVersion)
			return models.VaultUpdateResponse{}, nil
		})

	version, err := f.svc.Push(context.Background(), vaultCreds, blob, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(5), version)
}

func TestPush_EchoedVersionIsAuthoritative(t *testing.T) {
	f := newVaultFixture(t)

	f.adapter.EXPECT().UpdateVault(gomock.Any(), gomock.Any()).
		Return(models.VaultUpdateResponse{VaultVersion: ptrInt64(9)}, nil)

	version, err := f.svc.Push(context.Background(), vaultCreds, f.encrypt(t), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(9), version)
}

func TestPush_ConflictPropagates(t *testing.T) {
	f := newVaultFixture(t)

	f.adapter.EXPECT().UpdateVault(gomock.Any(), gomock.Any()).
		Return(models.VaultUpdateResponse{}, adapter.ErrConflict)

	_, err := f.svc.Push(context.Background(), vaultCreds, f.encrypt(t), 4)
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestOpen_FirstTimeAccountYieldsEmptyVault(t *testing.T) {
	f := newVaultFixture(t)

	f.adapter.EXPECT().GetVault(gomock.Any()).Return(models.VaultResponse{}, nil)

	vault, version, err := f.svc.Open(context.Background(), vaultCreds)
	require.NoError(t, err)
	assert.Empty(t, vault.Entries)
	assert.Zero(t, version)
}

func TestOpen_WrongPassword(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.encrypt(t, models.VaultEntry{ID: "1", Name: "Mail"})

	f.adapter.EXPECT().GetVault(gomock.Any()).
		Return(models.VaultResponse{EncryptedVault: ptrString(stored), VaultVersion: ptrInt64(1)}, nil)

	_, _, err := f.svc.Open(context.Background(), models.Credentials{Email: "a@b.com", MasterPassword: "not-it"})
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestAddEntry(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.encrypt(t)

	f.adapter.EXPECT().GetVault(gomock.Any()).
		Return(models.VaultResponse{EncryptedVault: ptrString(stored), VaultVersion: ptrInt64(0)}, nil)
	f.adapter.EXPECT().UpdateVault(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.VaultUpdateRequest) (models.VaultUpdateResponse, error) {
			require.NotNil(t, req.VaultVersion)
			assert.Equal(t, int64(0), *req.VaultVersion)

			vault, err := f.cipher.Decrypt(req.EncryptedVault, vaultCreds.MasterPassword)
			require.NoError(t, err)
			require.Len(t, vault.Entries, 1)
			assert.Equal(t, "Mail", vault.Entries[0].Name)
			return models.VaultUpdateResponse{}, nil
		})

	entry, version, err := f.svc.AddEntry(context.Background(), vaultCreds,
		models.VaultEntry{Name: "Mail", Username: "a@b.com", Password: "x"})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, int64(1), version)
}

func TestAddEntry_InvalidEntryNeverReachesServer(t *testing.T) {
	f := newVaultFixture(t)

	_, _, err := f.svc.AddEntry(context.Background(), vaultCreds, models.VaultEntry{Name: "  "})
	assert.ErrorIs(t, err, validators.ErrEmptyEntryName)
}

func TestUpdateEntry(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.encrypt(t, models.VaultEntry{ID: "e1", Name: "Mail", Password: "old"})

	f.adapter.EXPECT().GetVault(gomock.Any()).
		Return(models.VaultResponse{EncryptedVault: ptrString(stored), VaultVersion: ptrInt64(2)}, nil)
	f.adapter.EXPECT().UpdateVault(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.VaultUpdateRequest) (models.VaultUpdateResponse, error) {
			vault, err := f.cipher.Decrypt(req.EncryptedVault, vaultCreds.MasterPassword)
			require.NoError(t, err)
			require.Len(t, vault.Entries, 1)
			assert.Equal(t, "new", vault.Entries[0].Password)
			return models.VaultUpdateResponse{}, nil
		})

	version, err := f.svc.UpdateEntry(context.Background(), vaultCreds,
		models.VaultEntry{ID: "e1", Name: "Mail", Password: "new"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.encrypt(t, models.VaultEntry{ID: "e1", Name: "Mail"})

	f.adapter.EXPECT().GetVault(gomock.Any()).
		Return(models.VaultResponse{EncryptedVault: ptrString(stored), VaultVersion: ptrInt64(2)}, nil)

	_, err := f.svc.UpdateEntry(context.Background(), vaultCreds, models.VaultEntry{ID: "missing", Name: "X"})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestRemoveEntry(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.encrypt(t,
		models.VaultEntry{ID: "e1", Name: "Mail"},
		models.VaultEntry{ID: "e2", Name: "Bank"},
	)

	f.adapter.EXPECT().GetVault(gomock.Any()).
		Return(models.VaultResponse{EncryptedVault: ptrString(stored), VaultVersion: ptrInt64(5)}, nil)
	f.adapter.EXPECT().UpdateVault(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.VaultUpdateRequest) (models.VaultUpdateResponse, error) {
			vault, err := f.cipher.Decrypt(req.EncryptedVault, vaultCreds.MasterPassword)
			require.NoError(t, err)
			require.Len(t, vault.Entries, 1)
			assert.Equal(t, "e2", vault.Entries[0].ID)
			return models.VaultUpdateResponse{}, nil
		})

	version, err := f.svc.RemoveEntry(context.Background(), vaultCreds, "e1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), version)
}

func TestRemoveEntry_NotFound(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.encrypt(t, models.VaultEntry{ID: "e1", Name: "Mail"})

	f.adapter.EXPECT().GetVault(gomock.Any()).
		Return(models.VaultResponse{EncryptedVault: ptrString(stored), VaultVersion: ptrInt64(5)}, nil)

	_, err := f.svc.RemoveEntry(context.Background(), vaultCreds, "missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestListCached(t *testing.T) {
	f := newVaultFixture(t)
	stored := f.encrypt(t, models.VaultEntry{ID: "e1", Name: "Mail"})

	f.blobs.EXPECT().Get("a@b.com").Return(stored, int64(7), true)

	entries, version, err := f.svc.ListCached(vaultCreds)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Mail", entries[0].Name)
	assert.Equal(t, int64(7), version)
}

func TestListCached_NothingCached(t *testing.T) {
	f := newVaultFixture(t)

	f.blobs.EXPECT().Get("a@b.com").Return("", int64(0), false)

	_, _, err := f.svc.ListCached(vaultCreds)
	assert.ErrorIs(t, err, ErrNoCachedVault)
}
