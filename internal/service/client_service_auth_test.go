// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaultward/vaultward/internal/crypto"
	"github.com/vaultward/vaultward/internal/mock"
	"github.com/vaultward/vaultward/internal/store"
	"github.com/vaultward/vaultward/models"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

type authFixture struct {
	adapter  *mock.MockServerAdapter
	sessions store.SessionStore
	svc      *clientAuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	sessions, err := store.NewFileSessionStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)

	localStore := &store.ClientStorages{
		Sessions: sessions,
		Blobs:    mock.NewMockBlobCache(ctrl),
	}

	svc := NewClientAuthService(localStore, serverAdapter, crypto.NewVaultCipher()).(*clientAuthService)
	svc.now = func() time.Time { return testNow }

	return &authFixture{adapter: serverAdapter, sessions: sessions, svc: svc}
}

func TestRegister_EncryptsEmptyVaultClientSide(t *testing.T) {
	f := newAuthFixture(t)
	creds := models.Credentials{Email: "a@b.com", MasterPassword: "CorrectHorse9!"}

	var captured models.RegisterRequest
	f.adapter.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.RegisterRequest) error {
			captured = req
			return nil
		})

	require.NoError(t, f.svc.Register(context.Background(), creds))

	assert.Equal(t, "a@b.com", captured.Email)
	require.NotEmpty(t, captured.EncryptedVault)

	vault, err := crypto.NewVaultCipher().Decrypt(captured.EncryptedVault, creds.MasterPassword)
	require.NoError(t, err)
	assert.Empty(t, vault.Entries)
}

func TestRegister_ServerError(t *testing.T) {
	f := newAuthFixture(t)

	f.adapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(assert.AnError)

	err := f.svc.Register(context.Background(), models.Credentials{Email: "a@b.com", MasterPassword: "pw"})
	assert.ErrorIs(t, err, ErrRegisterOnServer)
}

func TestCreateSession_PersistsNormalizedSession(t *testing.T) {
	f := newAuthFixture(t)
	expiry := testNow.Add(30 * time.Minute)

	f.adapter.EXPECT().
		CreateSession(gomock.Any(), models.SessionRequest{Email: "a@b.com", MasterPassword: "pw"}).
		Return(models.SessionResponse{SessionToken: "tok-1", ExpiresAt: expiry.Format(time.RFC3339)}, nil)
	f.adapter.EXPECT().SetToken("tok-1")

	session, err := f.svc.CreateSession(context.Background(), models.Credentials{Email: "a@b.com", MasterPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", session.Token)
	assert.True(t, session.ExpiresAt.Equal(expiry))

	stored, ok := f.sessions.Load()
	require.True(t, ok)
	assert.Equal(t, "tok-1", stored.Token)
}

func TestCreateSession_UnparsableExpiryFallsBackToOneHour(t *testing.T) {
	f := newAuthFixture(t)

	f.adapter.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		Return(models.SessionResponse{SessionToken: "tok-2", ExpiresAt: "sometime soon"}, nil)
	f.adapter.EXPECT().SetToken("tok-2")

	session, err := f.svc.CreateSession(context.Background(), models.Credentials{Email: "a@b.com", MasterPassword: "pw"})
	require.NoError(t, err)
	assert.True(t, session.ExpiresAt.Equal(testNow.Add(time.Hour)))
}

func TestCreateSession_ServerError(t *testing.T) {
	f := newAuthFixture(t)

	f.adapter.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(models.SessionResponse{}, assert.AnError)

	_, err := f.svc.CreateSession(context.Background(), models.Credentials{Email: "a@b.com", MasterPassword: "pw"})
	assert.ErrorIs(t, err, ErrLoginOnServer)

	_, ok := f.sessions.Load()
	assert.False(t, ok)
}

func TestEnsureSession_ReusesValidSession(t *testing.T) {
	f := newAuthFixture(t)
	cached := models.Session{Token: "cached-tok", ExpiresAt: testNow.Add(10 * time.Minute)}
	require.NoError(t, f.sessions.Save(cached))

	// No CreateSession expectation: reauthentication here is a test failure.
	f.adapter.EXPECT().SetToken("cached-tok")

	session, err := f.svc.EnsureSession(context.Background(), models.Credentials{Email: "a@b.com", MasterPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "cached-tok", session.Token)
}

func TestEnsureSession_ExpiredSessionReauthenticates(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.sessions.Save(models.Session{Token: "stale", ExpiresAt: testNow.Add(-time.Minute)}))

	f.adapter.EXPECT().
		CreateSession(gomock.Any(), gomock.Any()).
		Return(models.SessionResponse{SessionToken: "fresh", ExpiresAt: testNow.Add(time.Hour).Format(time.RFC3339)}, nil)
	f.adapter.EXPECT().SetToken("fresh")

	session, err := f.svc.EnsureSession(context.Background(), models.Credentials{Email: "a@b.com", MasterPassword: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", session.Token)
}

func TestAuthHeader(t *testing.T) {
	t.Run("valid session", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.sessions.Save(models.Session{Token: "tok", ExpiresAt: testNow.Add(time.Minute)}))

		header, ok := f.svc.AuthHeader()
		assert.True(t, ok)
		assert.Equal(t, "Bearer tok", header)
	})

	t.Run("expired session", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.sessions.Save(models.Session{Token: "tok", ExpiresAt: testNow.Add(-time.Minute)}))

		_, ok := f.svc.AuthHeader()
		assert.False(t, ok)
	})

	t.Run("no session", func(t *testing.T) {
		f := newAuthFixture(t)

		_, ok := f.svc.AuthHeader()
		assert.False(t, ok)
	})
}

func TestLogout_ClearsSessionEvenWhenServerFails(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.sessions.Save(models.Session{Token: "tok", ExpiresAt: testNow.Add(time.Minute)}))

	f.adapter.EXPECT().SetToken("tok")
	f.adapter.EXPECT().Logout(gomock.Any()).Return(assert.AnError)
	f.adapter.EXPECT().SetToken("")

	require.NoError(t, f.svc.Logout(context.Background()))

	_, ok := f.sessions.Load()
	assert.False(t, ok)
}

func TestLogout_WithoutSessionSkipsServerCall(t *testing.T) {
	f := newAuthFixture(t)

	f.adapter.EXPECT().SetToken("")

	require.NoError(t, f.svc.Logout(context.Background()))
}
