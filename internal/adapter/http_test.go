// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultward/vaultward/internal/config"
	"github.com/vaultward/vaultward/internal/logger"
	"github.com/vaultward/vaultward/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── CreateSession ───────────────────────────────────────────────────────────

func TestCreateSession_PrimaryEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/session", r.URL.Path)

		var req models.SessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Email)

		_ = json.NewEncoder(w).Encode(models.SessionResponse{
			SessionToken: "tok-1",
			ExpiresAt:    "2030-01-01T00:00:00Z",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateSession(context.Background(), models.SessionRequest{Email: "a@b.com", MasterPassword: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.SessionToken)
	assert.Equal(t, "2030-01-01T00:00:00Z", got.ExpiresAt)
}

func TestCreateSession_FallbackChainOrder(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path != "/auth/session" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(models.SessionResponse{SessionToken: "tok-legacy", ExpiresAt: ""})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	got, err := a.CreateSession(context.Background(), models.SessionRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "tok-legacy", got.SessionToken)
	assert.Equal(t, []string{"/api/v1/auth/session", "/api/v1/auth/login", "/auth/session"}, paths)

	// The resolved shape is cached: the second call probes nothing.
	paths = nil
	_, err = a.CreateSession(context.Background(), models.SessionRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/auth/session"}, paths)
}

func TestCreateSession_StopsAtFirstNonNotFound(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/api/v1/auth/session" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.ErrorResponse{Code: "invalid_credentials", Message: "wrong email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateSession(context.Background(), models.SessionRequest{Email: "a@b.com", MasterPassword: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	// A 401 ends the probe: the endpoint exists, the credentials are wrong.
	assert.Equal(t, []string{"/api/v1/auth/session", "/api/v1/auth/login"}, paths)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid_credentials", apiErr.Code)
	assert.Equal(t, "wrong email or password", apiErr.Message)
}

func TestCreateSession_AllEndpointsMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateSession(context.Background(), models.SessionRequest{Email: "a@b.com"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateSession_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateSession(context.Background(), models.SessionRequest{Email: "a@b.com"})

	assert.ErrorIs(t, err, ErrTransport)
}

// ── Vault ───────────────────────────────────────────────────────────────────

func TestGetVault_FirstTimeAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/vault/", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{"encrypted_vault": null}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok-1")

	got, err := a.GetVault(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got.EncryptedVault)
	assert.Nil(t, got.VaultVersion)
}

func TestGetVault_ExistingBlob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"encrypted_vault": "Ym9iYQ==", "vault_version": 7}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok-1")

	got, err := a.GetVault(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got.EncryptedVault)
	assert.Equal(t, "Ym9iYQ==", *got.EncryptedVault)
	require.NotNil(t, got.VaultVersion)
	assert.Equal(t, int64(7), *got.VaultVersion)
}

func TestUpdateVault_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("version conflict"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok-1")

	version := int64(3)
	_, err := a.UpdateVault(context.Background(), models.VaultUpdateRequest{EncryptedVault: "blob", VaultVersion: &version})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "http_409", apiErr.Code)
	assert.Equal(t, "version conflict", apiErr.Message)
}

func TestUpdateVault_EchoedVersionWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.VaultUpdateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.VaultVersion)
		assert.Equal(t, int64(3), *req.VaultVersion)

		_, _ = w.Write([]byte(`{"vault_version": 4}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok-1")

	version := int64(3)
	got, err := a.UpdateVault(context.Background(), models.VaultUpdateRequest{EncryptedVault: "blob", VaultVersion: &version})
	require.NoError(t, err)
	require.NotNil(t, got.VaultVersion)
	assert.Equal(t, int64(4), *got.VaultVersion)
}

func TestUpdateVault_EmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok-1")

	got, err := a.UpdateVault(context.Background(), models.VaultUpdateRequest{EncryptedVault: "blob"})
	require.NoError(t, err)
	assert.Nil(t, got.VaultVersion)
}

// ── Misc endpoints ──────────────────────────────────────────────────────────

func TestChangePassword_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/change-password", r.URL.Path)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.ChangePassword(context.Background(), models.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "b"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestHealth_FallsBackToAuthHealth(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/auth/health" {
			_, _ = w.Write([]byte("ok"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Health(context.Background()))
	assert.Equal(t, []string{"/health", "/auth/health"}, paths)
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "   "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"localhost:8080", "http://localhost:8080"},
		{"https://vault.example/", "https://vault.example"},
		{"http://vault.example", "http://vault.example"},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
