package models

// RegisterRequest is the body of POST /api/v1/auth/register. The vault is
// encrypted on the client before the request is built; the server stores
// it as-is.
type RegisterRequest struct {
	// Email is the unique account identifier.
	Email string `json:"email"`

	// MasterPassword is the login credential verified by the server.
	// It is transmitted only inside this request and never stored by
	// the client.
	MasterPassword string `json:"master_password"`

	// EncryptedVault is the initial vault ciphertext (an empty vault
	// encrypted under the master password).
	EncryptedVault string `json:"encrypted_vault"`

	// Username is an optional display name.
	Username string `json:"username,omitempty"`
}

// SessionRequest is the body of the session-creation endpoints.
type SessionRequest struct {
	Email          string `json:"email"`
	MasterPassword string `json:"master_password,omitempty"`
}

// SessionResponse is the success body of session creation. ExpiresAt is
// kept as the raw server string because deployed backends disagree on its
// format; normalization happens in the session store.
type SessionResponse struct {
	SessionToken string `json:"session_token"`
	ExpiresAt    string `json:"expires_at"`
}

// VaultResponse is the success body of GET /api/v1/vault/.
//
// EncryptedVault is a pointer so that a JSON null (brand-new account, no
// vault stored yet) is distinguishable from an empty string.
type VaultResponse struct {
	EncryptedVault *string `json:"encrypted_vault"`
	VaultVersion   *int64  `json:"vault_version,omitempty"`
}

// VaultUpdateRequest is the body of PUT /api/v1/vault/. VaultVersion
// carries the version last observed by the caller; the server rejects the
// write with 409 if its counter has moved past it.
type VaultUpdateRequest struct {
	EncryptedVault string `json:"encrypted_vault"`
	VaultVersion   *int64 `json:"vault_version,omitempty"`
}

// VaultUpdateResponse is the success body of PUT /api/v1/vault/. When the
// server echoes VaultVersion that value is authoritative; otherwise the
// client advances its local copy to expectedVersion+1.
type VaultUpdateResponse struct {
	VaultVersion *int64 `json:"vault_version,omitempty"`
}

// ChangePasswordRequest is the body of POST /api/v1/auth/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ErrorResponse is the error body shape the server is expected to return
// on non-2xx statuses. Both fields are optional; the client substitutes
// an http_<status> code and the raw body when they are absent.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
