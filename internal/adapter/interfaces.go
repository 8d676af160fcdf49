// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// vaultward server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401),
// and [errors.As] with [*APIError] to reach the machine-readable error
// code and human message.
package adapter

import (
	"context"

	"github.com/vaultward/vaultward/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// vaultward server. Implementations are responsible for serialisation,
// authentication-header management, and mapping transport-level failures
// to the sentinel values defined in this package.
//
// No method retries on failure; retry policy belongs to callers.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. An empty string detaches the header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter,
	// or an empty string if none has been set.
	Token() string

	// Register creates a new account. The request already carries the
	// client-side encrypted initial vault.
	Register(ctx context.Context, req models.RegisterRequest) error

	// CreateSession authenticates against the session endpoint. When the
	// primary endpoint answers 404 the adapter walks a fixed ordered
	// list of alternate endpoint shapes and stops at the first non-404
	// response; the shape that answered is cached for the process
	// lifetime so later calls skip the probe. Returns the raw server
	// response; expiry normalization is the session store's concern.
	CreateSession(ctx context.Context, req models.SessionRequest) (models.SessionResponse, error)

	// GetVault fetches the encrypted vault blob and its server version.
	// A null blob in the response signals a first-time account.
	GetVault(ctx context.Context) (models.VaultResponse, error)

	// UpdateVault stores a new encrypted blob under optimistic
	// concurrency control. Returns [ErrConflict] (wrapped) when the
	// server rejects the carried version with 409.
	UpdateVault(ctx context.Context, req models.VaultUpdateRequest) (models.VaultUpdateResponse, error)

	// ChangePassword switches the server-stored login credential.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// Logout invalidates the server-side session for the current token.
	Logout(ctx context.Context) error

	// Health probes the server health endpoint.
	Health(ctx context.Context) error
}
