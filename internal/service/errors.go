package service

import "errors"

var (
	ErrRegisterOnServer = errors.New("registration failed on server")
	ErrLoginOnServer    = errors.New("authentication failed on server")

	ErrAuthenticationRequired = errors.New("authentication required")
	ErrEntryNotFound          = errors.New("vault entry not found")
	ErrNoCachedVault          = errors.New("no cached vault available")

	// ErrRotationIncomplete reports a rotation that re-encrypted and pushed
	// the vault under the new password but failed to update the server
	// credential. The credential update must be retried with the same
	// password pair; the vault itself needs no further work.
	ErrRotationIncomplete = errors.New("vault re-encrypted but credential update failed")
)
