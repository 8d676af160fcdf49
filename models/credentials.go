package models

// Credentials holds the account identity pair used for authentication
// and key derivation. The master password never leaves the client in
// plaintext except inside authentication requests over TLS.
type Credentials struct {
	Email          string
	MasterPassword string
}
