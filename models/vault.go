package models

// Vault is the user's credential collection in plaintext form. It exists
// only in client memory between a successful decrypt and the following
// encrypt; the server ever sees it only as an opaque ciphertext blob.
//
// Entries is an ordered slice: insertion order is preserved across
// encrypt/decrypt round-trips and is meaningful to the user.
type Vault struct {
	// Entries holds the vault items in user-defined order.
	Entries []VaultEntry `json:"entries"`
}

// VaultEntry is a single stored credential.
type VaultEntry struct {
	// ID is a stable opaque identifier generated on the client when the
	// entry is created. It never changes for the lifetime of the entry.
	ID string `json:"id"`

	// Name is the user-visible label of the entry. Required.
	Name string `json:"name"`

	// Username is the account login associated with the entry.
	Username string `json:"username,omitempty"`

	// Password is the stored secret value.
	Password string `json:"password,omitempty"`

	// URL is the site or service the credential belongs to.
	URL string `json:"url,omitempty"`

	// Notes holds free-form user text.
	Notes string `json:"notes,omitempty"`
}

// FindEntry returns the index of the entry with the given id, or -1 if no
// such entry exists.
func (v *Vault) FindEntry(id string) int {
	for i := range v.Entries {
		if v.Entries[i].ID == id {
			return i
		}
	}
	return -1
}
