package crypto

import "errors"

// ErrDecryption is returned for every decrypt-side failure. A wrong master
// password and a tampered or corrupted blob are intentionally
// indistinguishable to avoid giving an attacker an oracle.
var ErrDecryption = errors.New("vault decryption failed")
