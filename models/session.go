package models

import "time"

// Session is an authenticated server session held by the client.
//
// Token is opaque to the client: it is issued by the server, attached
// verbatim as a bearer credential to authenticated requests, and never
// inspected locally. ExpiresAt is the absolute instant after which the
// token is no longer presented; expiry is detected reactively on use,
// the client never renews a token ahead of time.
type Session struct {
	// Token is the opaque bearer token issued by the server.
	Token string `json:"token"`

	// ExpiresAt is the normalized, timezone-unambiguous expiry instant.
	ExpiresAt time.Time `json:"expires_at"`
}

// Valid reports whether the session carries a token that has not expired
// as of now.
func (s Session) Valid(now time.Time) bool {
	return s.Token != "" && now.Before(s.ExpiresAt)
}
