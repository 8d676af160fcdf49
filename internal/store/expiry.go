package store

import (
	"strings"
	"time"
)

// fallbackSessionTTL is assumed when the server-provided expiry cannot be
// parsed. Under-reporting a session's lifetime only costs an extra login;
// refusing to log in at all would cost availability.
const fallbackSessionTTL = time.Hour

// spaceSeparatedLayout matches the "YYYY-MM-DD HH:MM:SS" form some
// backends emit. It carries no zone information and is treated as UTC.
const spaceSeparatedLayout = "2006-01-02 15:04:05"

// NormalizeExpiry converts a server-provided expiry representation into an
// unambiguous absolute instant. Accepted inputs, in order:
//
//  1. RFC 3339 timestamps, passed through in absolute terms;
//  2. "YYYY-MM-DD HH:MM:SS", interpreted as UTC;
//  3. anything else, including the empty string: now + 1 hour.
func NormalizeExpiry(raw string, now time.Time) time.Time {
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.ParseInLocation(spaceSeparatedLayout, raw, time.UTC); err == nil {
		return t
	}

	return now.Add(fallbackSessionTTL)
}
