package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeExpiry_RFC3339PassThrough(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	got := NormalizeExpiry("2024-01-01T12:00:00Z", now)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))

	// Offset forms normalize to the same absolute instant.
	got = NormalizeExpiry("2024-01-01T15:00:00+03:00", now)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
}

func TestNormalizeExpiry_SpaceSeparatedIsUTC(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	got := NormalizeExpiry("2024-01-01 12:00:00", now)
	assert.True(t, got.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))
}

func TestNormalizeExpiry_UnparseableFallsBackToOneHour(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	for _, raw := range []string{"", "soon", "01/02/2024", "   "} {
		got := NormalizeExpiry(raw, now)
		assert.Equal(t, now.Add(time.Hour), got, "input %q", raw)
	}
}
