package querycache

import (
	"fmt"
	"strings"

	"github.com/zeebo/xxh3"
)

// Normalize folds case and trims surrounding whitespace.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Fingerprint is the 128-bit xxh3 hash of the normalised query, hex encoded.
func Fingerprint(query string) string {
	h := xxh3.HashString128(Normalize(query))
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo)
}
