package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashSiteKey returns a filesystem-safe identifier for a site URL.
func HashSiteKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
