package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// TokenDigest returns the hex-encoded SHA256 digest of a session token.
// Raw tokens are credentials and must never appear in cache keys or logs.
func TokenDigest(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
