package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken returns the hex SHA-256 digest of a refresh token.
// Only the digest is persisted, so a leaked ledger cannot be replayed.
func HashRefreshToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
