package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecureRandomString returns a URL-safe random string built from
// byteLength bytes of crypto/rand entropy. Used for OAuth state values.
func GenerateSecureRandomString(byteLength int) (string, error) {
	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
