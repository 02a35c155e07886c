package domain

import "time"

// RefreshToken is a ledger row for an issued refresh token. The raw token is
// never stored, only its SHA-256 hash. Rows are revoked, never deleted.
type RefreshToken struct {
	ID        int64
	UserID    int64
	TokenHash string
	Revoked   bool
	ExpiresAt time.Time
	CreatedAt time.Time
}
