package repositories

import (
	"context"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
)

// RefreshTokenRepositoryFacade is the ledger of issued refresh tokens.
// The ledger is append-plus-revoke: rows are never physically deleted.
type RefreshTokenRepositoryFacade interface {
	// Store inserts a new ledger row for a freshly issued token.
	Store(ctx context.Context, token domain.RefreshToken) error

	// Lookup finds a ledger row by token hash. Missing, revoked and expired
	// rows all come back as unauthorized errors with distinct messages.
	Lookup(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)

	// Revoke marks a single token as revoked.
	Revoke(ctx context.Context, tokenHash string) error

	// RevokeAllForUser revokes every live token of a user (logout everywhere,
	// suspected compromise).
	RevokeAllForUser(ctx context.Context, userID int64) error

	// Rotate revokes the presented token and stores its replacement in one
	// transaction, so a crash can never leave both tokens usable.
	Rotate(ctx context.Context, oldTokenHash string, replacement domain.RefreshToken) error
}
