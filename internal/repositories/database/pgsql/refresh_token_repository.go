package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dika1005/rodstore-backend/internal/apperrors"
	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portsrepo "github.com/dika1005/rodstore-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRefreshTokenRepository struct {
	BaseRepository
}

func newPgxRefreshTokenRepository(pool *pgxpool.Pool) portsrepo.RefreshTokenRepositoryFacade {
	return &PgxRefreshTokenRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RefreshTokenRepositoryFacade = (*PgxRefreshTokenRepository)(nil)

const insertRefreshTokenQuery = `
	INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
	VALUES ($1, $2, $3);
`

func (r *PgxRefreshTokenRepository) Store(ctx context.Context, token domain.RefreshToken) error {
	_, err := r.Pool.Exec(ctx, insertRefreshTokenQuery, token.UserID, token.TokenHash, token.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// Lookup enforces the ledger contract: a token that is missing, revoked or
// expired is unusable, each with its own unauthorized message.
func (r *PgxRefreshTokenRepository) Lookup(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, token_hash, revoked, expires_at, created_at
		FROM refresh_tokens
		WHERE token_hash = $1;
	`
	var t domain.RefreshToken
	err := r.Pool.QueryRow(ctx, query, tokenHash).Scan(
		&t.ID, &t.UserID, &t.TokenHash, &t.Revoked, &t.ExpiresAt, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorizedError("refresh token not recognized")
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if t.Revoked {
		return nil, apperrors.NewUnauthorizedError("refresh token revoked")
	}
	if time.Now().After(t.ExpiresAt) {
		return nil, apperrors.NewUnauthorizedError("refresh token expired")
	}
	return &t, nil
}

func (r *PgxRefreshTokenRepository) Revoke(ctx context.Context, tokenHash string) error {
	_, err := r.Pool.Exec(ctx, `UPDATE refresh_tokens SET revoked = TRUE WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (r *PgxRefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	_, err := r.Pool.Exec(ctx, `UPDATE refresh_tokens SET revoked = TRUE WHERE user_id = $1 AND revoked = FALSE`, userID)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh tokens for user %d: %w", userID, err)
	}
	return nil
}

// Rotate revokes the presented token and inserts its replacement in one
// transaction. The revoked = FALSE condition makes rotation single-use: a
// second rotation of the same token affects zero rows and fails here.
func (r *PgxRefreshTokenRepository) Rotate(ctx context.Context, oldTokenHash string, replacement domain.RefreshToken) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `UPDATE refresh_tokens SET revoked = TRUE WHERE token_hash = $1 AND revoked = FALSE`, oldTokenHash)
	if err != nil {
		return fmt.Errorf("failed to revoke rotated token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewUnauthorizedError("refresh token revoked")
	}

	if _, err := tx.Exec(ctx, insertRefreshTokenQuery, replacement.UserID, replacement.TokenHash, replacement.ExpiresAt); err != nil {
		return fmt.Errorf("failed to store replacement token: %w", err)
	}

	return r.Commit(ctx, tx)
}
