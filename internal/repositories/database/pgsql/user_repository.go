package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dika1005/rodstore-backend/internal/apperrors"
	"github.com/dika1005/rodstore-backend/internal/core/domain"
	portsrepo "github.com/dika1005/rodstore-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `id, name, email, password, address, role, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Address, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &u, nil
}

func (r *PgxUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

func (r *PgxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	query := `
		INSERT INTO users (name, email, password, address, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Address,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *PgxUserRepository) UpdateRole(ctx context.Context, email string, role string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET role = $1 WHERE email = $2`, role, email)
	if err != nil {
		return fmt.Errorf("failed to update role for %s: %w", email, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpsertGoogleUser inserts a row for a first-time Google login. The stored row
// wins on repeat logins: ON CONFLICT DO NOTHING followed by a plain select.
func (r *PgxUserRepository) UpsertGoogleUser(ctx context.Context, email string, name string) (*domain.User, error) {
	insert := `
		INSERT INTO users (name, email, password, role)
		VALUES ($1, $2, '', $3)
		ON CONFLICT (email) DO NOTHING;
	`
	if _, err := r.db.Exec(ctx, insert, name, email, domain.RoleUser); err != nil {
		return nil, fmt.Errorf("failed to upsert google user: %w", err)
	}
	return r.FindUserByEmail(ctx, email)
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, userID int64, name string, address *string) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET name = $1, address = $2 WHERE id = $3`, name, address, userID)
	if err != nil {
		return fmt.Errorf("failed to update profile for user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
