package repositories

import (
	"context"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// FindUserByEmail retrieves a user by email. Returns apperrors.ErrNotFound
	// (wrapped) when no row matches.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// CreateUser persists a new user and fills in the generated ID.
	CreateUser(ctx context.Context, user *domain.User) error

	// UpdateRole sets the role of the user identified by email.
	UpdateRole(ctx context.Context, email string, role string) error

	// UpsertGoogleUser inserts a user row for a Google account if none exists
	// yet, with an empty password hash. A repeat login is a no-op; the stored
	// row wins. Returns the resulting user.
	UpsertGoogleUser(ctx context.Context, email string, name string) (*domain.User, error)

	// UpdateProfile updates the profile fields owned by the user themselves.
	UpdateProfile(ctx context.Context, userID int64, name string, address *string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
