package services

import (
	"context"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
)

// UserSvcFacade defines registration, credential checks and profile management.
type UserSvcFacade interface {
	// Register creates a password-based account. Duplicate email is a
	// validation error. Address is optional and stored with the row.
	Register(ctx context.Context, name string, email string, password string, address *string) (*domain.User, error)

	// Authenticate verifies email+password. Unknown email and wrong password
	// return the same unauthorized error.
	Authenticate(ctx context.Context, email string, password string) (*domain.User, error)

	// FindUserByID retrieves a user by id.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// LoginWithGoogle inserts the account on first Google login and returns
	// the stored user on every login after that.
	LoginWithGoogle(ctx context.Context, email string, name string) (*domain.User, error)

	// UpdateRole changes a user's role. Only "user" and "admin" are valid.
	UpdateRole(ctx context.Context, email string, role string) error

	// Profile returns the caller's own profile.
	Profile(ctx context.Context, userID int64) (*domain.User, error)

	// UpdateProfile updates the caller's own name and address.
	UpdateProfile(ctx context.Context, userID int64, name string, address *string) error
}
