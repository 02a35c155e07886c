package domain

import "time"

// Roles a user can hold. Stored as plain text in the users table.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered customer or administrator.
// PasswordHash is empty for accounts created through Google OAuth.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      *string   `json:"address,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsValidRole reports whether role is one of the assignable roles.
func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
