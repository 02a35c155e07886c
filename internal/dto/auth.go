package dto

import (
	"time"

	"github.com/dika1005/rodstore-backend/internal/core/domain"
)

// RegisterRequest is the payload for password-based registration.
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Address  *string `json:"address,omitempty"`
}

// LoginRequest is the payload for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest optionally carries the refresh token in the body; the
// refresh_token cookie is the primary transport.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// UpdateRoleRequest changes a user's role, admin only.
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   *string   `json:"address,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ToUserResponse maps a domain user to its public view.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// LoginData is the data section of a successful login or refresh.
type LoginData struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// UpdateProfileRequest updates the caller's own profile.
type UpdateProfileRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address,omitempty"`
}
