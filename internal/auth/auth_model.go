package auth

import (
	"time"

	"github.com/DhavalSuthar-24/matchday/internal/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type LogoutRequest struct {
	RefreshToken          string `json:"refresh_token,omitempty"`
	InvalidateAllSessions bool   `json:"invalidate_all_sessions,omitempty"`
}

// CreateUserRequest is used by an administrator to open a staff account.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=75" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email,max=75" example:"jane@example.com"`
	Password string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	Admin    bool   `json:"admin" example:"false"`
}

type UserResponse struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Roles     []string   `json:"roles"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// FilterUserRecord strips the password hash and flattens roles.
func FilterUserRecord(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Roles:     u.RoleNames(),
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
