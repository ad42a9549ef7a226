package dto

import (
	"time"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token plus the identity fields the
// frontend routes on.
type LoginResponse struct {
	Token           string      `json:"token"`
	ExpiresAt       time.Time   `json:"expires_at"`
	Email           string      `json:"email"`
	Role            domain.Role `json:"role"`
	PasswordChanged bool        `json:"password_changed"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
