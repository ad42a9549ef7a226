package dto

import (
	"github.com/spec-kit/faculty-service/internal/domain"
)

// CreateUsersRequest carries newline-separated emails for bulk provisioning.
type CreateUsersRequest struct {
	Emails string      `json:"emails" validate:"required"`
	Role   domain.Role `json:"role"`
}

// UserResponse is one account in the admin user listing.
type UserResponse struct {
	ID              string      `json:"id"`
	Email           string      `json:"email"`
	PasswordChanged bool        `json:"passwordChanged"`
	Role            domain.Role `json:"role"`
	Active          bool        `json:"active"`
	LastLogin       string      `json:"lastLogin"`
}

// NewUserResponse maps an account; accounts that never logged in report
// "Never".
func NewUserResponse(u *domain.User) UserResponse {
	lastLogin := "Never"
	if u.LastLoginAt != nil {
		lastLogin = u.LastLoginAt.Format("2006-01-02 15:04:05")
	}
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		PasswordChanged: u.PasswordChanged,
		Role:            u.Role,
		Active:          u.Active,
		LastLogin:       lastLogin,
	}
}

// ExportRequest selects the sections to export; empty means all.
type ExportRequest struct {
	Sections []string `json:"sections"`
}
