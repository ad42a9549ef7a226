package domain

import "time"

// Role enumerates account roles.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

// User is an account provisioned by an administrator. All profile facts hang
// off a user by foreign key; deleting the user cascades them.
type User struct {
	ID              string
	Email           string
	PasswordHash    string
	PasswordChanged bool
	Role            Role
	Active          bool
	Slug            *string
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
