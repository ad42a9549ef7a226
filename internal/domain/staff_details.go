package domain

import "time"

// StaffDetails is the single profile record owned by a user. Uniqueness on
// the owning user is enforced by the store, not by convention.
type StaffDetails struct {
	ID              string
	UserID          string
	Prefix          string
	Name            string
	Department      string
	DepartmentOrder int
	Institution     string
	Phone           string
	Address         string
	Website         *string
	PictureURL      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DisplayName joins prefix and name for listings and leaderboards.
func (d *StaffDetails) DisplayName() string {
	if d.Prefix == "" {
		return d.Name
	}
	return d.Prefix + " " + d.Name
}
