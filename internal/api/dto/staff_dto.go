package dto

import (
	"time"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// StaffDetailsRequest is the staff-details upsert payload.
type StaffDetailsRequest struct {
	Prefix          string  `json:"prefix"`
	Name            string  `json:"name" validate:"required"`
	Department      string  `json:"department" validate:"required"`
	DepartmentOrder int     `json:"department_order"`
	Institution     string  `json:"institution"`
	Phone           string  `json:"phone"`
	Address         string  `json:"address"`
	Website         *string `json:"website"`
	PictureURL      *string `json:"profile_picture"`
}

// StaffDetailsResponse mirrors one staff-details record.
type StaffDetailsResponse struct {
	ID              string    `json:"id"`
	Prefix          string    `json:"prefix"`
	Name            string    `json:"name"`
	Department      string    `json:"department"`
	DepartmentOrder int       `json:"department_order"`
	Institution     string    `json:"institution"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	Website         *string   `json:"website"`
	PictureURL      *string   `json:"profile_picture"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewStaffDetailsResponse maps the domain record.
func NewStaffDetailsResponse(d *domain.StaffDetails) StaffDetailsResponse {
	return StaffDetailsResponse{
		ID:              d.ID,
		Prefix:          d.Prefix,
		Name:            d.Name,
		Department:      d.Department,
		DepartmentOrder: d.DepartmentOrder,
		Institution:     d.Institution,
		Phone:           d.Phone,
		Address:         d.Address,
		Website:         d.Website,
		PictureURL:      d.PictureURL,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// WhoAmIResponse is the minimal identity payload for the staff header bar.
type WhoAmIResponse struct {
	Prefix     string `json:"prefix"`
	Name       string `json:"name"`
	Department string `json:"department"`
}

// TrackerStatusResponse exposes the completion flags plus the derived
// completeness.
type TrackerStatusResponse struct {
	ProfileDetails   bool `json:"profile_details_completed"`
	EducationDetails bool `json:"educational_details_completed"`
	ResearchCareer   bool `json:"research_career_completed"`
	CareerHighlights bool `json:"career_highlights_completed"`
	IsComplete       bool `json:"is_profile_complete"`
}

// NewTrackerStatusResponse maps the tracker row.
func NewTrackerStatusResponse(t *domain.ProfileTracker) TrackerStatusResponse {
	return TrackerStatusResponse{
		ProfileDetails:   t.ProfileDetails,
		EducationDetails: t.EducationDetails,
		ResearchCareer:   t.ResearchCareer,
		CareerHighlights: t.CareerHighlights,
		IsComplete:       t.IsComplete(),
	}
}
