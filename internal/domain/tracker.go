package domain

import "time"

// ProfileTracker keeps the per-user completion flags and the public view
// counter. IsComplete is always derived from the four flags, never stored.
type ProfileTracker struct {
	ID               string
	UserID           string
	ProfileDetails   bool
	EducationDetails bool
	ResearchCareer   bool
	CareerHighlights bool
	ViewCount        int64
	UpdatedAt        time.Time
}

// IsComplete is true only when every tracked section is complete.
func (t *ProfileTracker) IsComplete() bool {
	return t.ProfileDetails && t.EducationDetails && t.ResearchCareer && t.CareerHighlights
}

// SectionFlag returns the completion flag for a tracked section.
func (t *ProfileTracker) SectionFlag(section Section) bool {
	switch section {
	case SectionProfileDetails:
		return t.ProfileDetails
	case SectionEducation:
		return t.EducationDetails
	case SectionResearchCareer:
		return t.ResearchCareer
	case SectionCareerHighlight:
		return t.CareerHighlights
	}
	return false
}
