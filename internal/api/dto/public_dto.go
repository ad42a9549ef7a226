package dto

import (
	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/service"
)

// FactsResponse aggregates every fact list of one profile.
type FactsResponse struct {
	Educations              []EducationResponse              `json:"educations"`
	Researches              []ResearchResponse               `json:"researches"`
	ResearchIDs             []ResearchIDResponse             `json:"research_ids"`
	Fundings                []FundingResponse                `json:"fundings"`
	Publications            []PublicationResponse            `json:"publications"`
	AdministrationPositions []AdministrationPositionResponse `json:"administration_positions"`
	HonoraryPositions       []HonoraryPositionResponse       `json:"honorary_positions"`
	Conferences             []ConferenceResponse             `json:"conferences"`
	PhdScholars             []PhdScholarResponse             `json:"phd_scholars"`
	ResourcePersons         []ResourcePersonResponse         `json:"resource_persons"`
	Collaborations          []NoteResponse                   `json:"collaborations"`
	Consultancies           []NoteResponse                   `json:"consultancies"`
	CareerHighlights        []NoteResponse                   `json:"career_highlights"`
	ResearchCareers         []NoteResponse                   `json:"research_careers"`
}

// NewFactsResponse maps the aggregated fact rows.
func NewFactsResponse(f *domain.ProfileFacts) FactsResponse {
	resp := FactsResponse{
		Educations:              make([]EducationResponse, 0, len(f.Educations)),
		Researches:              make([]ResearchResponse, 0, len(f.Researches)),
		ResearchIDs:             make([]ResearchIDResponse, 0, len(f.ResearchIDs)),
		Fundings:                make([]FundingResponse, 0, len(f.Fundings)),
		Publications:            make([]PublicationResponse, 0, len(f.Publications)),
		AdministrationPositions: make([]AdministrationPositionResponse, 0, len(f.AdministrationPositions)),
		HonoraryPositions:       make([]HonoraryPositionResponse, 0, len(f.HonoraryPositions)),
		Conferences:             make([]ConferenceResponse, 0, len(f.Conferences)),
		PhdScholars:             make([]PhdScholarResponse, 0, len(f.PhdScholars)),
		ResourcePersons:         make([]ResourcePersonResponse, 0, len(f.ResourcePersons)),
		Collaborations:          make([]NoteResponse, 0, len(f.Collaborations)),
		Consultancies:           make([]NoteResponse, 0, len(f.Consultancies)),
		CareerHighlights:        make([]NoteResponse, 0, len(f.CareerHighlights)),
		ResearchCareers:         make([]NoteResponse, 0, len(f.ResearchCareers)),
	}
	for i := range f.Educations {
		resp.Educations = append(resp.Educations, NewEducationResponse(&f.Educations[i]))
	}
	for i := range f.Researches {
		resp.Researches = append(resp.Researches, NewResearchResponse(&f.Researches[i]))
	}
	for i := range f.ResearchIDs {
		resp.ResearchIDs = append(resp.ResearchIDs, NewResearchIDResponse(&f.ResearchIDs[i]))
	}
	for i := range f.Fundings {
		resp.Fundings = append(resp.Fundings, NewFundingResponse(&f.Fundings[i]))
	}
	for i := range f.Publications {
		resp.Publications = append(resp.Publications, NewPublicationResponse(&f.Publications[i]))
	}
	for i := range f.AdministrationPositions {
		resp.AdministrationPositions = append(resp.AdministrationPositions, NewAdministrationPositionResponse(&f.AdministrationPositions[i]))
	}
	for i := range f.HonoraryPositions {
		resp.HonoraryPositions = append(resp.HonoraryPositions, NewHonoraryPositionResponse(&f.HonoraryPositions[i]))
	}
	for i := range f.Conferences {
		resp.Conferences = append(resp.Conferences, NewConferenceResponse(&f.Conferences[i]))
	}
	for i := range f.PhdScholars {
		resp.PhdScholars = append(resp.PhdScholars, NewPhdScholarResponse(&f.PhdScholars[i]))
	}
	for i := range f.ResourcePersons {
		resp.ResourcePersons = append(resp.ResourcePersons, NewResourcePersonResponse(&f.ResourcePersons[i]))
	}
	for i := range f.Collaborations {
		resp.Collaborations = append(resp.Collaborations, NewNoteResponse(&f.Collaborations[i]))
	}
	for i := range f.Consultancies {
		resp.Consultancies = append(resp.Consultancies, NewNoteResponse(&f.Consultancies[i]))
	}
	for i := range f.CareerHighlights {
		resp.CareerHighlights = append(resp.CareerHighlights, NewNoteResponse(&f.CareerHighlights[i]))
	}
	for i := range f.ResearchCareers {
		resp.ResearchCareers = append(resp.ResearchCareers, NewNoteResponse(&f.ResearchCareers[i]))
	}
	return resp
}

// PublicProfileResponse is the released payload for a complete profile.
type PublicProfileResponse struct {
	Slug       string               `json:"slug"`
	Email      string               `json:"email"`
	Details    StaffDetailsResponse `json:"details"`
	IsComplete bool                 `json:"is_profile_complete"`
	ViewCount  int64                `json:"view_count"`
	Facts      FactsResponse        `json:"facts"`
}

// NewPublicProfileResponse maps the service payload, substituting the
// absolute picture URL resolved by the service.
func NewPublicProfileResponse(p *service.PublicProfile) PublicProfileResponse {
	details := NewStaffDetailsResponse(p.Details)
	details.PictureURL = p.PictureURL
	return PublicProfileResponse{
		Slug:       p.Slug,
		Email:      p.Email,
		Details:    details,
		IsComplete: p.IsComplete,
		ViewCount:  p.ViewCount,
		Facts:      NewFactsResponse(p.Facts),
	}
}
