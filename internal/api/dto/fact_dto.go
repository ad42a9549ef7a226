package dto

import (
	"time"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// EducationRequest payload.
type EducationRequest struct {
	Degree    string `json:"degree" validate:"required"`
	College   string `json:"college" validate:"required"`
	StartYear string `json:"start_year"`
	EndYear   string `json:"end_year"`
}

// EducationResponse mirrors one education row.
type EducationResponse struct {
	ID        string    `json:"id"`
	Degree    string    `json:"degree"`
	College   string    `json:"college"`
	StartYear string    `json:"start_year"`
	EndYear   string    `json:"end_year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEducationResponse(e *domain.Education) EducationResponse {
	return EducationResponse{
		ID:        e.ID,
		Degree:    e.Degree,
		College:   e.College,
		StartYear: e.StartYear,
		EndYear:   e.EndYear,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ResearchRequest payload.
type ResearchRequest struct {
	ResearchAreas string `json:"research_areas" validate:"required"`
}

// ResearchResponse mirrors one research-areas row.
type ResearchResponse struct {
	ID            string    `json:"id"`
	ResearchAreas string    `json:"research_areas"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewResearchResponse(r *domain.Research) ResearchResponse {
	return ResearchResponse{
		ID:            r.ID,
		ResearchAreas: r.ResearchAreas,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// ResearchIDRequest payload.
type ResearchIDRequest struct {
	ResearchTitle string  `json:"research_title" validate:"required"`
	ResearchLink  *string `json:"research_link"`
}

// ResearchIDResponse mirrors one research identifier row.
type ResearchIDResponse struct {
	ID            string    `json:"id"`
	ResearchTitle string    `json:"research_title"`
	ResearchLink  *string   `json:"research_link"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewResearchIDResponse(r *domain.ResearchID) ResearchIDResponse {
	return ResearchIDResponse{
		ID:            r.ID,
		ResearchTitle: r.ResearchTitle,
		ResearchLink:  r.ResearchLink,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FundingRequest payload.
type FundingRequest struct {
	ProjectTitle  string  `json:"project_title" validate:"required"`
	FundingAgency string  `json:"funding_agency" validate:"required"`
	MonthAndYear  string  `json:"funding_month_and_year"`
	Amount        float64 `json:"funding_amount" validate:"gte=0"`
	Status        string  `json:"funding_status"`
}

// FundingResponse mirrors one funding row.
type FundingResponse struct {
	ID            string    `json:"id"`
	ProjectTitle  string    `json:"project_title"`
	FundingAgency string    `json:"funding_agency"`
	MonthAndYear  string    `json:"funding_month_and_year"`
	Amount        float64   `json:"funding_amount"`
	Status        string    `json:"funding_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewFundingResponse(f *domain.Funding) FundingResponse {
	return FundingResponse{
		ID:            f.ID,
		ProjectTitle:  f.ProjectTitle,
		FundingAgency: f.FundingAgency,
		MonthAndYear:  f.MonthAndYear,
		Amount:        f.Amount,
		Status:        f.Status,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}

// PublicationRequest payload.
type PublicationRequest struct {
	Title        string `json:"publication_title" validate:"required"`
	Link         string `json:"publication_link"`
	Type         string `json:"publication_type"`
	MonthAndYear string `json:"publication_month_and_year"`
}

// PublicationResponse mirrors one publication row.
type PublicationResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"publication_title"`
	Link         string    `json:"publication_link"`
	Type         string    `json:"publication_type"`
	MonthAndYear string    `json:"publication_month_and_year"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewPublicationResponse(p *domain.Publication) PublicationResponse {
	return PublicationResponse{
		ID:           p.ID,
		Title:        p.Title,
		Link:         p.Link,
		Type:         p.Type,
		MonthAndYear: p.MonthAndYear,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// PositionRequest covers administration positions (year range) and honorary
// positions (single year).
type PositionRequest struct {
	Position string `json:"position" validate:"required"`
	YearFrom string `json:"year_from"`
	YearTo   string `json:"year_to"`
	Year     string `json:"year"`
}

// AdministrationPositionResponse mirrors one administration position row.
type AdministrationPositionResponse struct {
	ID        string    `json:"id"`
	Position  string    `json:"position"`
	YearFrom  string    `json:"year_from"`
	YearTo    string    `json:"year_to"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAdministrationPositionResponse(p *domain.AdministrationPosition) AdministrationPositionResponse {
	return AdministrationPositionResponse{
		ID:        p.ID,
		Position:  p.Position,
		YearFrom:  p.YearFrom,
		YearTo:    p.YearTo,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// HonoraryPositionResponse mirrors one honorary position row.
type HonoraryPositionResponse struct {
	ID        string    `json:"id"`
	Position  string    `json:"position"`
	Year      string    `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewHonoraryPositionResponse(p *domain.HonoraryPosition) HonoraryPositionResponse {
	return HonoraryPositionResponse{
		ID:        p.ID,
		Position:  p.Position,
		Year:      p.Year,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ConferenceRequest payload.
type ConferenceRequest struct {
	Title   string `json:"paper_title" validate:"required"`
	Details string `json:"conference_details"`
	Type    string `json:"conference_type"`
	ISBN    string `json:"isbn"`
	Year    string `json:"year"`
}

// ConferenceResponse mirrors one conference row.
type ConferenceResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"paper_title"`
	Details   string    `json:"conference_details"`
	Type      string    `json:"conference_type"`
	ISBN      string    `json:"isbn"`
	Year      string    `json:"year"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewConferenceResponse(c *domain.Conference) ConferenceResponse {
	return ConferenceResponse{
		ID:        c.ID,
		Title:     c.Title,
		Details:   c.Details,
		Type:      c.Type,
		ISBN:      c.ISBN,
		Year:      c.Year,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// PhdScholarRequest payload.
type PhdScholarRequest struct {
	ScholarName      string `json:"scholar_name" validate:"required"`
	Topic            string `json:"topic"`
	Status           string `json:"status" validate:"required"`
	YearOfCompletion string `json:"year_of_completion"`
}

// PhdScholarResponse mirrors one supervised scholar row.
type PhdScholarResponse struct {
	ID               string    `json:"id"`
	ScholarName      string    `json:"scholar_name"`
	Topic            string    `json:"topic"`
	Status           string    `json:"status"`
	YearOfCompletion string    `json:"year_of_completion"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func NewPhdScholarResponse(p *domain.PhdScholar) PhdScholarResponse {
	return PhdScholarResponse{
		ID:               p.ID,
		ScholarName:      p.ScholarName,
		Topic:            p.Topic,
		Status:           p.Status,
		YearOfCompletion: p.YearOfCompletion,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ResourcePersonRequest payload.
type ResourcePersonRequest struct {
	Topic      string `json:"topic" validate:"required"`
	Department string `json:"department"`
	Date       string `json:"date"`
}

// ResourcePersonResponse mirrors one invited-talk row.
type ResourcePersonResponse struct {
	ID         string    `json:"id"`
	Topic      string    `json:"topic"`
	Department string    `json:"department"`
	Date       string    `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewResourcePersonResponse(r *domain.ResourcePerson) ResourcePersonResponse {
	return ResourcePersonResponse{
		ID:         r.ID,
		Topic:      r.Topic,
		Department: r.Department,
		Date:       r.Date,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// NoteRequest is the shared payload for collaborations, consultancies,
// career highlights and research careers.
type NoteRequest struct {
	Details string `json:"details" validate:"required"`
}

// NoteResponse mirrors one single-field note row.
type NoteResponse struct {
	ID        string    `json:"id"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewNoteResponse(n *domain.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Details:   n.Details,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
