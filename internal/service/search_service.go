package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/repository"
)

// SearchService performs the public faculty search: a stateless per-request
// scan over staff profiles and their fact rows. No index is maintained.
type SearchService struct {
	users repository.UserRepository
	staff repository.StaffDetailsRepository
	facts FactRepositories
}

// NewSearchService constructs the service.
func NewSearchService(users repository.UserRepository, staff repository.StaffDetailsRepository, facts FactRepositories) *SearchService {
	return &SearchService{users: users, staff: staff, facts: facts}
}

// SearchResult is one matching staff member. MatchedFields lists the
// categories the query hit, at most once per category; ResearchAreas is the
// flattened, deduplicated tag list for display.
type SearchResult struct {
	Slug          string   `json:"slug"`
	Prefix        string   `json:"prefix"`
	Name          string   `json:"name"`
	Department    string   `json:"department"`
	Email         string   `json:"email"`
	PictureURL    *string  `json:"profile_picture"`
	MatchedFields []string `json:"matched_fields"`
	ResearchAreas []string `json:"research_areas"`
}

// Search scans every staff member passing the department filter for
// case-insensitive substring matches of query against profile and fact
// fields. Empty query with empty department fails closed to no results.
func (s *SearchService) Search(ctx context.Context, query, department string) ([]SearchResult, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	department = strings.TrimSpace(department)
	if needle == "" && department == "" {
		return []SearchResult{}, nil
	}

	var (
		staffList []domain.StaffDetails
		err       error
	)
	if department == "" {
		staffList, err = s.staff.List(ctx)
	} else {
		staffList, err = s.staff.ListByDepartment(ctx, department)
	}
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(staffList))
	for i := range staffList {
		result, matched, err := s.evaluate(ctx, &staffList[i], needle)
		if err != nil {
			return nil, err
		}
		if matched {
			results = append(results, *result)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return strings.ToLower(results[i].Name) < strings.ToLower(results[j].Name)
	})
	return results, nil
}

func (s *SearchService) evaluate(ctx context.Context, details *domain.StaffDetails, needle string) (*SearchResult, bool, error) {
	user, err := s.users.GetByID(ctx, details.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	facts, err := s.facts.Collect(ctx, details.UserID)
	if err != nil {
		return nil, false, err
	}

	result := &SearchResult{
		Prefix:        details.Prefix,
		Name:          details.Name,
		Department:    details.Department,
		Email:         user.Email,
		PictureURL:    details.PictureURL,
		ResearchAreas: flattenResearchAreas(facts.Researches),
	}
	if user.Slug != nil {
		result.Slug = *user.Slug
	}

	// Department-only search includes the whole department with no
	// matched-field annotations.
	if needle == "" {
		return result, true, nil
	}

	m := matcher{needle: needle}
	m.category("Profile Details",
		details.DisplayName(), user.Email, details.Department, details.Phone, details.Address)
	for _, e := range facts.Educations {
		m.category("Education", e.Degree, e.College)
	}
	for _, r := range facts.Researches {
		m.category("Research Areas", r.ResearchAreas)
	}
	for _, r := range facts.ResearchIDs {
		m.category("Research IDs", r.ResearchTitle)
	}
	for _, f := range facts.Fundings {
		m.category("Funding", f.ProjectTitle, f.FundingAgency)
	}
	for _, p := range facts.Publications {
		m.category("Publications", p.Title, p.Type)
	}
	for _, p := range facts.AdministrationPositions {
		m.category("Administration Positions", p.Position)
	}
	for _, p := range facts.HonoraryPositions {
		m.category("Honorary Positions", p.Position)
	}
	for _, c := range facts.Conferences {
		m.category("Conferences", c.Title, c.Details, c.Type)
	}
	for _, p := range facts.PhdScholars {
		m.category("PhD Scholars", p.ScholarName, p.Topic)
	}
	for _, r := range facts.ResourcePersons {
		m.category("Resource Person", r.Topic, r.Department)
	}
	for _, n := range facts.Collaborations {
		m.category("Collaborations", n.Details)
	}
	for _, n := range facts.Consultancies {
		m.category("Consultancies", n.Details)
	}
	for _, n := range facts.CareerHighlights {
		m.category("Career Highlights", n.Details)
	}
	for _, n := range facts.ResearchCareers {
		m.category("Research Career", n.Details)
	}

	if len(m.labels) == 0 {
		return nil, false, nil
	}
	result.MatchedFields = m.labels
	return result, true, nil
}

// matcher accumulates matched category labels, deduplicated in first-hit
// order.
type matcher struct {
	needle string
	labels []string
	seen   map[string]struct{}
}

func (m *matcher) category(label string, fields ...string) {
	if m.seen == nil {
		m.seen = make(map[string]struct{})
	}
	if _, ok := m.seen[label]; ok {
		return
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), m.needle) {
			m.seen[label] = struct{}{}
			m.labels = append(m.labels, label)
			return
		}
	}
}

// flattenResearchAreas splits every comma-separated research-areas value
// into individual tags, deduplicated case-insensitively in first-seen order.
func flattenResearchAreas(researches []domain.Research) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, r := range researches {
		for _, part := range strings.Split(r.ResearchAreas, ",") {
			tag := strings.TrimSpace(part)
			if tag == "" {
				continue
			}
			key := strings.ToLower(tag)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}
