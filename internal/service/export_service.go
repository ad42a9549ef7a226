package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/repository"
	apperrors "github.com/spec-kit/faculty-service/pkg/util"
)

// exportCollector loads one section's rows for one user.
type exportCollector func(ctx context.Context, userID string) (any, error)

// ExportService assembles a bulk data export over a caller-chosen set of
// section tags. The tags form a closed registry; unknown tags are rejected
// up front rather than silently skipped.
type ExportService struct {
	users    repository.UserRepository
	staff    repository.StaffDetailsRepository
	registry map[domain.Section]exportCollector
	order    []domain.Section
}

// NewExportService constructs the service with every known section
// registered.
func NewExportService(users repository.UserRepository, staff repository.StaffDetailsRepository, facts FactRepositories) *ExportService {
	s := &ExportService{
		users:    users,
		staff:    staff,
		registry: make(map[domain.Section]exportCollector),
	}

	s.register(domain.SectionProfileDetails, func(ctx context.Context, userID string) (any, error) {
		details, err := staff.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil
			}
			return nil, err
		}
		return details, nil
	})
	s.register(domain.SectionEducation, listCollector(facts.Educations.ListByUser))
	s.register(domain.SectionResearch, listCollector(facts.Researches.ListByUser))
	s.register(domain.SectionResearchID, listCollector(facts.ResearchIDs.ListByUser))
	s.register(domain.SectionFunding, listCollector(facts.Fundings.ListByUser))
	s.register(domain.SectionPublication, listCollector(facts.Publications.ListByUser))
	s.register(domain.SectionAdministrationPosition, listCollector(facts.AdminPositions.ListByUser))
	s.register(domain.SectionHonoraryPosition, listCollector(facts.HonoraryPositions.ListByUser))
	s.register(domain.SectionConference, listCollector(facts.Conferences.ListByUser))
	s.register(domain.SectionPhd, listCollector(facts.PhdScholars.ListByUser))
	s.register(domain.SectionResourcePerson, listCollector(facts.ResourcePersons.ListByUser))
	s.register(domain.SectionCollaboration, listCollector(facts.Collaborations.ListByUser))
	s.register(domain.SectionConsultancy, listCollector(facts.Consultancies.ListByUser))
	s.register(domain.SectionCareerHighlight, listCollector(facts.CareerHighlights.ListByUser))
	s.register(domain.SectionResearchCareer, listCollector(facts.ResearchCareers.ListByUser))

	return s
}

func (s *ExportService) register(section domain.Section, collector exportCollector) {
	s.registry[section] = collector
	s.order = append(s.order, section)
}

func listCollector[T any](list func(ctx context.Context, userID string) ([]T, error)) exportCollector {
	return func(ctx context.Context, userID string) (any, error) {
		return list(ctx, userID)
	}
}

// UserExport is one user's exported data keyed by section tag.
type UserExport struct {
	Email    string         `json:"email"`
	Slug     string         `json:"slug"`
	Sections map[string]any `json:"sections"`
}

// Export collects the requested sections for every user. An empty selection
// means every registered section; an unknown tag fails validation.
func (s *ExportService) Export(ctx context.Context, sections []string) ([]UserExport, error) {
	selected, err := s.resolveSections(sections)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]UserExport, 0, len(users))
	for i := range users {
		entry := UserExport{
			Email:    users[i].Email,
			Sections: make(map[string]any, len(selected)),
		}
		if users[i].Slug != nil {
			entry.Slug = *users[i].Slug
		}
		for _, section := range selected {
			data, err := s.registry[section](ctx, users[i].ID)
			if err != nil {
				return nil, err
			}
			entry.Sections[string(section)] = data
		}
		result = append(result, entry)
	}
	return result, nil
}

func (s *ExportService) resolveSections(sections []string) ([]domain.Section, error) {
	if len(sections) == 0 {
		return s.order, nil
	}

	var unknown []string
	selected := make([]domain.Section, 0, len(sections))
	seen := make(map[domain.Section]struct{})
	for _, tag := range sections {
		section := domain.Section(tag)
		if _, ok := s.registry[section]; !ok {
			unknown = append(unknown, tag)
			continue
		}
		if _, dup := seen[section]; dup {
			continue
		}
		seen[section] = struct{}{}
		selected = append(selected, section)
	}
	if len(unknown) > 0 {
		return nil, apperrors.NewValidationError("unknown export sections", map[string]any{
			"unknown_sections": unknown,
		})
	}
	return selected, nil
}
