package service

import (
	"context"
	"fmt"

	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/repository"
)

// FactRepositories bundles every fact-table repository. Services that need
// the whole profile (public view, search, export) take the bundle instead of
// fourteen constructor arguments.
type FactRepositories struct {
	Educations        repository.EducationRepository
	Researches        repository.ResearchRepository
	ResearchIDs       repository.ResearchIDRepository
	Fundings          repository.FundingRepository
	Publications      repository.PublicationRepository
	AdminPositions    repository.AdministrationPositionRepository
	HonoraryPositions repository.HonoraryPositionRepository
	Conferences       repository.ConferenceRepository
	PhdScholars       repository.PhdRepository
	ResourcePersons   repository.ResourcePersonRepository
	Collaborations    repository.NoteRepository
	Consultancies     repository.NoteRepository
	CareerHighlights  repository.NoteRepository
	ResearchCareers   repository.NoteRepository
}

// NoteRepo resolves the repository backing a single-field note section.
func (f FactRepositories) NoteRepo(section domain.Section) (repository.NoteRepository, error) {
	switch section {
	case domain.SectionCollaboration:
		return f.Collaborations, nil
	case domain.SectionConsultancy:
		return f.Consultancies, nil
	case domain.SectionCareerHighlight:
		return f.CareerHighlights, nil
	case domain.SectionResearchCareer:
		return f.ResearchCareers, nil
	}
	return nil, fmt.Errorf("section %q has no note repository", section)
}

// Collect loads every fact row owned by one user.
func (f FactRepositories) Collect(ctx context.Context, userID string) (*domain.ProfileFacts, error) {
	var (
		facts domain.ProfileFacts
		err   error
	)

	if facts.Educations, err = f.Educations.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.Researches, err = f.Researches.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.ResearchIDs, err = f.ResearchIDs.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.Fundings, err = f.Fundings.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.Publications, err = f.Publications.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.AdministrationPositions, err = f.AdminPositions.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.HonoraryPositions, err = f.HonoraryPositions.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.Conferences, err = f.Conferences.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.PhdScholars, err = f.PhdScholars.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.ResourcePersons, err = f.ResourcePersons.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.Collaborations, err = f.Collaborations.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.Consultancies, err = f.Consultancies.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.CareerHighlights, err = f.CareerHighlights.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if facts.ResearchCareers, err = f.ResearchCareers.ListByUser(ctx, userID); err != nil {
		return nil, err
	}

	return &facts, nil
}
