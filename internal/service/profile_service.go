package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/repository"
)

// ProfileService handles staff self-service writes: the staff-details upsert
// and CRUD over every fact section. Each successful write of a tracked
// section feeds the completion tracker.
type ProfileService struct {
	users              repository.UserRepository
	staff              repository.StaffDetailsRepository
	facts              FactRepositories
	tracker            *TrackerService
	defaultInstitution string
}

// ProfileDependencies bundles the profile service requirements.
type ProfileDependencies struct {
	UserRepo           repository.UserRepository
	StaffRepo          repository.StaffDetailsRepository
	Facts              FactRepositories
	Tracker            *TrackerService
	DefaultInstitution string
}

// NewProfileService constructs the service.
func NewProfileService(deps ProfileDependencies) *ProfileService {
	return &ProfileService{
		users:              deps.UserRepo,
		staff:              deps.StaffRepo,
		facts:              deps.Facts,
		tracker:            deps.Tracker,
		defaultInstitution: deps.DefaultInstitution,
	}
}

// StaffDetailsInput describes the staff-details upsert payload.
type StaffDetailsInput struct {
	Prefix          string
	Name            string
	Department      string
	DepartmentOrder int
	Institution     string
	Phone           string
	Address         string
	Website         *string
	PictureURL      *string
}

// UpsertStaffDetails creates or replaces the caller's profile record. The
// first successful upsert also assigns the user's public slug and marks the
// profile-details section complete.
func (s *ProfileService) UpsertStaffDetails(ctx context.Context, user *domain.User, input StaffDetailsInput) (*domain.StaffDetails, error) {
	institution := input.Institution
	if institution == "" {
		institution = s.defaultInstitution
	}

	details := &domain.StaffDetails{
		UserID:          user.ID,
		Prefix:          input.Prefix,
		Name:            input.Name,
		Department:      input.Department,
		DepartmentOrder: input.DepartmentOrder,
		Institution:     institution,
		Phone:           input.Phone,
		Address:         input.Address,
		Website:         input.Website,
		PictureURL:      input.PictureURL,
	}
	if err := s.staff.Upsert(ctx, details); err != nil {
		return nil, err
	}

	if user.Slug == nil || *user.Slug == "" {
		slug, err := s.generateSlug(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		user.Slug = &slug
		if err := s.users.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if err := s.tracker.MarkSectionComplete(ctx, user.ID, domain.SectionProfileDetails); err != nil {
		return nil, err
	}
	return details, nil
}

// GetStaffDetails returns the caller's profile record.
func (s *ProfileService) GetStaffDetails(ctx context.Context, userID string) (*domain.StaffDetails, error) {
	return s.staff.GetByUserID(ctx, userID)
}

// generateSlug derives a URL-safe slug from the display name, suffixing a
// short random token when the plain form is taken.
func (s *ProfileService) generateSlug(ctx context.Context, name string) (string, error) {
	base := slugify(name)
	if base == "" {
		base = "staff"
	}

	taken, err := s.users.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}
	return base + "-" + uuid.NewString()[:8], nil
}

func slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ListEducations returns the caller's education rows.
func (s *ProfileService) ListEducations(ctx context.Context, userID string) ([]domain.Education, error) {
	return s.facts.Educations.ListByUser(ctx, userID)
}

// CreateEducation adds an education row and marks the section complete.
func (s *ProfileService) CreateEducation(ctx context.Context, userID string, edu *domain.Education) error {
	edu.UserID = userID
	if err := s.facts.Educations.Create(ctx, edu); err != nil {
		return err
	}
	return s.tracker.MarkSectionComplete(ctx, userID, domain.SectionEducation)
}

// UpdateEducation updates an owned education row.
func (s *ProfileService) UpdateEducation(ctx context.Context, userID string, edu *domain.Education) error {
	edu.UserID = userID
	if err := s.facts.Educations.Update(ctx, edu); err != nil {
		return err
	}
	return s.tracker.MarkSectionComplete(ctx, userID, domain.SectionEducation)
}

// DeleteEducation removes an owned education row and applies the configured
// incomplete policy.
func (s *ProfileService) DeleteEducation(ctx context.Context, userID, id string) error {
	if err := s.facts.Educations.Delete(ctx, id, userID); err != nil {
		return err
	}
	return s.tracker.MarkSectionIncomplete(ctx, userID, domain.SectionEducation)
}

// ListResearches returns the caller's research-area rows.
func (s *ProfileService) ListResearches(ctx context.Context, userID string) ([]domain.Research, error) {
	return s.facts.Researches.ListByUser(ctx, userID)
}

func (s *ProfileService) CreateResearch(ctx context.Context, userID string, research *domain.Research) error {
	research.UserID = userID
	return s.facts.Researches.Create(ctx, research)
}

func (s *ProfileService) UpdateResearch(ctx context.Context, userID string, research *domain.Research) error {
	research.UserID = userID
	return s.facts.Researches.Update(ctx, research)
}

func (s *ProfileService) DeleteResearch(ctx context.Context, userID, id string) error {
	return s.facts.Researches.Delete(ctx, id, userID)
}

// ListResearchIDs returns the caller's research identifier rows.
func (s *ProfileService) ListResearchIDs(ctx context.Context, userID string) ([]domain.ResearchID, error) {
	return s.facts.ResearchIDs.ListByUser(ctx, userID)
}

func (s *ProfileService) CreateResearchID(ctx context.Context, userID string, rid *domain.ResearchID) error {
	rid.UserID = userID
	return s.facts.ResearchIDs.Create(ctx, rid)
}

func (s *ProfileService) UpdateResearchID(ctx context.Context, userID string, rid *domain.ResearchID) error {
	rid.UserID = userID
	return s.facts.ResearchIDs.Update(ctx, rid)
}

func (s *ProfileService) DeleteResearchID(ctx context.Context, userID, id string) error {
	return s.facts.ResearchIDs.Delete(ctx, id, userID)
}

// ListFundings returns the caller's funding rows.
func (s *ProfileService) ListFundings(ctx context.Context, userID string) ([]domain.Funding, error) {
	return s.facts.Fundings.ListByUser(ctx, userID)
}

func (s *ProfileService) CreateFunding(ctx context.Context, userID string, funding *domain.Funding) error {
	funding.UserID = userID
	return s.facts.Fundings.Create(ctx, funding)
}

func (s *ProfileService) UpdateFunding(ctx context.Context, userID string, funding *domain.Funding) error {
	funding.UserID = userID
	return s.facts.Fundings.Update(ctx, funding)
}

func (s *ProfileService) DeleteFunding(ctx context.Context, userID, id string) error {
	return s.facts.Fundings.Delete(ctx, id, userID)
}

// ListPublications returns the caller's publication rows.
func (s *ProfileService) ListPublications(ctx context.Context, userID string) ([]domain.Publication, error) {
	return s.facts.Publications.ListByUser(ctx, userID)
}

func (s *ProfileService) CreatePublication(ctx context.Context, userID string, pub *domain.Publication) error {
	pub.UserID = userID
	return s.facts.Publications.Create(ctx, pub)
}

func (s *ProfileService) UpdatePublication(ctx context.Context, userID string, pub *domain.Publication) error {
	pub.UserID = userID
	return s.facts.Publications.Update(ctx, pub)
}

func (s *ProfileService) DeletePublication(ctx context.Context, userID, id string) error {
	return s.facts.Publications.Delete(ctx, id, userID)
}

// ListAdministrationPositions returns the caller's administration positions.
func (s *ProfileService) ListAdministrationPositions(ctx context.Context, userID string) ([]domain.AdministrationPosition, error) {
	return s.facts.AdminPositions.ListByUser(ctx, userID)
}

func (s *ProfileService) CreateAdministrationPosition(ctx context.Context, userID string, pos *domain.AdministrationPosition) error {
	pos.UserID = userID
	return s.facts.AdminPositions.Create(ctx, pos)
}

func (s *ProfileService) UpdateAdministrationPosition(ctx context.Context, userID string, pos *domain.AdministrationPosition) error {
	pos.UserID = userID
	return s.facts.AdminPositions.Update(ctx, pos)
}

func (s *ProfileService) DeleteAdministrationPosition(ctx context.Context, userID, id string) error {
	return s.facts.AdminPositions.Delete(ctx, id, userID)
}

// ListHonoraryPositions returns the caller's honorary positions.
func (s *ProfileService) ListHonoraryPositions(ctx context.Context, userID string) ([]domain.HonoraryPosition, error) {
	return s.facts.HonoraryPositions.ListByUser(ctx, userID)
}

func (s *ProfileService) CreateHonoraryPosition(ctx context.Context, userID string, pos *domain.HonoraryPosition) error {
	pos.UserID = userID
	return s.facts.HonoraryPositions.Create(ctx, pos)
}

func (s *ProfileService) UpdateHonoraryPosition(ctx context.Context, userID string, pos *domain.HonoraryPosition) error {
	pos.UserID = userID
	return s.facts.HonoraryPositions.Update(ctx, pos)
}

func (s *ProfileService) DeleteHonoraryPosition(ctx context.Context, userID, id string) error {
	return s.facts.HonoraryPositions.Delete(ctx, id, userID)
}

// ListConferences returns the caller's conference rows.
func (s *ProfileService) ListConferences(ctx context.Context, userID string) ([]domain.Conference, error) {
	return s.facts.Conferences.ListByUser(ctx, userID)
}

func (s *ProfileService) CreateConference(ctx context.Context, userID string, conf *domain.Conference) error {
	conf.UserID = userID
	return s.facts.Conferences.Create(ctx, conf)
}

func (s *ProfileService) UpdateConference(ctx context.Context, userID string, conf *domain.Conference) error {
	conf.UserID = userID
	return s.facts.Conferences.Update(ctx, conf)
}

func (s *ProfileService) DeleteConference(ctx context.Context, userID, id string) error {
	return s.facts.Conferences.Delete(ctx, id, userID)
}

// ListPhdScholars returns the caller's supervised scholars.
func (s *ProfileService) ListPhdScholars(ctx context.Context, userID string) ([]domain.PhdScholar, error) {
	return s.facts.PhdScholars.ListByUser(ctx, userID)
}

func (s *ProfileService) CreatePhdScholar(ctx context.Context, userID string, phd *domain.PhdScholar) error {
	phd.UserID = userID
	return s.facts.PhdScholars.Create(ctx, phd)
}

func (s *ProfileService) UpdatePhdScholar(ctx context.Context, userID string, phd *domain.PhdScholar) error {
	phd.UserID = userID
	return s.facts.PhdScholars.Update(ctx, phd)
}

func (s *ProfileService) DeletePhdScholar(ctx context.Context, userID, id string) error {
	return s.facts.PhdScholars.Delete(ctx, id, userID)
}

// ListResourcePersons returns the caller's invited-talk rows.
func (s *ProfileService) ListResourcePersons(ctx context.Context, userID string) ([]domain.ResourcePerson, error) {
	return s.facts.ResourcePersons.ListByUser(ctx, userID)
}

func (s *ProfileService) CreateResourcePerson(ctx context.Context, userID string, rp *domain.ResourcePerson) error {
	rp.UserID = userID
	return s.facts.ResourcePersons.Create(ctx, rp)
}

func (s *ProfileService) UpdateResourcePerson(ctx context.Context, userID string, rp *domain.ResourcePerson) error {
	rp.UserID = userID
	return s.facts.ResourcePersons.Update(ctx, rp)
}

func (s *ProfileService) DeleteResourcePerson(ctx context.Context, userID, id string) error {
	return s.facts.ResourcePersons.Delete(ctx, id, userID)
}

// ListNotes returns the caller's rows for a single-field note section
// (collaboration, consultancy, career highlight, research career).
func (s *ProfileService) ListNotes(ctx context.Context, userID string, section domain.Section) ([]domain.Note, error) {
	repo, err := s.facts.NoteRepo(section)
	if err != nil {
		return nil, err
	}
	return repo.ListByUser(ctx, userID)
}

// CreateNote adds a note row; tracked sections also mark complete.
func (s *ProfileService) CreateNote(ctx context.Context, userID string, section domain.Section, details string) (*domain.Note, error) {
	repo, err := s.facts.NoteRepo(section)
	if err != nil {
		return nil, err
	}
	note := &domain.Note{UserID: userID, Details: details}
	if err := repo.Create(ctx, note); err != nil {
		return nil, err
	}
	if err := s.tracker.MarkSectionComplete(ctx, userID, section); err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote updates an owned note row; tracked sections also mark complete.
func (s *ProfileService) UpdateNote(ctx context.Context, userID string, section domain.Section, id, details string) (*domain.Note, error) {
	repo, err := s.facts.NoteRepo(section)
	if err != nil {
		return nil, err
	}
	note := &domain.Note{ID: id, UserID: userID, Details: details}
	if err := repo.Update(ctx, note); err != nil {
		return nil, err
	}
	if err := s.tracker.MarkSectionComplete(ctx, userID, section); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes an owned note row and applies the incomplete policy.
func (s *ProfileService) DeleteNote(ctx context.Context, userID string, section domain.Section, id string) error {
	repo, err := s.facts.NoteRepo(section)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, id, userID); err != nil {
		return err
	}
	return s.tracker.MarkSectionIncomplete(ctx, userID, section)
}
