package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/faculty-service/internal/auth"
	"github.com/spec-kit/faculty-service/internal/config"
	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/events"
	"github.com/spec-kit/faculty-service/internal/repository"
	apperrors "github.com/spec-kit/faculty-service/pkg/util"
)

// departmentOverall is the dashboard filter value meaning no filter.
const departmentOverall = "Overall"

// AdminService covers account provisioning and the aggregate reporting the
// admin dashboard consumes.
type AdminService struct {
	users      repository.UserRepository
	staff      repository.StaffDetailsRepository
	facts      FactRepositories
	dispatcher events.Dispatcher
	directory  config.DirectoryConfig
	bcryptCost int
}

// AdminDependencies bundles the admin service requirements.
type AdminDependencies struct {
	UserRepo   repository.UserRepository
	StaffRepo  repository.StaffDetailsRepository
	Facts      FactRepositories
	Dispatcher events.Dispatcher
	Directory  config.DirectoryConfig
	BcryptCost int
}

// NewAdminService constructs the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	return &AdminService{
		users:      deps.UserRepo,
		staff:      deps.StaffRepo,
		facts:      deps.Facts,
		dispatcher: deps.Dispatcher,
		directory:  deps.Directory,
		bcryptCost: deps.BcryptCost,
	}
}

// ListUsers returns every account.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// BulkCreateUsers provisions accounts from newline-separated emails. Every
// email must carry the institutional domain and be new; any offender fails
// the whole batch with the offenders named, and nothing is created.
func (s *AdminService) BulkCreateUsers(ctx context.Context, actorID, emailsText string, role domain.Role) ([]domain.User, error) {
	if strings.TrimSpace(emailsText) == "" {
		return nil, apperrors.NewValidationError("please provide emails", nil)
	}

	var emails []string
	for _, line := range strings.Split(emailsText, "\n") {
		if email := strings.TrimSpace(line); email != "" {
			emails = append(emails, email)
		}
	}
	if len(emails) == 0 {
		return nil, apperrors.NewValidationError("please enter at least one valid email address", nil)
	}

	var invalid []string
	for _, email := range emails {
		if !strings.HasSuffix(email, s.directory.AllowedEmailDomain) || strings.Count(email, "@") != 1 {
			invalid = append(invalid, email)
		}
	}
	if len(invalid) > 0 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("invalid emails: %s. All emails must end with %s",
				strings.Join(invalid, ", "), s.directory.AllowedEmailDomain),
			map[string]any{"invalid_emails": invalid})
	}

	existing, err := s.users.ExistingEmails(ctx, emails)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("these emails already exist: %s", strings.Join(existing, ", ")),
			map[string]any{"existing_emails": existing})
	}

	hash, err := auth.HashPassword(s.directory.DefaultPassword, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	created := make([]*domain.User, 0, len(emails))
	for _, email := range emails {
		created = append(created, &domain.User{
			Email:           email,
			PasswordHash:    hash,
			PasswordChanged: false,
			Role:            role,
			Active:          true,
		})
	}
	if err := s.users.CreateBulk(ctx, created); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventUsersProvisioned, actorID, "", map[string]any{
			"count": len(created),
			"role":  string(role),
		}))
	}

	result := make([]domain.User, 0, len(created))
	for _, u := range created {
		result = append(result, *u)
	}
	return result, nil
}

// DeleteUser removes an account; the store cascades its fact rows.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// ResetPassword restores a non-admin account to the provisioned default.
// Admin targets are forbidden, and accounts still on the default have
// nothing to reset.
func (s *AdminService) ResetPassword(ctx context.Context, id string) error {
	target, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if target.IsAdmin() {
		return apperrors.NewForbidden("cannot reset an admin password")
	}
	if !target.PasswordChanged {
		return apperrors.NewValidationError("user has not changed the default password", nil)
	}

	hash, err := auth.HashPassword(s.directory.DefaultPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	target.PasswordHash = hash
	target.PasswordChanged = false
	return s.users.Update(ctx, target)
}

// staffDirectory preloads staff details and slugs keyed by user id so the
// listing endpoints resolve names without a query per row.
type staffDirectory struct {
	details map[string]*domain.StaffDetails
	users   map[string]*domain.User
}

func (s *AdminService) loadDirectory(ctx context.Context) (*staffDirectory, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	details, err := s.staff.List(ctx)
	if err != nil {
		return nil, err
	}

	dir := &staffDirectory{
		details: make(map[string]*domain.StaffDetails, len(details)),
		users:   make(map[string]*domain.User, len(users)),
	}
	for i := range users {
		dir.users[users[i].ID] = &users[i]
	}
	for i := range details {
		dir.details[details[i].UserID] = &details[i]
	}
	return dir, nil
}

func (d *staffDirectory) name(userID string) string {
	if details, ok := d.details[userID]; ok {
		return strings.TrimSpace(details.DisplayName())
	}
	if user, ok := d.users[userID]; ok {
		return user.Email
	}
	return ""
}

func (d *staffDirectory) department(userID string) string {
	if details, ok := d.details[userID]; ok {
		return details.Department
	}
	return "N/A"
}

func (d *staffDirectory) slug(userID string) string {
	if user, ok := d.users[userID]; ok && user.Slug != nil {
		return *user.Slug
	}
	return ""
}

// PhdSupervisionCount is one staff member's supervision tally.
type PhdSupervisionCount struct {
	Slug       string `json:"slug"`
	StaffName  string `json:"staffName"`
	Department string `json:"department"`
	Registered int64  `json:"phdScholarsRegistered"`
	Produced   int64  `json:"phdScholarsProduced"`
}

// PhdScholarsCount tallies registered and produced scholars per supervisor,
// omitting staff with no supervisions.
func (s *AdminService) PhdScholarsCount(ctx context.Context) ([]PhdSupervisionCount, error) {
	dir, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	scholars, err := s.facts.PhdScholars.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type tally struct{ registered, produced int64 }
	counts := make(map[string]*tally)
	var order []string
	for _, scholar := range scholars {
		t, ok := counts[scholar.UserID]
		if !ok {
			t = &tally{}
			counts[scholar.UserID] = t
			order = append(order, scholar.UserID)
		}
		if scholar.Status == domain.PhdStatusCompleted {
			t.produced++
		} else {
			t.registered++
		}
	}

	result := make([]PhdSupervisionCount, 0, len(order))
	for _, userID := range order {
		t := counts[userID]
		result = append(result, PhdSupervisionCount{
			Slug:       dir.slug(userID),
			StaffName:  dir.name(userID),
			Department: dir.department(userID),
			Registered: t.registered,
			Produced:   t.produced,
		})
	}
	return result, nil
}

// PhdScholarRow is one supervised scholar with supervisor identity.
type PhdScholarRow struct {
	Slug             string `json:"slug"`
	StaffName        string `json:"staffName"`
	Department       string `json:"department"`
	ScholarName      string `json:"scholarName"`
	Topic            string `json:"topic"`
	Status           string `json:"status"`
	YearOfCompletion string `json:"yearOfCompletion"`
}

// PhdScholarsDetails lists every supervised scholar across the institution.
func (s *AdminService) PhdScholarsDetails(ctx context.Context) ([]PhdScholarRow, error) {
	dir, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	scholars, err := s.facts.PhdScholars.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]PhdScholarRow, 0, len(scholars))
	for _, scholar := range scholars {
		result = append(result, PhdScholarRow{
			Slug:             dir.slug(scholar.UserID),
			StaffName:        dir.name(scholar.UserID),
			Department:       dir.department(scholar.UserID),
			ScholarName:      scholar.ScholarName,
			Topic:            scholar.Topic,
			Status:           scholar.Status,
			YearOfCompletion: scholar.YearOfCompletion,
		})
	}
	return result, nil
}

// PhdSummary is the institution-wide supervision total.
type PhdSummary struct {
	TotalRegistered int64 `json:"totalRegistered"`
	TotalProduced   int64 `json:"totalProduced"`
}

// PhdScholarsSummary totals supervisions across the institution.
func (s *AdminService) PhdScholarsSummary(ctx context.Context) (*PhdSummary, error) {
	total, err := s.facts.PhdScholars.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	produced, err := s.facts.PhdScholars.CountCompleted(ctx)
	if err != nil {
		return nil, err
	}
	return &PhdSummary{TotalRegistered: total, TotalProduced: produced}, nil
}

// FundingRow is one funded project with owner identity.
type FundingRow struct {
	Slug          string  `json:"slug"`
	StaffName     string  `json:"staffName"`
	ProjectTitle  string  `json:"projectTitle"`
	FundingAgency string  `json:"fundingAgency"`
	MonthAndYear  string  `json:"fundingMonthAndYear"`
	Amount        float64 `json:"fundingAmount"`
	Status        string  `json:"fundingStatus"`
}

// FundingDetails lists every funding row across the institution.
func (s *AdminService) FundingDetails(ctx context.Context) ([]FundingRow, error) {
	dir, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	fundings, err := s.facts.Fundings.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]FundingRow, 0, len(fundings))
	for _, funding := range fundings {
		result = append(result, FundingRow{
			Slug:          dir.slug(funding.UserID),
			StaffName:     dir.name(funding.UserID),
			ProjectTitle:  funding.ProjectTitle,
			FundingAgency: funding.FundingAgency,
			MonthAndYear:  funding.MonthAndYear,
			Amount:        funding.Amount,
			Status:        funding.Status,
		})
	}
	return result, nil
}

// PublicationRow is one publication with owner identity.
type PublicationRow struct {
	Slug         string `json:"slug"`
	Name         string `json:"name"`
	Title        string `json:"publicationTitle"`
	Link         string `json:"publicationLink"`
	Type         string `json:"publicationType"`
	MonthAndYear string `json:"publicationMonthAndYear"`
}

// PublicationList lists every publication across the institution.
func (s *AdminService) PublicationList(ctx context.Context) ([]PublicationRow, error) {
	dir, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	publications, err := s.facts.Publications.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]PublicationRow, 0, len(publications))
	for _, pub := range publications {
		result = append(result, PublicationRow{
			Slug:         dir.slug(pub.UserID),
			Name:         dir.name(pub.UserID),
			Title:        pub.Title,
			Link:         pub.Link,
			Type:         pub.Type,
			MonthAndYear: pub.MonthAndYear,
		})
	}
	return result, nil
}

// ResearchIDRow is one research identifier with owner identity.
type ResearchIDRow struct {
	Slug          string  `json:"slug"`
	Name          string  `json:"name"`
	ResearchTitle string  `json:"researchTitle"`
	ResearchLink  *string `json:"researchLink"`
}

// ResearchIDList lists every research identifier across the institution.
func (s *AdminService) ResearchIDList(ctx context.Context) ([]ResearchIDRow, error) {
	dir, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	rids, err := s.facts.ResearchIDs.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]ResearchIDRow, 0, len(rids))
	for _, rid := range rids {
		result = append(result, ResearchIDRow{
			Slug:          dir.slug(rid.UserID),
			Name:          dir.name(rid.UserID),
			ResearchTitle: rid.ResearchTitle,
			ResearchLink:  rid.ResearchLink,
		})
	}
	return result, nil
}

// ResearchAreasRow is one staff member's combined research areas.
type ResearchAreasRow struct {
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	ResearchAreas string `json:"researchAreas"`
}

// ResearchAreasList joins each staff member's research-area rows into one
// comma-separated string.
func (s *AdminService) ResearchAreasList(ctx context.Context) ([]ResearchAreasRow, error) {
	dir, err := s.loadDirectory(ctx)
	if err != nil {
		return nil, err
	}
	researches, err := s.facts.Researches.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	combined := make(map[string][]string)
	var order []string
	for _, research := range researches {
		if _, ok := combined[research.UserID]; !ok {
			order = append(order, research.UserID)
		}
		combined[research.UserID] = append(combined[research.UserID], research.ResearchAreas)
	}

	result := make([]ResearchAreasRow, 0, len(order))
	for _, userID := range order {
		result = append(result, ResearchAreasRow{
			Slug:          dir.slug(userID),
			Name:          dir.name(userID),
			ResearchAreas: strings.Join(combined[userID], ", "),
		})
	}
	return result, nil
}

// DashboardStats carries the per-category counts for one department filter.
type DashboardStats struct {
	ResearchAreas     int64 `json:"researchAreas"`
	ResearchIDs       int64 `json:"researchIDs"`
	Publications      int64 `json:"publications"`
	Fundings          int64 `json:"fundings"`
	Conferences       int64 `json:"conferences"`
	PhdSupervisions   int64 `json:"phdSupervisions"`
	AdminPositions    int64 `json:"adminPositions"`
	HonoraryPositions int64 `json:"honoraryPositions"`
	ResourcePerson    int64 `json:"resourcePerson"`
	Collaborations    int64 `json:"collaborations"`
	Consultancies     int64 `json:"consultancies"`
}

func departmentFilter(department string) string {
	if department == "" || department == departmentOverall {
		return ""
	}
	return department
}

// GetDashboardStats counts every fact category, optionally narrowed to one
// department ("Overall" or empty means the whole institution).
func (s *AdminService) GetDashboardStats(ctx context.Context, department string) (*DashboardStats, error) {
	dept := departmentFilter(department)
	stats := &DashboardStats{}

	counters := []struct {
		dest  *int64
		count func(context.Context, string) (int64, error)
	}{
		{&stats.ResearchAreas, s.facts.Researches.Count},
		{&stats.ResearchIDs, s.facts.ResearchIDs.Count},
		{&stats.Publications, s.facts.Publications.Count},
		{&stats.Fundings, s.facts.Fundings.Count},
		{&stats.Conferences, s.facts.Conferences.Count},
		{&stats.PhdSupervisions, s.facts.PhdScholars.Count},
		{&stats.AdminPositions, s.facts.AdminPositions.Count},
		{&stats.HonoraryPositions, s.facts.HonoraryPositions.Count},
		{&stats.ResourcePerson, s.facts.ResourcePersons.Count},
		{&stats.Collaborations, s.facts.Collaborations.Count},
		{&stats.Consultancies, s.facts.Consultancies.Count},
	}
	for _, c := range counters {
		count, err := c.count(ctx, dept)
		if err != nil {
			return nil, err
		}
		*c.dest = count
	}
	return stats, nil
}

// YearCount is one year of a publications trend.
type YearCount struct {
	Year  string `json:"year"`
	Count int64  `json:"count"`
}

// trendYears lists the last five calendar years, oldest first.
func trendYears() []string {
	current := time.Now().Year()
	years := make([]string, 0, 5)
	for year := current - 4; year <= current; year++ {
		years = append(years, strconv.Itoa(year))
	}
	return years
}

// PublicationsTrend counts publications per year over the last five years.
// The match is a substring test on the free-text month-year field, as the
// data entry format carries the year inline.
func (s *AdminService) PublicationsTrend(ctx context.Context, department string) ([]YearCount, error) {
	dept := departmentFilter(department)
	trend := make([]YearCount, 0, 5)
	for _, year := range trendYears() {
		count, err := s.facts.Publications.CountByYear(ctx, dept, year)
		if err != nil {
			return nil, err
		}
		trend = append(trend, YearCount{Year: year, Count: count})
	}
	return trend, nil
}

// YearAmount is one year of a funding trend.
type YearAmount struct {
	Year   string  `json:"year"`
	Amount float64 `json:"amount"`
}

// FundingTrend totals funding amounts per year over the last five years.
func (s *AdminService) FundingTrend(ctx context.Context, department string) ([]YearAmount, error) {
	dept := departmentFilter(department)
	trend := make([]YearAmount, 0, 5)
	for _, year := range trendYears() {
		amount, err := s.facts.Fundings.SumAmountByYear(ctx, dept, year)
		if err != nil {
			return nil, err
		}
		trend = append(trend, YearAmount{Year: year, Amount: amount})
	}
	return trend, nil
}

// LabelValue is one slice of the research-distribution chart.
type LabelValue struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// ResearchDistribution counts the four research-activity categories.
func (s *AdminService) ResearchDistribution(ctx context.Context, department string) ([]LabelValue, error) {
	dept := departmentFilter(department)
	categories := []struct {
		label string
		count func(context.Context, string) (int64, error)
	}{
		{"Publications", s.facts.Publications.Count},
		{"Conferences", s.facts.Conferences.Count},
		{"Collaborations", s.facts.Collaborations.Count},
		{"Consultancies", s.facts.Consultancies.Count},
	}

	result := make([]LabelValue, 0, len(categories))
	for _, c := range categories {
		value, err := c.count(ctx, dept)
		if err != nil {
			return nil, err
		}
		result = append(result, LabelValue{Label: c.label, Value: value})
	}
	return result, nil
}

// CategoryCount is one slice of the supervision-status chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// PhdSupervisionStatus splits supervisions into ongoing and completed.
func (s *AdminService) PhdSupervisionStatus(ctx context.Context, department string) ([]CategoryCount, error) {
	dept := departmentFilter(department)
	ongoing, err := s.facts.PhdScholars.CountByStatus(ctx, dept, "Ongoing")
	if err != nil {
		return nil, err
	}
	completed, err := s.facts.PhdScholars.CountByStatus(ctx, dept, domain.PhdStatusCompleted)
	if err != nil {
		return nil, err
	}
	return []CategoryCount{
		{Category: "Ongoing", Count: ongoing},
		{Category: "Completed", Count: completed},
	}, nil
}
