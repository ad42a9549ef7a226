package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/events"
	"github.com/spec-kit/faculty-service/internal/repository"
)

// factFake is an in-memory row store shared by every fact repository fake.
// The department argument of Count and friends is ignored; tests that need
// department scoping filter through the staff fake instead.
type factFake[T any] struct {
	mu     sync.Mutex
	rows   []T
	getID  func(*T) string
	setID  func(*T, string)
	getUID func(*T) string
}

func (f *factFake[T]) ListByUser(_ context.Context, userID string) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []T
	for i := range f.rows {
		if f.getUID(&f.rows[i]) == userID {
			out = append(out, f.rows[i])
		}
	}
	return out, nil
}

func (f *factFake[T]) ListAll(_ context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]T{}, f.rows...), nil
}

func (f *factFake[T]) Create(_ context.Context, row *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getID(row) == "" {
		f.setID(row, uuid.NewString())
	}
	f.rows = append(f.rows, *row)
	return nil
}

func (f *factFake[T]) Update(_ context.Context, row *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.getID(&f.rows[i]) == f.getID(row) && f.getUID(&f.rows[i]) == f.getUID(row) {
			f.rows[i] = *row
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *factFake[T]) Delete(_ context.Context, id, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.getID(&f.rows[i]) == id && f.getUID(&f.rows[i]) == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (f *factFake[T]) CountByUser(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i := range f.rows {
		if f.getUID(&f.rows[i]) == userID {
			n++
		}
	}
	return n, nil
}

func (f *factFake[T]) Count(_ context.Context, _ string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

type fakeEducationRepo struct{ *factFake[domain.Education] }
type fakeResearchRepo struct{ *factFake[domain.Research] }
type fakeResearchIDRepo struct{ *factFake[domain.ResearchID] }
type fakeAdminPositionRepo struct {
	*factFake[domain.AdministrationPosition]
}
type fakeHonoraryPositionRepo struct{ *factFake[domain.HonoraryPosition] }
type fakeConferenceRepo struct{ *factFake[domain.Conference] }
type fakeResourcePersonRepo struct{ *factFake[domain.ResourcePerson] }
type fakeNoteRepo struct{ *factFake[domain.Note] }

type fakeFundingRepo struct{ *factFake[domain.Funding] }

func (f *fakeFundingRepo) SumAmountByYear(_ context.Context, _, year string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var sum float64
	for i := range f.rows {
		if strings.Contains(f.rows[i].MonthAndYear, year) {
			sum += f.rows[i].Amount
		}
	}
	return sum, nil
}

type fakePublicationRepo struct{ *factFake[domain.Publication] }

func (f *fakePublicationRepo) CountByYear(_ context.Context, _, year string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i := range f.rows {
		if strings.Contains(f.rows[i].MonthAndYear, year) {
			n++
		}
	}
	return n, nil
}

type fakePhdRepo struct{ *factFake[domain.PhdScholar] }

func (f *fakePhdRepo) CountByStatus(_ context.Context, _, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i := range f.rows {
		if strings.EqualFold(f.rows[i].Status, status) {
			n++
		}
	}
	return n, nil
}

func (f *fakePhdRepo) CountCompleted(ctx context.Context) (int64, error) {
	return f.CountByStatus(ctx, "", domain.PhdStatusCompleted)
}

func (f *fakePhdRepo) CountTotal(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

func newFake[T any](getID func(*T) string, setID func(*T, string), getUID func(*T) string) *factFake[T] {
	return &factFake[T]{getID: getID, setID: setID, getUID: getUID}
}

// newFakeFacts builds a fully in-memory FactRepositories bundle.
func newFakeFacts() FactRepositories {
	return FactRepositories{
		Educations: &fakeEducationRepo{newFake(
			func(r *domain.Education) string { return r.ID },
			func(r *domain.Education, id string) { r.ID = id },
			func(r *domain.Education) string { return r.UserID })},
		Researches: &fakeResearchRepo{newFake(
			func(r *domain.Research) string { return r.ID },
			func(r *domain.Research, id string) { r.ID = id },
			func(r *domain.Research) string { return r.UserID })},
		ResearchIDs: &fakeResearchIDRepo{newFake(
			func(r *domain.ResearchID) string { return r.ID },
			func(r *domain.ResearchID, id string) { r.ID = id },
			func(r *domain.ResearchID) string { return r.UserID })},
		Fundings: &fakeFundingRepo{newFake(
			func(r *domain.Funding) string { return r.ID },
			func(r *domain.Funding, id string) { r.ID = id },
			func(r *domain.Funding) string { return r.UserID })},
		Publications: &fakePublicationRepo{newFake(
			func(r *domain.Publication) string { return r.ID },
			func(r *domain.Publication, id string) { r.ID = id },
			func(r *domain.Publication) string { return r.UserID })},
		AdminPositions: &fakeAdminPositionRepo{newFake(
			func(r *domain.AdministrationPosition) string { return r.ID },
			func(r *domain.AdministrationPosition, id string) { r.ID = id },
			func(r *domain.AdministrationPosition) string { return r.UserID })},
		HonoraryPositions: &fakeHonoraryPositionRepo{newFake(
			func(r *domain.HonoraryPosition) string { return r.ID },
			func(r *domain.HonoraryPosition, id string) { r.ID = id },
			func(r *domain.HonoraryPosition) string { return r.UserID })},
		Conferences: &fakeConferenceRepo{newFake(
			func(r *domain.Conference) string { return r.ID },
			func(r *domain.Conference, id string) { r.ID = id },
			func(r *domain.Conference) string { return r.UserID })},
		PhdScholars: &fakePhdRepo{newFake(
			func(r *domain.PhdScholar) string { return r.ID },
			func(r *domain.PhdScholar, id string) { r.ID = id },
			func(r *domain.PhdScholar) string { return r.UserID })},
		ResourcePersons: &fakeResourcePersonRepo{newFake(
			func(r *domain.ResourcePerson) string { return r.ID },
			func(r *domain.ResourcePerson, id string) { r.ID = id },
			func(r *domain.ResourcePerson) string { return r.UserID })},
		Collaborations:   newFakeNoteRepo(),
		Consultancies:    newFakeNoteRepo(),
		CareerHighlights: newFakeNoteRepo(),
		ResearchCareers:  newFakeNoteRepo(),
	}
}

func newFakeNoteRepo() repository.NoteRepository {
	return &fakeNoteRepo{newFake(
		func(r *domain.Note) string { return r.ID },
		func(r *domain.Note, id string) { r.ID = id },
		func(r *domain.Note) string { return r.UserID })}
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) add(u *domain.User) *domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	clone := *u
	f.users[u.ID] = &clone
	return u
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepo) CreateBulk(_ context.Context, users []*domain.User) error {
	for _, u := range users {
		f.add(u)
	}
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetBySlug(_ context.Context, slug string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Slug != nil && *u.Slug == slug {
			clone := *u
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) ExistingEmails(_ context.Context, emails []string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, email := range emails {
		for _, u := range f.users {
			if u.Email == email {
				out = append(out, email)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Slug != nil && *u.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) RecordLogin(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	now := time.Now()
	u.LastLoginAt = &now
	return nil
}

type fakeStaffRepo struct {
	mu      sync.Mutex
	details map[string]*domain.StaffDetails
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{details: make(map[string]*domain.StaffDetails)}
}

func (f *fakeStaffRepo) Upsert(_ context.Context, details *domain.StaffDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.details[details.UserID]; ok {
		details.ID = existing.ID
	} else if details.ID == "" {
		details.ID = uuid.NewString()
	}
	clone := *details
	f.details[details.UserID] = &clone
	return nil
}

func (f *fakeStaffRepo) GetByUserID(_ context.Context, userID string) (*domain.StaffDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.details[userID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *d
	return &clone, nil
}

func (f *fakeStaffRepo) List(_ context.Context) ([]domain.StaffDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.StaffDetails, 0, len(f.details))
	for _, d := range f.details {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeStaffRepo) ListByDepartment(_ context.Context, department string) ([]domain.StaffDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.StaffDetails
	for _, d := range f.details {
		if d.Department == department {
			out = append(out, *d)
		}
	}
	return out, nil
}

type fakeTrackerRepo struct {
	mu       sync.Mutex
	trackers map[string]*domain.ProfileTracker
}

func newFakeTrackerRepo() *fakeTrackerRepo {
	return &fakeTrackerRepo{trackers: make(map[string]*domain.ProfileTracker)}
}

func (f *fakeTrackerRepo) GetOrCreate(_ context.Context, userID string) (*domain.ProfileTracker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.trackers[userID]
	if !ok {
		t = &domain.ProfileTracker{ID: uuid.NewString(), UserID: userID}
		f.trackers[userID] = t
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTrackerRepo) SetSectionFlag(_ context.Context, userID string, section domain.Section, complete bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.trackers[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	switch section {
	case domain.SectionProfileDetails:
		t.ProfileDetails = complete
	case domain.SectionEducation:
		t.EducationDetails = complete
	case domain.SectionResearchCareer:
		t.ResearchCareer = complete
	case domain.SectionCareerHighlight:
		t.CareerHighlights = complete
	}
	return nil
}

func (f *fakeTrackerRepo) SetAllFlags(_ context.Context, tracker *domain.ProfileTracker) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.trackers[tracker.UserID]
	if !ok {
		return pgx.ErrNoRows
	}
	t.ProfileDetails = tracker.ProfileDetails
	t.EducationDetails = tracker.EducationDetails
	t.ResearchCareer = tracker.ResearchCareer
	t.CareerHighlights = tracker.CareerHighlights
	return nil
}

func (f *fakeTrackerRepo) IncrementViewCount(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.trackers[userID]
	if !ok {
		return pgx.ErrNoRows
	}
	t.ViewCount++
	return nil
}

func (f *fakeTrackerRepo) ListAll(_ context.Context) ([]domain.ProfileTracker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.ProfileTracker, 0, len(f.trackers))
	for _, t := range f.trackers {
		out = append(out, *t)
	}
	return out, nil
}

type viewRow struct {
	userID string
	ip     string
	at     time.Time
}

type fakeViewLogRepo struct {
	mu sync.Mutex
	// now lets tests move the clock without sleeping.
	now  func() time.Time
	rows []viewRow
}

func newFakeViewLogRepo() *fakeViewLogRepo {
	return &fakeViewLogRepo{now: time.Now}
}

func (f *fakeViewLogRepo) Insert(_ context.Context, userID, ip string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, viewRow{userID: userID, ip: ip, at: f.now()})
	return nil
}

func (f *fakeViewLogRepo) RecentExists(_ context.Context, userID, ip string, since time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.userID == userID && r.ip == ip && !r.at.Before(since) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeViewLogRepo) TopViewed(_ context.Context, since time.Time, limit int) ([]repository.ViewCount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[string]int64)
	var order []string
	for _, r := range f.rows {
		if !since.IsZero() && r.at.Before(since) {
			continue
		}
		if _, ok := counts[r.userID]; !ok {
			order = append(order, r.userID)
		}
		counts[r.userID]++
	}
	var out []repository.ViewCount
	for _, id := range order {
		out = append(out, repository.ViewCount{UserID: id, Views: counts[id]})
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Views > out[i].Views {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeViewLogRepo) CountForUser(_ context.Context, userID string, from, to time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, r := range f.rows {
		if r.userID != userID {
			continue
		}
		if !from.IsZero() && r.at.Before(from) {
			continue
		}
		if !to.IsZero() && !r.at.Before(to) {
			continue
		}
		n++
	}
	return n, nil
}

// fakeClaimer mimics the Redis SETNX dedup window.
type fakeClaimer struct {
	mu      sync.Mutex
	now     func() time.Time
	claims  map[string]time.Time
	failing bool
}

func newFakeClaimer() *fakeClaimer {
	return &fakeClaimer{now: time.Now, claims: make(map[string]time.Time)}
}

func (f *fakeClaimer) ClaimOnce(_ context.Context, key string, ttl time.Duration) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return false, context.DeadlineExceeded
	}
	if expiry, ok := f.claims[key]; ok && f.now().Before(expiry) {
		return false, nil
	}
	f.claims[key] = f.now().Add(ttl)
	return true, nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) ofType(t events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []events.Event
	for _, e := range d.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
