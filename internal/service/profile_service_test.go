package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/faculty-service/internal/config"
	"github.com/spec-kit/faculty-service/internal/domain"
	apperrors "github.com/spec-kit/faculty-service/pkg/util"
)

type profileFixture struct {
	svc      *ProfileService
	users    *fakeUserRepo
	staff    *fakeStaffRepo
	trackers *fakeTrackerRepo
	facts    FactRepositories
}

func newProfileFixture() *profileFixture {
	users := newFakeUserRepo()
	staff := newFakeStaffRepo()
	trackers := newFakeTrackerRepo()
	facts := newFakeFacts()
	tracker := NewTrackerService(TrackerDependencies{
		TrackerRepo: trackers,
		UserRepo:    users,
		StaffRepo:   staff,
		Facts:       facts,
		Policy:      config.TrackerPolicyOnAnyDelete,
		Dispatcher:  &recordingDispatcher{},
	})
	svc := NewProfileService(ProfileDependencies{
		UserRepo:           users,
		StaffRepo:          staff,
		Facts:              facts,
		Tracker:            tracker,
		DefaultInstitution: "Madras Christian College",
	})
	return &profileFixture{svc: svc, users: users, staff: staff, trackers: trackers, facts: facts}
}

func (f *profileFixture) addUser(email string) *domain.User {
	return f.users.add(&domain.User{Email: email, Role: domain.RoleStaff, Active: true})
}

func TestUpsertStaffDetailsAssignsSlugOnce(t *testing.T) {
	f := newProfileFixture()
	ctx := context.Background()
	user := f.addUser("a@mcc.edu.in")

	details, err := f.svc.UpsertStaffDetails(ctx, user, StaffDetailsInput{
		Prefix:     "Dr.",
		Name:       "Jane D'Souza",
		Department: "Physics",
	})
	require.NoError(t, err)
	assert.Equal(t, "Madras Christian College", details.Institution)

	stored, err := f.users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Slug)
	assert.Equal(t, "jane-d-souza", *stored.Slug)

	// a second upsert keeps the original slug
	_, err = f.svc.UpsertStaffDetails(ctx, stored, StaffDetailsInput{Name: "Jane DSouza", Department: "Physics"})
	require.NoError(t, err)
	again, err := f.users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane-d-souza", *again.Slug)

	tracker, err := f.trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, tracker.ProfileDetails)
}

func TestUpsertStaffDetailsSuffixesTakenSlug(t *testing.T) {
	f := newProfileFixture()
	ctx := context.Background()
	first := f.addUser("a@mcc.edu.in")
	second := f.addUser("b@mcc.edu.in")

	_, err := f.svc.UpsertStaffDetails(ctx, first, StaffDetailsInput{Name: "John Paul", Department: "History"})
	require.NoError(t, err)
	_, err = f.svc.UpsertStaffDetails(ctx, second, StaffDetailsInput{Name: "John Paul", Department: "History"})
	require.NoError(t, err)

	a, err := f.users.GetByID(ctx, first.ID)
	require.NoError(t, err)
	b, err := f.users.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "john-paul", *a.Slug)
	assert.NotEqual(t, *a.Slug, *b.Slug)
	assert.Contains(t, *b.Slug, "john-paul-")
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "dr-a-b-kumar", slugify("  Dr. A. B. Kumar "))
	assert.Equal(t, "jane", slugify("Jane"))
	assert.Equal(t, "", slugify("...!!"))
}

func TestCreateEducationMarksSectionComplete(t *testing.T) {
	f := newProfileFixture()
	ctx := context.Background()
	user := f.addUser("a@mcc.edu.in")

	edu := &domain.Education{Degree: "PhD", College: "MCC"}
	require.NoError(t, f.svc.CreateEducation(ctx, user.ID, edu))
	assert.NotEmpty(t, edu.ID)

	tracker, err := f.trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, tracker.EducationDetails)
}

func TestDeleteEducationClearsFlagAndHidesForeignRows(t *testing.T) {
	f := newProfileFixture()
	ctx := context.Background()
	owner := f.addUser("a@mcc.edu.in")
	other := f.addUser("b@mcc.edu.in")

	edu := &domain.Education{Degree: "PhD", College: "MCC"}
	require.NoError(t, f.svc.CreateEducation(ctx, owner.ID, edu))

	// another user deleting by the same id reads as not found
	err := f.svc.DeleteEducation(ctx, other.ID, edu.ID)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 404, domainErr.HTTPStatus)

	require.NoError(t, f.svc.DeleteEducation(ctx, owner.ID, edu.ID))
	tracker, err := f.trackers.GetOrCreate(ctx, owner.ID)
	require.NoError(t, err)
	assert.False(t, tracker.EducationDetails)
}

func TestNoteCRUDTracksCareerHighlights(t *testing.T) {
	f := newProfileFixture()
	ctx := context.Background()
	user := f.addUser("a@mcc.edu.in")

	note, err := f.svc.CreateNote(ctx, user.ID, domain.SectionCareerHighlight, "Best teacher award")
	require.NoError(t, err)
	require.NotEmpty(t, note.ID)

	tracker, err := f.trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, tracker.CareerHighlights)

	updated, err := f.svc.UpdateNote(ctx, user.ID, domain.SectionCareerHighlight, note.ID, "Updated")
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.Details)

	require.NoError(t, f.svc.DeleteNote(ctx, user.ID, domain.SectionCareerHighlight, note.ID))
	tracker, err = f.trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, tracker.CareerHighlights)
}

func TestNoteRejectsNonNoteSection(t *testing.T) {
	f := newProfileFixture()
	user := f.addUser("a@mcc.edu.in")

	_, err := f.svc.CreateNote(context.Background(), user.ID, domain.SectionEducation, "x")
	assert.Error(t, err)
}
