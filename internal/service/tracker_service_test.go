package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/faculty-service/internal/config"
	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/events"
)

func newTrackerFixture(policy config.TrackerPolicy) (*TrackerService, *fakeTrackerRepo, *fakeUserRepo, *fakeStaffRepo, FactRepositories, *recordingDispatcher) {
	trackers := newFakeTrackerRepo()
	users := newFakeUserRepo()
	staff := newFakeStaffRepo()
	facts := newFakeFacts()
	dispatcher := &recordingDispatcher{}
	svc := NewTrackerService(TrackerDependencies{
		TrackerRepo: trackers,
		UserRepo:    users,
		StaffRepo:   staff,
		Facts:       facts,
		Policy:      policy,
		Dispatcher:  dispatcher,
	})
	return svc, trackers, users, staff, facts, dispatcher
}

func TestMarkSectionCompleteCreatesTracker(t *testing.T) {
	svc, trackers, _, _, _, dispatcher := newTrackerFixture(config.TrackerPolicyOnAnyDelete)
	ctx := context.Background()

	require.NoError(t, svc.MarkSectionComplete(ctx, "u1", domain.SectionEducation))

	tracker, err := trackers.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, tracker.EducationDetails)
	assert.False(t, tracker.IsComplete())
	assert.Len(t, dispatcher.ofType(events.EventSectionCompleted), 1)
}

func TestMarkSectionCompleteIsIdempotent(t *testing.T) {
	svc, _, _, _, _, dispatcher := newTrackerFixture(config.TrackerPolicyOnAnyDelete)
	ctx := context.Background()

	require.NoError(t, svc.MarkSectionComplete(ctx, "u1", domain.SectionEducation))
	require.NoError(t, svc.MarkSectionComplete(ctx, "u1", domain.SectionEducation))

	assert.Len(t, dispatcher.ofType(events.EventSectionCompleted), 1)
}

func TestMarkSectionCompleteIgnoresUntrackedSections(t *testing.T) {
	svc, trackers, _, _, _, dispatcher := newTrackerFixture(config.TrackerPolicyOnAnyDelete)
	ctx := context.Background()

	require.NoError(t, svc.MarkSectionComplete(ctx, "u1", domain.SectionFunding))

	rows, err := trackers.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, dispatcher.ofType(events.EventSectionCompleted))
}

func TestIsCompleteRequiresAllTrackedSections(t *testing.T) {
	svc, _, _, _, _, _ := newTrackerFixture(config.TrackerPolicyOnAnyDelete)
	ctx := context.Background()

	sections := []domain.Section{
		domain.SectionProfileDetails,
		domain.SectionEducation,
		domain.SectionResearchCareer,
		domain.SectionCareerHighlight,
	}
	for i, section := range sections {
		complete, err := svc.IsComplete(ctx, "u1")
		require.NoError(t, err)
		assert.False(t, complete, "complete after %d of %d sections", i, len(sections))
		require.NoError(t, svc.MarkSectionComplete(ctx, "u1", section))
	}

	complete, err := svc.IsComplete(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, complete)
}

func TestMarkSectionIncompleteOnAnyDelete(t *testing.T) {
	svc, trackers, _, _, facts, dispatcher := newTrackerFixture(config.TrackerPolicyOnAnyDelete)
	ctx := context.Background()

	require.NoError(t, facts.Educations.Create(ctx, &domain.Education{UserID: "u1", Degree: "PhD", College: "MCC"}))
	require.NoError(t, svc.MarkSectionComplete(ctx, "u1", domain.SectionEducation))

	// one row remains, yet the policy clears the flag on every delete
	require.NoError(t, svc.MarkSectionIncomplete(ctx, "u1", domain.SectionEducation))

	tracker, err := trackers.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, tracker.EducationDetails)
	assert.Len(t, dispatcher.ofType(events.EventSectionIncompleted), 1)
}

func TestMarkSectionIncompleteWhenSectionEmptyKeepsFlagWhileRowsRemain(t *testing.T) {
	svc, trackers, _, _, facts, _ := newTrackerFixture(config.TrackerPolicyWhenSectionEmpty)
	ctx := context.Background()

	require.NoError(t, facts.Educations.Create(ctx, &domain.Education{UserID: "u1", Degree: "PhD", College: "MCC"}))
	require.NoError(t, svc.MarkSectionComplete(ctx, "u1", domain.SectionEducation))

	require.NoError(t, svc.MarkSectionIncomplete(ctx, "u1", domain.SectionEducation))
	tracker, err := trackers.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, tracker.EducationDetails)

	rows, err := facts.Educations.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, facts.Educations.Delete(ctx, rows[0].ID, "u1"))

	require.NoError(t, svc.MarkSectionIncomplete(ctx, "u1", domain.SectionEducation))
	tracker, err = trackers.GetOrCreate(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, tracker.EducationDetails)
}

func TestReconcileRepairsStaleFlags(t *testing.T) {
	svc, trackers, users, staff, facts, _ := newTrackerFixture(config.TrackerPolicyOnAnyDelete)
	ctx := context.Background()

	user := &domain.User{Email: "a@mcc.edu.in", Role: domain.RoleStaff, Active: true}
	users.add(user)
	require.NoError(t, staff.Upsert(ctx, &domain.StaffDetails{UserID: user.ID, Name: "A", Department: "Physics"}))
	require.NoError(t, facts.Educations.Create(ctx, &domain.Education{UserID: user.ID, Degree: "MSc", College: "MCC"}))
	require.NoError(t, facts.CareerHighlights.Create(ctx, &domain.Note{UserID: user.ID, Details: "note"}))

	// simulate a crash between fact write and tracker update
	_, err := trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Reconcile(ctx))

	tracker, err := trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, tracker.ProfileDetails)
	assert.True(t, tracker.EducationDetails)
	assert.True(t, tracker.CareerHighlights)
	assert.False(t, tracker.ResearchCareer)
}
