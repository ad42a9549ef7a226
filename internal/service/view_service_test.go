package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/events"
	apperrors "github.com/spec-kit/faculty-service/pkg/util"
)

type viewFixture struct {
	svc        *ProfileViewService
	users      *fakeUserRepo
	staff      *fakeStaffRepo
	trackers   *fakeTrackerRepo
	views      *fakeViewLogRepo
	claimer    *fakeClaimer
	dispatcher *recordingDispatcher
	clock      time.Time
}

func newViewFixture(t *testing.T) *viewFixture {
	t.Helper()
	f := &viewFixture{
		users:      newFakeUserRepo(),
		staff:      newFakeStaffRepo(),
		trackers:   newFakeTrackerRepo(),
		views:      newFakeViewLogRepo(),
		claimer:    newFakeClaimer(),
		dispatcher: &recordingDispatcher{},
		clock:      time.Now().UTC(),
	}
	f.views.now = func() time.Time { return f.clock }
	f.claimer.now = func() time.Time { return f.clock }
	f.svc = NewProfileViewService(ViewDependencies{
		UserRepo:    f.users,
		StaffRepo:   f.staff,
		Facts:       newFakeFacts(),
		TrackerRepo: f.trackers,
		ViewLogRepo: f.views,
		Claimer:     f.claimer,
		Dispatcher:  f.dispatcher,
		Logger:      zap.NewNop(),
		DedupWindow: 5 * time.Minute,
	})
	return f
}

func (f *viewFixture) addCompleteProfile(t *testing.T, slug string) *domain.User {
	t.Helper()
	ctx := context.Background()
	user := &domain.User{Email: slug + "@mcc.edu.in", Role: domain.RoleStaff, Active: true, Slug: &slug}
	f.users.add(user)
	require.NoError(t, f.staff.Upsert(ctx, &domain.StaffDetails{UserID: user.ID, Name: slug, Department: "Physics"}))
	_, err := f.trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	require.NoError(t, f.trackers.SetAllFlags(ctx, &domain.ProfileTracker{
		UserID:           user.ID,
		ProfileDetails:   true,
		EducationDetails: true,
		ResearchCareer:   true,
		CareerHighlights: true,
	}))
	return user
}

func TestGetPublicProfileUnknownSlug(t *testing.T) {
	f := newViewFixture(t)

	_, err := f.svc.GetPublicProfile(context.Background(), "nobody", "1.2.3.4")
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, 404, domainErr.HTTPStatus)
}

func TestGetPublicProfileIncompleteLooksLikeUnknown(t *testing.T) {
	f := newViewFixture(t)
	ctx := context.Background()
	slug := "alice"
	user := &domain.User{Email: "alice@mcc.edu.in", Role: domain.RoleStaff, Active: true, Slug: &slug}
	f.users.add(user)
	require.NoError(t, f.staff.Upsert(ctx, &domain.StaffDetails{UserID: user.ID, Name: "Alice", Department: "Physics"}))

	_, incompleteErr := f.svc.GetPublicProfile(ctx, "alice", "1.2.3.4")
	_, unknownErr := f.svc.GetPublicProfile(ctx, "nobody", "1.2.3.4")

	incomplete := apperrors.ToDomainError(incompleteErr)
	unknown := apperrors.ToDomainError(unknownErr)
	assert.Equal(t, unknown.HTTPStatus, incomplete.HTTPStatus)
	assert.Equal(t, unknown.Code, incomplete.Code)
	assert.Equal(t, unknown.Message, incomplete.Message)
}

func TestGetPublicProfileCountsDistinctViews(t *testing.T) {
	f := newViewFixture(t)
	ctx := context.Background()
	user := f.addCompleteProfile(t, "alice")

	_, err := f.svc.GetPublicProfile(ctx, "alice", "1.2.3.4")
	require.NoError(t, err)
	_, err = f.svc.GetPublicProfile(ctx, "alice", "1.2.3.4")
	require.NoError(t, err)

	// same IP inside the window counts once
	tracker, err := f.trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tracker.ViewCount)

	// a different IP counts immediately
	_, err = f.svc.GetPublicProfile(ctx, "alice", "5.6.7.8")
	require.NoError(t, err)
	tracker, err = f.trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tracker.ViewCount)

	// the same IP counts again after the window passes
	f.clock = f.clock.Add(6 * time.Minute)
	_, err = f.svc.GetPublicProfile(ctx, "alice", "1.2.3.4")
	require.NoError(t, err)
	tracker, err = f.trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), tracker.ViewCount)

	assert.Len(t, f.dispatcher.ofType(events.EventProfileViewed), 3)
}

func TestGetPublicProfileFallsBackWhenClaimerFails(t *testing.T) {
	f := newViewFixture(t)
	ctx := context.Background()
	user := f.addCompleteProfile(t, "alice")
	f.claimer.failing = true

	_, err := f.svc.GetPublicProfile(ctx, "alice", "1.2.3.4")
	require.NoError(t, err)
	_, err = f.svc.GetPublicProfile(ctx, "alice", "1.2.3.4")
	require.NoError(t, err)

	tracker, err := f.trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tracker.ViewCount)
}

func TestGetPublicProfileSkipsEmptyIP(t *testing.T) {
	f := newViewFixture(t)
	ctx := context.Background()
	user := f.addCompleteProfile(t, "alice")

	_, err := f.svc.GetPublicProfile(ctx, "alice", "")
	require.NoError(t, err)

	tracker, err := f.trackers.GetOrCreate(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), tracker.ViewCount)
}

func TestGetTopViewedCapsAtFive(t *testing.T) {
	f := newViewFixture(t)
	ctx := context.Background()
	for _, slug := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		user := f.addCompleteProfile(t, slug)
		for i := 0; i <= len(slug); i++ {
			require.NoError(t, f.views.Insert(ctx, user.ID, "ip"))
		}
	}

	boards, err := f.svc.GetTopViewed(ctx)
	require.NoError(t, err)
	assert.Len(t, boards.Overall, 5)
	for i, entry := range boards.Overall {
		assert.Equal(t, i+1, entry.Rank)
	}
}

func TestGetOwnAnalyticsGrowth(t *testing.T) {
	f := newViewFixture(t)
	ctx := context.Background()
	user := f.addCompleteProfile(t, "alice")

	// no history at all reports zero growth, not a division error
	analytics, err := f.svc.GetOwnAnalytics(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, analytics.WeeklyGrowthPct)
	assert.Zero(t, analytics.MonthlyGrowthPct)

	require.NoError(t, f.views.Insert(ctx, user.ID, "1.1.1.1"))
	require.NoError(t, f.views.Insert(ctx, user.ID, "2.2.2.2"))

	analytics, err = f.svc.GetOwnAnalytics(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), analytics.TotalViews)
	assert.Equal(t, int64(2), analytics.Last7Days)
	// previous week is empty so growth stays zero by definition
	assert.Zero(t, analytics.WeeklyGrowthPct)
}

func TestGrowthPct(t *testing.T) {
	assert.Zero(t, growthPct(5, 0))
	assert.Zero(t, growthPct(0, 0))
	assert.InDelta(t, 100.0, growthPct(10, 5), 0.001)
	assert.InDelta(t, -50.0, growthPct(5, 10), 0.001)
}
