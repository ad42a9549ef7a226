package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/events"
	"github.com/spec-kit/faculty-service/internal/repository"
	apperrors "github.com/spec-kit/faculty-service/pkg/util"
)

// DedupClaimer atomically claims a dedup key for a window. Redis provides
// exact suppression; a nil claimer or a claim error falls back to the
// check-then-act Postgres path.
type DedupClaimer interface {
	ClaimOnce(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// ProfileViewService gates public profile access on completion and counts
// genuine distinct views.
type ProfileViewService struct {
	users        repository.UserRepository
	staff        repository.StaffDetailsRepository
	facts        FactRepositories
	trackers     repository.TrackerRepository
	views        repository.ViewLogRepository
	claimer      DedupClaimer
	dispatcher   events.Dispatcher
	logger       *zap.Logger
	dedupWindow  time.Duration
	mediaBaseURL string
}

// ViewDependencies bundles the view service requirements.
type ViewDependencies struct {
	UserRepo     repository.UserRepository
	StaffRepo    repository.StaffDetailsRepository
	Facts        FactRepositories
	TrackerRepo  repository.TrackerRepository
	ViewLogRepo  repository.ViewLogRepository
	Claimer      DedupClaimer
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
	DedupWindow  time.Duration
	MediaBaseURL string
}

// NewProfileViewService constructs the service.
func NewProfileViewService(deps ViewDependencies) *ProfileViewService {
	window := deps.DedupWindow
	if window <= 0 {
		window = 5 * time.Minute
	}
	return &ProfileViewService{
		users:        deps.UserRepo,
		staff:        deps.StaffRepo,
		facts:        deps.Facts,
		trackers:     deps.TrackerRepo,
		views:        deps.ViewLogRepo,
		claimer:      deps.Claimer,
		dispatcher:   deps.Dispatcher,
		logger:       deps.Logger,
		dedupWindow:  window,
		mediaBaseURL: deps.MediaBaseURL,
	}
}

// PublicProfile is the released payload for a complete profile.
type PublicProfile struct {
	Slug       string
	Email      string
	Details    *domain.StaffDetails
	PictureURL *string
	Facts      *domain.ProfileFacts
	IsComplete bool
	ViewCount  int64
}

// GetPublicProfile resolves a slug to the full profile payload. Absent slugs
// and incomplete profiles fail with the same not-found error so incomplete
// profiles cannot be enumerated. A successful fetch logs a view, suppressed
// per IP within the dedup window.
func (s *ProfileViewService) GetPublicProfile(ctx context.Context, slug, ip string) (*PublicProfile, error) {
	user, err := s.users.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", nil)
		}
		return nil, err
	}

	tracker, err := s.trackers.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if !tracker.IsComplete() {
		return nil, apperrors.NewNotFound("profile", nil)
	}

	details, err := s.staff.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("profile", nil)
		}
		return nil, err
	}

	facts, err := s.facts.Collect(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.recordView(ctx, user.ID, ip)

	return &PublicProfile{
		Slug:       slug,
		Email:      user.Email,
		Details:    details,
		PictureURL: s.absolutePictureURL(details.PictureURL),
		Facts:      facts,
		IsComplete: true,
		ViewCount:  tracker.ViewCount,
	}, nil
}

// recordView counts one view per (user, IP) per dedup window. Failures are
// logged, never surfaced: analytics must not break profile reads.
func (s *ProfileViewService) recordView(ctx context.Context, userID, ip string) {
	if ip == "" {
		return
	}

	counted, err := s.shouldCount(ctx, userID, ip)
	if err != nil {
		s.logError("view dedup check failed", userID, err)
		return
	}
	if !counted {
		return
	}

	if err := s.views.Insert(ctx, userID, ip); err != nil {
		s.logError("view log insert failed", userID, err)
		return
	}
	if err := s.trackers.IncrementViewCount(ctx, userID); err != nil {
		s.logError("view count increment failed", userID, err)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.NewEvent(events.EventProfileViewed, "", userID, map[string]any{
			"ip": ip,
		}))
	}
}

func (s *ProfileViewService) shouldCount(ctx context.Context, userID, ip string) (bool, error) {
	if s.claimer != nil {
		claimed, err := s.claimer.ClaimOnce(ctx, "profile_view:"+userID+":"+ip, s.dedupWindow)
		if err == nil {
			return claimed, nil
		}
		s.logError("redis dedup unavailable, falling back to store", userID, err)
	}
	exists, err := s.views.RecentExists(ctx, userID, ip, time.Now().Add(-s.dedupWindow))
	if err != nil {
		return false, err
	}
	return !exists, nil
}

func (s *ProfileViewService) logError(msg, userID string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, zap.String("user_id", userID), zap.Error(err))
	}
}

func (s *ProfileViewService) absolutePictureURL(picture *string) *string {
	if picture == nil || *picture == "" {
		return nil
	}
	p := *picture
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return &p
	}
	abs := strings.TrimSuffix(s.mediaBaseURL, "/") + "/" + strings.TrimPrefix(p, "/")
	return &abs
}

// Leaderboards carries the four independent top-5 listings.
type Leaderboards struct {
	Daily   []domain.LeaderboardEntry `json:"daily"`
	Weekly  []domain.LeaderboardEntry `json:"weekly"`
	Monthly []domain.LeaderboardEntry `json:"monthly"`
	Overall []domain.LeaderboardEntry `json:"overall"`
}

const leaderboardSize = 5

// GetTopViewed computes the top-5 most viewed profiles over 1 day, 7 days,
// 30 days and all time, each window independent of the others.
func (s *ProfileViewService) GetTopViewed(ctx context.Context) (*Leaderboards, error) {
	now := time.Now()
	windows := []struct {
		dest  *[]domain.LeaderboardEntry
		since time.Time
	}{
		{since: now.AddDate(0, 0, -1)},
		{since: now.AddDate(0, 0, -7)},
		{since: now.AddDate(0, 0, -30)},
		{since: time.Time{}},
	}

	board := &Leaderboards{}
	windows[0].dest = &board.Daily
	windows[1].dest = &board.Weekly
	windows[2].dest = &board.Monthly
	windows[3].dest = &board.Overall

	for _, w := range windows {
		entries, err := s.topFor(ctx, w.since)
		if err != nil {
			return nil, err
		}
		*w.dest = entries
	}
	return board, nil
}

func (s *ProfileViewService) topFor(ctx context.Context, since time.Time) ([]domain.LeaderboardEntry, error) {
	counts, err := s.views.TopViewed(ctx, since, leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(counts))
	for i, vc := range counts {
		entry := domain.LeaderboardEntry{
			Rank:       i + 1,
			Views:      vc.Views,
			Department: "N/A",
		}

		user, err := s.users.GetByID(ctx, vc.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, err
		}
		entry.StaffName = user.Email
		if user.Slug != nil {
			entry.Slug = *user.Slug
		}

		if details, err := s.staff.GetByUserID(ctx, vc.UserID); err == nil {
			entry.StaffName = strings.TrimSpace(details.DisplayName())
			entry.Department = details.Department
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// OwnAnalytics summarizes a staff member's profile traffic.
type OwnAnalytics struct {
	TotalViews       int64   `json:"totalViews"`
	Last7Days        int64   `json:"last7Days"`
	Previous7Days    int64   `json:"previous7Days"`
	Last30Days       int64   `json:"last30Days"`
	Previous30Days   int64   `json:"previous30Days"`
	WeeklyGrowthPct  float64 `json:"weeklyGrowth"`
	MonthlyGrowthPct float64 `json:"monthlyGrowth"`
}

// GetOwnAnalytics returns view totals for the rolling windows plus growth
// against the preceding period of the same length.
func (s *ProfileViewService) GetOwnAnalytics(ctx context.Context, userID string) (*OwnAnalytics, error) {
	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)
	monthAgo := now.AddDate(0, 0, -30)
	twoMonthsAgo := now.AddDate(0, 0, -60)

	total, err := s.views.CountForUser(ctx, userID, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	last7, err := s.views.CountForUser(ctx, userID, weekAgo, time.Time{})
	if err != nil {
		return nil, err
	}
	prev7, err := s.views.CountForUser(ctx, userID, twoWeeksAgo, weekAgo)
	if err != nil {
		return nil, err
	}
	last30, err := s.views.CountForUser(ctx, userID, monthAgo, time.Time{})
	if err != nil {
		return nil, err
	}
	prev30, err := s.views.CountForUser(ctx, userID, twoMonthsAgo, monthAgo)
	if err != nil {
		return nil, err
	}

	return &OwnAnalytics{
		TotalViews:       total,
		Last7Days:        last7,
		Previous7Days:    prev7,
		Last30Days:       last30,
		Previous30Days:   prev30,
		WeeklyGrowthPct:  growthPct(last7, prev7),
		MonthlyGrowthPct: growthPct(last30, prev30),
	}, nil
}

// growthPct reports percentage growth against the previous period. A zero
// previous period reports 0, not a division error.
func growthPct(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
