package domain

import "time"

// ProfileView is one append-only public profile view event. Rows are never
// mutated; the same table feeds dedup suppression and the leaderboards.
type ProfileView struct {
	ID       string
	UserID   string
	IP       string
	ViewedAt time.Time
}

// ViewWindow names a rolling analytics range.
type ViewWindow string

const (
	ViewWindowDaily   ViewWindow = "daily"
	ViewWindowWeekly  ViewWindow = "weekly"
	ViewWindowMonthly ViewWindow = "monthly"
	ViewWindowOverall ViewWindow = "overall"
)

// LeaderboardEntry is one rank-ordered row of a top-viewed listing.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	StaffName  string `json:"staffName"`
	Department string `json:"department"`
	Views      int64  `json:"views"`
	Slug       string `json:"slug"`
}
