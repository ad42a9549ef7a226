package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/faculty-service/internal/config"
	"github.com/spec-kit/faculty-service/internal/domain"
	"github.com/spec-kit/faculty-service/internal/events"
	"github.com/spec-kit/faculty-service/internal/repository"
)

// TrackerService maintains the per-user completion flags that gate public
// visibility. Flag updates run after the fact write they follow, not inside
// the same transaction; Reconcile is the recovery path for the gap.
type TrackerService struct {
	trackers   repository.TrackerRepository
	users      repository.UserRepository
	staff      repository.StaffDetailsRepository
	facts      FactRepositories
	policy     config.TrackerPolicy
	dispatcher events.Dispatcher
}

// TrackerDependencies bundles the tracker service requirements.
type TrackerDependencies struct {
	TrackerRepo repository.TrackerRepository
	UserRepo    repository.UserRepository
	StaffRepo   repository.StaffDetailsRepository
	Facts       FactRepositories
	Policy      config.TrackerPolicy
	Dispatcher  events.Dispatcher
}

// NewTrackerService constructs the service.
func NewTrackerService(deps TrackerDependencies) *TrackerService {
	return &TrackerService{
		trackers:   deps.TrackerRepo,
		users:      deps.UserRepo,
		staff:      deps.StaffRepo,
		facts:      deps.Facts,
		policy:     deps.Policy,
		dispatcher: deps.Dispatcher,
	}
}

// MarkSectionComplete idempotently flags a tracked section complete,
// creating the tracker row when absent. Untracked sections are ignored.
func (s *TrackerService) MarkSectionComplete(ctx context.Context, userID string, section domain.Section) error {
	if !section.Tracked() {
		return nil
	}
	tracker, err := s.trackers.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	if tracker.SectionFlag(section) {
		return nil
	}
	if err := s.trackers.SetSectionFlag(ctx, userID, section, true); err != nil {
		return err
	}
	s.publish(ctx, events.EventSectionCompleted, userID, section)
	return nil
}

// MarkSectionIncomplete clears a tracked section flag after a delete. With
// the on_any_delete policy every delete clears the flag; with
// when_section_empty the flag survives while rows of the section remain.
func (s *TrackerService) MarkSectionIncomplete(ctx context.Context, userID string, section domain.Section) error {
	if !section.Tracked() {
		return nil
	}
	if s.policy == config.TrackerPolicyWhenSectionEmpty {
		remaining, err := s.sectionCount(ctx, userID, section)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}
	}
	tracker, err := s.trackers.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	if !tracker.SectionFlag(section) {
		return nil
	}
	if err := s.trackers.SetSectionFlag(ctx, userID, section, false); err != nil {
		return err
	}
	s.publish(ctx, events.EventSectionIncompleted, userID, section)
	return nil
}

// Status returns the tracker row, creating it when absent.
func (s *TrackerService) Status(ctx context.Context, userID string) (*domain.ProfileTracker, error) {
	return s.trackers.GetOrCreate(ctx, userID)
}

// IsComplete reports whether every tracked section is complete.
func (s *TrackerService) IsComplete(ctx context.Context, userID string) (bool, error) {
	tracker, err := s.trackers.GetOrCreate(ctx, userID)
	if err != nil {
		return false, err
	}
	return tracker.IsComplete(), nil
}

// Reconcile recomputes every user's flags from the actual fact rows. A crash
// between a fact write and its tracker update leaves the flags stale; this
// pass repairs them.
func (s *TrackerService) Reconcile(ctx context.Context) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for i := range users {
		if err := s.reconcileUser(ctx, users[i].ID); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("reconcile user %s: %w", users[i].ID, err)
			}
		}
	}
	return firstErr
}

func (s *TrackerService) reconcileUser(ctx context.Context, userID string) error {
	tracker, err := s.trackers.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}

	desired := domain.ProfileTracker{UserID: userID}
	for _, section := range domain.TrackedSections {
		count, err := s.sectionCount(ctx, userID, section)
		if err != nil {
			return err
		}
		switch section {
		case domain.SectionProfileDetails:
			desired.ProfileDetails = count > 0
		case domain.SectionEducation:
			desired.EducationDetails = count > 0
		case domain.SectionResearchCareer:
			desired.ResearchCareer = count > 0
		case domain.SectionCareerHighlight:
			desired.CareerHighlights = count > 0
		}
	}

	if tracker.ProfileDetails == desired.ProfileDetails &&
		tracker.EducationDetails == desired.EducationDetails &&
		tracker.ResearchCareer == desired.ResearchCareer &&
		tracker.CareerHighlights == desired.CareerHighlights {
		return nil
	}
	return s.trackers.SetAllFlags(ctx, &desired)
}

func (s *TrackerService) sectionCount(ctx context.Context, userID string, section domain.Section) (int64, error) {
	switch section {
	case domain.SectionProfileDetails:
		if _, err := s.staff.GetByUserID(ctx, userID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, nil
			}
			return 0, err
		}
		return 1, nil
	case domain.SectionEducation:
		return s.facts.Educations.CountByUser(ctx, userID)
	case domain.SectionResearchCareer:
		return s.facts.ResearchCareers.CountByUser(ctx, userID)
	case domain.SectionCareerHighlight:
		return s.facts.CareerHighlights.CountByUser(ctx, userID)
	}
	return 0, fmt.Errorf("section %q is not tracked", section)
}

func (s *TrackerService) publish(ctx context.Context, eventType events.EventType, userID string, section domain.Section) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(eventType, userID, userID, map[string]any{
		"section": string(section),
	}))
}
