package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// TrackerRepository persists the per-user completion flags and view counter.
// Every operation has get-or-create semantics: a missing row is never an
// error, it is created with all flags false.
type TrackerRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.ProfileTracker, error)
	SetSectionFlag(ctx context.Context, userID string, section domain.Section, complete bool) error
	SetAllFlags(ctx context.Context, tracker *domain.ProfileTracker) error
	IncrementViewCount(ctx context.Context, userID string) error
	ListAll(ctx context.Context) ([]domain.ProfileTracker, error)
}

type trackerRepository struct {
	pool *pgxpool.Pool
}

// NewTrackerRepository instantiates the repository.
func NewTrackerRepository(pool *pgxpool.Pool) TrackerRepository {
	return &trackerRepository{pool: pool}
}

const trackerColumns = `id, user_id, profile_details, educational_details, research_career, career_highlights, view_count, updated_at`

func sectionColumn(section domain.Section) (string, error) {
	switch section {
	case domain.SectionProfileDetails:
		return "profile_details", nil
	case domain.SectionEducation:
		return "educational_details", nil
	case domain.SectionResearchCareer:
		return "research_career", nil
	case domain.SectionCareerHighlight:
		return "career_highlights", nil
	}
	return "", fmt.Errorf("section %q is not tracked", section)
}

func (r *trackerRepository) GetOrCreate(ctx context.Context, userID string) (*domain.ProfileTracker, error) {
	const query = `
        INSERT INTO profile_trackers (user_id)
        VALUES ($1)
        ON CONFLICT (user_id) DO UPDATE SET user_id=EXCLUDED.user_id
        RETURNING ` + trackerColumns

	var t domain.ProfileTracker
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&t.ID,
		&t.UserID,
		&t.ProfileDetails,
		&t.EducationDetails,
		&t.ResearchCareer,
		&t.CareerHighlights,
		&t.ViewCount,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *trackerRepository) SetSectionFlag(ctx context.Context, userID string, section domain.Section, complete bool) error {
	column, err := sectionColumn(section)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
        INSERT INTO profile_trackers (user_id, %s)
        VALUES ($1, $2)
        ON CONFLICT (user_id) DO UPDATE SET %s=EXCLUDED.%s, updated_at=NOW()`,
		column, column, column)

	_, err = r.pool.Exec(ctx, query, userID, complete)
	return err
}

func (r *trackerRepository) SetAllFlags(ctx context.Context, tracker *domain.ProfileTracker) error {
	const query = `
        INSERT INTO profile_trackers (user_id, profile_details, educational_details, research_career, career_highlights)
        VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (user_id) DO UPDATE SET
            profile_details=EXCLUDED.profile_details,
            educational_details=EXCLUDED.educational_details,
            research_career=EXCLUDED.research_career,
            career_highlights=EXCLUDED.career_highlights,
            updated_at=NOW()`
	_, err := r.pool.Exec(ctx, query,
		tracker.UserID,
		tracker.ProfileDetails,
		tracker.EducationDetails,
		tracker.ResearchCareer,
		tracker.CareerHighlights,
	)
	return err
}

func (r *trackerRepository) IncrementViewCount(ctx context.Context, userID string) error {
	const query = `
        INSERT INTO profile_trackers (user_id, view_count)
        VALUES ($1, 1)
        ON CONFLICT (user_id) DO UPDATE SET view_count=profile_trackers.view_count+1, updated_at=NOW()`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}

func (r *trackerRepository) ListAll(ctx context.Context) ([]domain.ProfileTracker, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+trackerColumns+` FROM profile_trackers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ProfileTracker
	for rows.Next() {
		var t domain.ProfileTracker
		if err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.ProfileDetails,
			&t.EducationDetails,
			&t.ResearchCareer,
			&t.CareerHighlights,
			&t.ViewCount,
			&t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
