package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// EducationRepository manages education rows.
type EducationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Education, error)
	Create(ctx context.Context, edu *domain.Education) error
	Update(ctx context.Context, edu *domain.Education) error
	Delete(ctx context.Context, id, userID string) error
	CountByUser(ctx context.Context, userID string) (int64, error)
}

type educationRepository struct {
	pool *pgxpool.Pool
}

// NewEducationRepository instantiates the repository.
func NewEducationRepository(pool *pgxpool.Pool) EducationRepository {
	return &educationRepository{pool: pool}
}

const educationColumns = `id, user_id, degree, college, start_year, end_year, created_at, updated_at`

func scanEducation(row pgx.Row) (*domain.Education, error) {
	var e domain.Education
	if err := row.Scan(&e.ID, &e.UserID, &e.Degree, &e.College, &e.StartYear, &e.EndYear, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *educationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Education, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+educationColumns+` FROM educations WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

func (r *educationRepository) Create(ctx context.Context, edu *domain.Education) error {
	const query = `
        INSERT INTO educations (user_id, degree, college, start_year, end_year)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		edu.UserID,
		edu.Degree,
		edu.College,
		edu.StartYear,
		edu.EndYear,
	).Scan(&edu.ID, &edu.CreatedAt, &edu.UpdatedAt)
}

func (r *educationRepository) Update(ctx context.Context, edu *domain.Education) error {
	const query = `
        UPDATE educations SET degree=$1, college=$2, start_year=$3, end_year=$4, updated_at=NOW()
        WHERE id=$5 AND user_id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		edu.Degree,
		edu.College,
		edu.StartYear,
		edu.EndYear,
		edu.ID,
		edu.UserID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *educationRepository) Delete(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.pool, "educations", id, userID)
}

func (r *educationRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return countOwned(ctx, r.pool, "educations", userID)
}
