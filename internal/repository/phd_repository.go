package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// PhdRepository manages PhD supervision rows.
type PhdRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.PhdScholar, error)
	ListAll(ctx context.Context) ([]domain.PhdScholar, error)
	Create(ctx context.Context, phd *domain.PhdScholar) error
	Update(ctx context.Context, phd *domain.PhdScholar) error
	Delete(ctx context.Context, id, userID string) error
	Count(ctx context.Context, department string) (int64, error)
	// CountByStatus counts supervisions with the given status
	// (case-insensitive), optionally narrowed to a department.
	CountByStatus(ctx context.Context, department, status string) (int64, error)
	CountCompleted(ctx context.Context) (int64, error)
	CountTotal(ctx context.Context) (int64, error)
}

type phdRepository struct {
	pool *pgxpool.Pool
}

// NewPhdRepository instantiates the repository.
func NewPhdRepository(pool *pgxpool.Pool) PhdRepository {
	return &phdRepository{pool: pool}
}

const phdColumns = `id, user_id, scholar_name, topic, status, year_of_completion, created_at, updated_at`

func scanPhd(row pgx.Row) (*domain.PhdScholar, error) {
	var p domain.PhdScholar
	if err := row.Scan(&p.ID, &p.UserID, &p.ScholarName, &p.Topic, &p.Status, &p.YearOfCompletion, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *phdRepository) ListByUser(ctx context.Context, userID string) ([]domain.PhdScholar, error) {
	return r.list(ctx, `SELECT `+phdColumns+` FROM phd_scholars WHERE user_id=$1 ORDER BY created_at`, userID)
}

func (r *phdRepository) ListAll(ctx context.Context) ([]domain.PhdScholar, error) {
	return r.list(ctx, `SELECT `+phdColumns+` FROM phd_scholars ORDER BY user_id, created_at`)
}

func (r *phdRepository) list(ctx context.Context, query string, args ...any) ([]domain.PhdScholar, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PhdScholar
	for rows.Next() {
		p, err := scanPhd(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

func (r *phdRepository) Create(ctx context.Context, phd *domain.PhdScholar) error {
	const query = `
        INSERT INTO phd_scholars (user_id, scholar_name, topic, status, year_of_completion)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		phd.UserID,
		phd.ScholarName,
		phd.Topic,
		phd.Status,
		phd.YearOfCompletion,
	).Scan(&phd.ID, &phd.CreatedAt, &phd.UpdatedAt)
}

func (r *phdRepository) Update(ctx context.Context, phd *domain.PhdScholar) error {
	const query = `
        UPDATE phd_scholars
        SET scholar_name=$1, topic=$2, status=$3, year_of_completion=$4, updated_at=NOW()
        WHERE id=$5 AND user_id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		phd.ScholarName,
		phd.Topic,
		phd.Status,
		phd.YearOfCompletion,
		phd.ID,
		phd.UserID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *phdRepository) Delete(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.pool, "phd_scholars", id, userID)
}

func (r *phdRepository) Count(ctx context.Context, department string) (int64, error) {
	return countForDepartment(ctx, r.pool, "phd_scholars", department)
}

func (r *phdRepository) CountByStatus(ctx context.Context, department, status string) (int64, error) {
	var (
		query string
		args  []any
	)
	if department == "" {
		query = `SELECT COUNT(*) FROM phd_scholars WHERE LOWER(status) = LOWER($1)`
		args = []any{status}
	} else {
		query = `
            SELECT COUNT(*) FROM phd_scholars p
            JOIN staff_details s ON s.user_id = p.user_id
            WHERE s.department = $1 AND LOWER(p.status) = LOWER($2)`
		args = []any{department, status}
	}

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *phdRepository) CountCompleted(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM phd_scholars WHERE status=$1`, domain.PhdStatusCompleted).Scan(&count)
	return count, err
}

func (r *phdRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM phd_scholars`).Scan(&count)
	return count, err
}
