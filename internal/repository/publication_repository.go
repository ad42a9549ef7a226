package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// PublicationRepository manages publication rows.
type PublicationRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Publication, error)
	ListAll(ctx context.Context) ([]domain.Publication, error)
	Create(ctx context.Context, pub *domain.Publication) error
	Update(ctx context.Context, pub *domain.Publication) error
	Delete(ctx context.Context, id, userID string) error
	Count(ctx context.Context, department string) (int64, error)
	// CountByYear counts publications whose free-text month-year mentions
	// the given year, optionally narrowed to a department.
	CountByYear(ctx context.Context, department, year string) (int64, error)
}

type publicationRepository struct {
	pool *pgxpool.Pool
}

// NewPublicationRepository instantiates the repository.
func NewPublicationRepository(pool *pgxpool.Pool) PublicationRepository {
	return &publicationRepository{pool: pool}
}

const publicationColumns = `id, user_id, publication_title, publication_link, publication_type, publication_month_year, created_at, updated_at`

func scanPublication(row pgx.Row) (*domain.Publication, error) {
	var p domain.Publication
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Link, &p.Type, &p.MonthAndYear, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *publicationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Publication, error) {
	return r.list(ctx, `SELECT `+publicationColumns+` FROM publications WHERE user_id=$1 ORDER BY created_at`, userID)
}

func (r *publicationRepository) ListAll(ctx context.Context) ([]domain.Publication, error) {
	return r.list(ctx, `SELECT `+publicationColumns+` FROM publications ORDER BY user_id, created_at`)
}

func (r *publicationRepository) list(ctx context.Context, query string, args ...any) ([]domain.Publication, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Publication
	for rows.Next() {
		p, err := scanPublication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	return result, rows.Err()
}

func (r *publicationRepository) Create(ctx context.Context, pub *domain.Publication) error {
	const query = `
        INSERT INTO publications (user_id, publication_title, publication_link, publication_type, publication_month_year)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		pub.UserID,
		pub.Title,
		pub.Link,
		pub.Type,
		pub.MonthAndYear,
	).Scan(&pub.ID, &pub.CreatedAt, &pub.UpdatedAt)
}

func (r *publicationRepository) Update(ctx context.Context, pub *domain.Publication) error {
	const query = `
        UPDATE publications
        SET publication_title=$1, publication_link=$2, publication_type=$3, publication_month_year=$4, updated_at=NOW()
        WHERE id=$5 AND user_id=$6`
	cmd, err := r.pool.Exec(ctx, query,
		pub.Title,
		pub.Link,
		pub.Type,
		pub.MonthAndYear,
		pub.ID,
		pub.UserID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *publicationRepository) Delete(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.pool, "publications", id, userID)
}

func (r *publicationRepository) Count(ctx context.Context, department string) (int64, error) {
	return countForDepartment(ctx, r.pool, "publications", department)
}

func (r *publicationRepository) CountByYear(ctx context.Context, department, year string) (int64, error) {
	var (
		query string
		args  []any
	)
	if department == "" {
		query = `SELECT COUNT(*) FROM publications WHERE publication_month_year ILIKE '%' || $1 || '%'`
		args = []any{year}
	} else {
		query = `
            SELECT COUNT(*) FROM publications p
            JOIN staff_details s ON s.user_id = p.user_id
            WHERE s.department = $1 AND p.publication_month_year ILIKE '%' || $2 || '%'`
		args = []any{department, year}
	}

	var count int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
