package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// FundingRepository manages funded project rows.
type FundingRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Funding, error)
	ListAll(ctx context.Context) ([]domain.Funding, error)
	Create(ctx context.Context, funding *domain.Funding) error
	Update(ctx context.Context, funding *domain.Funding) error
	Delete(ctx context.Context, id, userID string) error
	Count(ctx context.Context, department string) (int64, error)
	// SumAmountByYear totals funding whose free-text month-year mentions the
	// given year, optionally narrowed to a department.
	SumAmountByYear(ctx context.Context, department, year string) (float64, error)
}

type fundingRepository struct {
	pool *pgxpool.Pool
}

// NewFundingRepository instantiates the repository.
func NewFundingRepository(pool *pgxpool.Pool) FundingRepository {
	return &fundingRepository{pool: pool}
}

const fundingColumns = `id, user_id, project_title, funding_agency, funding_month_year, funding_amount, funding_status, created_at, updated_at`

func scanFunding(row pgx.Row) (*domain.Funding, error) {
	var f domain.Funding
	if err := row.Scan(&f.ID, &f.UserID, &f.ProjectTitle, &f.FundingAgency, &f.MonthAndYear, &f.Amount, &f.Status, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *fundingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Funding, error) {
	return r.list(ctx, `SELECT `+fundingColumns+` FROM fundings WHERE user_id=$1 ORDER BY created_at`, userID)
}

func (r *fundingRepository) ListAll(ctx context.Context) ([]domain.Funding, error) {
	return r.list(ctx, `SELECT `+fundingColumns+` FROM fundings ORDER BY user_id, created_at`)
}

func (r *fundingRepository) list(ctx context.Context, query string, args ...any) ([]domain.Funding, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Funding
	for rows.Next() {
		f, err := scanFunding(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *f)
	}
	return result, rows.Err()
}

func (r *fundingRepository) Create(ctx context.Context, funding *domain.Funding) error {
	const query = `
        INSERT INTO fundings (user_id, project_title, funding_agency, funding_month_year, funding_amount, funding_status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		funding.UserID,
		funding.ProjectTitle,
		funding.FundingAgency,
		funding.MonthAndYear,
		funding.Amount,
		funding.Status,
	).Scan(&funding.ID, &funding.CreatedAt, &funding.UpdatedAt)
}

func (r *fundingRepository) Update(ctx context.Context, funding *domain.Funding) error {
	const query = `
        UPDATE fundings
        SET project_title=$1, funding_agency=$2, funding_month_year=$3, funding_amount=$4, funding_status=$5, updated_at=NOW()
        WHERE id=$6 AND user_id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		funding.ProjectTitle,
		funding.FundingAgency,
		funding.MonthAndYear,
		funding.Amount,
		funding.Status,
		funding.ID,
		funding.UserID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *fundingRepository) Delete(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.pool, "fundings", id, userID)
}

func (r *fundingRepository) Count(ctx context.Context, department string) (int64, error) {
	return countForDepartment(ctx, r.pool, "fundings", department)
}

func (r *fundingRepository) SumAmountByYear(ctx context.Context, department, year string) (float64, error) {
	var (
		query string
		args  []any
	)
	if department == "" {
		query = `SELECT COALESCE(SUM(funding_amount), 0) FROM fundings WHERE funding_month_year ILIKE '%' || $1 || '%'`
		args = []any{year}
	} else {
		query = `
            SELECT COALESCE(SUM(f.funding_amount), 0) FROM fundings f
            JOIN staff_details s ON s.user_id = f.user_id
            WHERE s.department = $1 AND f.funding_month_year ILIKE '%' || $2 || '%'`
		args = []any{department, year}
	}

	var total float64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
