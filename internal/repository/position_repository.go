package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// AdministrationPositionRepository manages administrative position rows.
type AdministrationPositionRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.AdministrationPosition, error)
	Create(ctx context.Context, pos *domain.AdministrationPosition) error
	Update(ctx context.Context, pos *domain.AdministrationPosition) error
	Delete(ctx context.Context, id, userID string) error
	Count(ctx context.Context, department string) (int64, error)
}

type administrationPositionRepository struct {
	pool *pgxpool.Pool
}

// NewAdministrationPositionRepository instantiates the repository.
func NewAdministrationPositionRepository(pool *pgxpool.Pool) AdministrationPositionRepository {
	return &administrationPositionRepository{pool: pool}
}

func (r *administrationPositionRepository) ListByUser(ctx context.Context, userID string) ([]domain.AdministrationPosition, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, position, year_from, year_to, created_at, updated_at
         FROM administration_positions WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.AdministrationPosition
	for rows.Next() {
		var p domain.AdministrationPosition
		if err := rows.Scan(&p.ID, &p.UserID, &p.Position, &p.YearFrom, &p.YearTo, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *administrationPositionRepository) Create(ctx context.Context, pos *domain.AdministrationPosition) error {
	const query = `
        INSERT INTO administration_positions (user_id, position, year_from, year_to)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, pos.UserID, pos.Position, pos.YearFrom, pos.YearTo).
		Scan(&pos.ID, &pos.CreatedAt, &pos.UpdatedAt)
}

func (r *administrationPositionRepository) Update(ctx context.Context, pos *domain.AdministrationPosition) error {
	const query = `
        UPDATE administration_positions SET position=$1, year_from=$2, year_to=$3, updated_at=NOW()
        WHERE id=$4 AND user_id=$5`
	cmd, err := r.pool.Exec(ctx, query, pos.Position, pos.YearFrom, pos.YearTo, pos.ID, pos.UserID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *administrationPositionRepository) Delete(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.pool, "administration_positions", id, userID)
}

func (r *administrationPositionRepository) Count(ctx context.Context, department string) (int64, error) {
	return countForDepartment(ctx, r.pool, "administration_positions", department)
}

// HonoraryPositionRepository manages honorary position rows.
type HonoraryPositionRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.HonoraryPosition, error)
	Create(ctx context.Context, pos *domain.HonoraryPosition) error
	Update(ctx context.Context, pos *domain.HonoraryPosition) error
	Delete(ctx context.Context, id, userID string) error
	Count(ctx context.Context, department string) (int64, error)
}

type honoraryPositionRepository struct {
	pool *pgxpool.Pool
}

// NewHonoraryPositionRepository instantiates the repository.
func NewHonoraryPositionRepository(pool *pgxpool.Pool) HonoraryPositionRepository {
	return &honoraryPositionRepository{pool: pool}
}

func (r *honoraryPositionRepository) ListByUser(ctx context.Context, userID string) ([]domain.HonoraryPosition, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, position, year, created_at, updated_at
         FROM honorary_positions WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.HonoraryPosition
	for rows.Next() {
		var p domain.HonoraryPosition
		if err := rows.Scan(&p.ID, &p.UserID, &p.Position, &p.Year, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (r *honoraryPositionRepository) Create(ctx context.Context, pos *domain.HonoraryPosition) error {
	const query = `
        INSERT INTO honorary_positions (user_id, position, year)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, pos.UserID, pos.Position, pos.Year).
		Scan(&pos.ID, &pos.CreatedAt, &pos.UpdatedAt)
}

func (r *honoraryPositionRepository) Update(ctx context.Context, pos *domain.HonoraryPosition) error {
	const query = `
        UPDATE honorary_positions SET position=$1, year=$2, updated_at=NOW()
        WHERE id=$3 AND user_id=$4`
	cmd, err := r.pool.Exec(ctx, query, pos.Position, pos.Year, pos.ID, pos.UserID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *honoraryPositionRepository) Delete(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.pool, "honorary_positions", id, userID)
}

func (r *honoraryPositionRepository) Count(ctx context.Context, department string) (int64, error) {
	return countForDepartment(ctx, r.pool, "honorary_positions", department)
}
