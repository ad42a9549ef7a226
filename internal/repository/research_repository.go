package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// ResearchRepository manages research-area rows.
type ResearchRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Research, error)
	ListAll(ctx context.Context) ([]domain.Research, error)
	Create(ctx context.Context, research *domain.Research) error
	Update(ctx context.Context, research *domain.Research) error
	Delete(ctx context.Context, id, userID string) error
	Count(ctx context.Context, department string) (int64, error)
}

type researchRepository struct {
	pool *pgxpool.Pool
}

// NewResearchRepository instantiates the repository.
func NewResearchRepository(pool *pgxpool.Pool) ResearchRepository {
	return &researchRepository{pool: pool}
}

func scanResearch(row pgx.Row) (*domain.Research, error) {
	var res domain.Research
	if err := row.Scan(&res.ID, &res.UserID, &res.ResearchAreas, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *researchRepository) ListByUser(ctx context.Context, userID string) ([]domain.Research, error) {
	return r.list(ctx, `SELECT id, user_id, research_areas, created_at, updated_at FROM researches WHERE user_id=$1 ORDER BY created_at`, userID)
}

func (r *researchRepository) ListAll(ctx context.Context) ([]domain.Research, error) {
	return r.list(ctx, `SELECT id, user_id, research_areas, created_at, updated_at FROM researches ORDER BY user_id, created_at`)
}

func (r *researchRepository) list(ctx context.Context, query string, args ...any) ([]domain.Research, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Research
	for rows.Next() {
		res, err := scanResearch(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *res)
	}
	return result, rows.Err()
}

func (r *researchRepository) Create(ctx context.Context, research *domain.Research) error {
	const query = `
        INSERT INTO researches (user_id, research_areas)
        VALUES ($1,$2)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, research.UserID, research.ResearchAreas).
		Scan(&research.ID, &research.CreatedAt, &research.UpdatedAt)
}

func (r *researchRepository) Update(ctx context.Context, research *domain.Research) error {
	const query = `
        UPDATE researches SET research_areas=$1, updated_at=NOW()
        WHERE id=$2 AND user_id=$3`
	cmd, err := r.pool.Exec(ctx, query, research.ResearchAreas, research.ID, research.UserID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *researchRepository) Delete(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.pool, "researches", id, userID)
}

func (r *researchRepository) Count(ctx context.Context, department string) (int64, error) {
	return countForDepartment(ctx, r.pool, "researches", department)
}

// ResearchIDRepository manages research identifier rows.
type ResearchIDRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.ResearchID, error)
	ListAll(ctx context.Context) ([]domain.ResearchID, error)
	Create(ctx context.Context, rid *domain.ResearchID) error
	Update(ctx context.Context, rid *domain.ResearchID) error
	Delete(ctx context.Context, id, userID string) error
	Count(ctx context.Context, department string) (int64, error)
}

type researchIDRepository struct {
	pool *pgxpool.Pool
}

// NewResearchIDRepository instantiates the repository.
func NewResearchIDRepository(pool *pgxpool.Pool) ResearchIDRepository {
	return &researchIDRepository{pool: pool}
}

func scanResearchID(row pgx.Row) (*domain.ResearchID, error) {
	var rid domain.ResearchID
	if err := row.Scan(&rid.ID, &rid.UserID, &rid.ResearchTitle, &rid.ResearchLink, &rid.CreatedAt, &rid.UpdatedAt); err != nil {
		return nil, err
	}
	return &rid, nil
}

func (r *researchIDRepository) ListByUser(ctx context.Context, userID string) ([]domain.ResearchID, error) {
	return r.list(ctx, `SELECT id, user_id, research_title, research_link, created_at, updated_at FROM research_ids WHERE user_id=$1 ORDER BY created_at`, userID)
}

func (r *researchIDRepository) ListAll(ctx context.Context) ([]domain.ResearchID, error) {
	return r.list(ctx, `SELECT id, user_id, research_title, research_link, created_at, updated_at FROM research_ids ORDER BY user_id, created_at`)
}

func (r *researchIDRepository) list(ctx context.Context, query string, args ...any) ([]domain.ResearchID, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ResearchID
	for rows.Next() {
		rid, err := scanResearchID(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rid)
	}
	return result, rows.Err()
}

func (r *researchIDRepository) Create(ctx context.Context, rid *domain.ResearchID) error {
	const query = `
        INSERT INTO research_ids (user_id, research_title, research_link)
        VALUES ($1,$2,$3)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, rid.UserID, rid.ResearchTitle, rid.ResearchLink).
		Scan(&rid.ID, &rid.CreatedAt, &rid.UpdatedAt)
}

func (r *researchIDRepository) Update(ctx context.Context, rid *domain.ResearchID) error {
	const query = `
        UPDATE research_ids SET research_title=$1, research_link=$2, updated_at=NOW()
        WHERE id=$3 AND user_id=$4`
	cmd, err := r.pool.Exec(ctx, query, rid.ResearchTitle, rid.ResearchLink, rid.ID, rid.UserID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *researchIDRepository) Delete(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.pool, "research_ids", id, userID)
}

func (r *researchIDRepository) Count(ctx context.Context, department string) (int64, error) {
	return countForDepartment(ctx, r.pool, "research_ids", department)
}
