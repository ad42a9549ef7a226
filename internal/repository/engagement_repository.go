package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// ResourcePersonRepository manages invited-talk rows.
type ResourcePersonRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.ResourcePerson, error)
	Create(ctx context.Context, rp *domain.ResourcePerson) error
	Update(ctx context.Context, rp *domain.ResourcePerson) error
	Delete(ctx context.Context, id, userID string) error
	Count(ctx context.Context, department string) (int64, error)
}

type resourcePersonRepository struct {
	pool *pgxpool.Pool
}

// NewResourcePersonRepository instantiates the repository.
func NewResourcePersonRepository(pool *pgxpool.Pool) ResourcePersonRepository {
	return &resourcePersonRepository{pool: pool}
}

func (r *resourcePersonRepository) ListByUser(ctx context.Context, userID string) ([]domain.ResourcePerson, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, topic, department, date, created_at, updated_at
         FROM resource_persons WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ResourcePerson
	for rows.Next() {
		var rp domain.ResourcePerson
		if err := rows.Scan(&rp.ID, &rp.UserID, &rp.Topic, &rp.Department, &rp.Date, &rp.CreatedAt, &rp.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, rp)
	}
	return result, rows.Err()
}

func (r *resourcePersonRepository) Create(ctx context.Context, rp *domain.ResourcePerson) error {
	const query = `
        INSERT INTO resource_persons (user_id, topic, department, date)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query, rp.UserID, rp.Topic, rp.Department, rp.Date).
		Scan(&rp.ID, &rp.CreatedAt, &rp.UpdatedAt)
}

func (r *resourcePersonRepository) Update(ctx context.Context, rp *domain.ResourcePerson) error {
	const query = `
        UPDATE resource_persons SET topic=$1, department=$2, date=$3, updated_at=NOW()
        WHERE id=$4 AND user_id=$5`
	cmd, err := r.pool.Exec(ctx, query, rp.Topic, rp.Department, rp.Date, rp.ID, rp.UserID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *resourcePersonRepository) Delete(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.pool, "resource_persons", id, userID)
}

func (r *resourcePersonRepository) Count(ctx context.Context, department string) (int64, error) {
	return countForDepartment(ctx, r.pool, "resource_persons", department)
}

// NoteRepository manages the single-field fact tables; collaborations,
// consultancies, career highlights and research careers share the shape and
// differ only by backing table.
type NoteRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Note, error)
	Create(ctx context.Context, note *domain.Note) error
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id, userID string) error
	CountByUser(ctx context.Context, userID string) (int64, error)
	Count(ctx context.Context, department string) (int64, error)
}

type noteRepository struct {
	pool  *pgxpool.Pool
	table string
}

// NewNoteRepository builds a note repository bound to one fact table.
func NewNoteRepository(pool *pgxpool.Pool, table string) NoteRepository {
	return &noteRepository{pool: pool, table: table}
}

func (r *noteRepository) ListByUser(ctx context.Context, userID string) ([]domain.Note, error) {
	query := fmt.Sprintf(`SELECT id, user_id, details, created_at, updated_at FROM %s WHERE user_id=$1 ORDER BY created_at`, r.table)
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Details, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, rows.Err()
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	query := fmt.Sprintf(`INSERT INTO %s (user_id, details) VALUES ($1,$2) RETURNING id, created_at, updated_at`, r.table)
	return r.pool.QueryRow(ctx, query, note.UserID, note.Details).
		Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
}

func (r *noteRepository) Update(ctx context.Context, note *domain.Note) error {
	query := fmt.Sprintf(`UPDATE %s SET details=$1, updated_at=NOW() WHERE id=$2 AND user_id=$3`, r.table)
	cmd, err := r.pool.Exec(ctx, query, note.Details, note.ID, note.UserID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.pool, r.table, id, userID)
}

func (r *noteRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return countOwned(ctx, r.pool, r.table, userID)
}

func (r *noteRepository) Count(ctx context.Context, department string) (int64, error) {
	return countForDepartment(ctx, r.pool, r.table, department)
}
