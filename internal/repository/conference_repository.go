package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// ConferenceRepository manages conference paper rows.
type ConferenceRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Conference, error)
	Create(ctx context.Context, conf *domain.Conference) error
	Update(ctx context.Context, conf *domain.Conference) error
	Delete(ctx context.Context, id, userID string) error
	Count(ctx context.Context, department string) (int64, error)
}

type conferenceRepository struct {
	pool *pgxpool.Pool
}

// NewConferenceRepository instantiates the repository.
func NewConferenceRepository(pool *pgxpool.Pool) ConferenceRepository {
	return &conferenceRepository{pool: pool}
}

const conferenceColumns = `id, user_id, paper_title, conference_details, conference_type, isbn, year, created_at, updated_at`

func scanConference(row pgx.Row) (*domain.Conference, error) {
	var c domain.Conference
	if err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Details, &c.Type, &c.ISBN, &c.Year, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *conferenceRepository) ListByUser(ctx context.Context, userID string) ([]domain.Conference, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+conferenceColumns+` FROM conferences WHERE user_id=$1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Conference
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

func (r *conferenceRepository) Create(ctx context.Context, conf *domain.Conference) error {
	const query = `
        INSERT INTO conferences (user_id, paper_title, conference_details, conference_type, isbn, year)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		conf.UserID,
		conf.Title,
		conf.Details,
		conf.Type,
		conf.ISBN,
		conf.Year,
	).Scan(&conf.ID, &conf.CreatedAt, &conf.UpdatedAt)
}

func (r *conferenceRepository) Update(ctx context.Context, conf *domain.Conference) error {
	const query = `
        UPDATE conferences
        SET paper_title=$1, conference_details=$2, conference_type=$3, isbn=$4, year=$5, updated_at=NOW()
        WHERE id=$6 AND user_id=$7`
	cmd, err := r.pool.Exec(ctx, query,
		conf.Title,
		conf.Details,
		conf.Type,
		conf.ISBN,
		conf.Year,
		conf.ID,
		conf.UserID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *conferenceRepository) Delete(ctx context.Context, id, userID string) error {
	return deleteOwned(ctx, r.pool, "conferences", id, userID)
}

func (r *conferenceRepository) Count(ctx context.Context, department string) (int64, error) {
	return countForDepartment(ctx, r.pool, "conferences", department)
}
