package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/faculty-service/internal/domain"
)

// StaffDetailsRepository handles the one-per-user profile record. The
// user_id unique constraint makes the one-to-one explicit at the store
// level, so Upsert is the only write path.
type StaffDetailsRepository interface {
	Upsert(ctx context.Context, details *domain.StaffDetails) error
	GetByUserID(ctx context.Context, userID string) (*domain.StaffDetails, error)
	List(ctx context.Context) ([]domain.StaffDetails, error)
	ListByDepartment(ctx context.Context, department string) ([]domain.StaffDetails, error)
}

type staffDetailsRepository struct {
	pool *pgxpool.Pool
}

// NewStaffDetailsRepository instantiates the repository.
func NewStaffDetailsRepository(pool *pgxpool.Pool) StaffDetailsRepository {
	return &staffDetailsRepository{pool: pool}
}

const staffDetailsColumns = `id, user_id, prefix, name, department, department_order, institution, phone, address, website, picture_url, created_at, updated_at`

func scanStaffDetails(row pgx.Row) (*domain.StaffDetails, error) {
	var d domain.StaffDetails
	if err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.Prefix,
		&d.Name,
		&d.Department,
		&d.DepartmentOrder,
		&d.Institution,
		&d.Phone,
		&d.Address,
		&d.Website,
		&d.PictureURL,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *staffDetailsRepository) Upsert(ctx context.Context, details *domain.StaffDetails) error {
	const query = `
        INSERT INTO staff_details (user_id, prefix, name, department, department_order, institution, phone, address, website, picture_url)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        ON CONFLICT (user_id) DO UPDATE SET
            prefix=EXCLUDED.prefix,
            name=EXCLUDED.name,
            department=EXCLUDED.department,
            department_order=EXCLUDED.department_order,
            institution=EXCLUDED.institution,
            phone=EXCLUDED.phone,
            address=EXCLUDED.address,
            website=EXCLUDED.website,
            picture_url=EXCLUDED.picture_url,
            updated_at=NOW()
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		details.UserID,
		details.Prefix,
		details.Name,
		details.Department,
		details.DepartmentOrder,
		details.Institution,
		details.Phone,
		details.Address,
		details.Website,
		details.PictureURL,
	).Scan(&details.ID, &details.CreatedAt, &details.UpdatedAt)
}

func (r *staffDetailsRepository) GetByUserID(ctx context.Context, userID string) (*domain.StaffDetails, error) {
	return scanStaffDetails(r.pool.QueryRow(ctx,
		`SELECT `+staffDetailsColumns+` FROM staff_details WHERE user_id=$1`, userID))
}

func (r *staffDetailsRepository) List(ctx context.Context) ([]domain.StaffDetails, error) {
	return r.list(ctx, `SELECT `+staffDetailsColumns+` FROM staff_details ORDER BY department_order, name`)
}

func (r *staffDetailsRepository) ListByDepartment(ctx context.Context, department string) ([]domain.StaffDetails, error) {
	return r.list(ctx, `SELECT `+staffDetailsColumns+` FROM staff_details WHERE department=$1 ORDER BY department_order, name`, department)
}

func (r *staffDetailsRepository) list(ctx context.Context, query string, args ...any) ([]domain.StaffDetails, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffDetails
	for rows.Next() {
		d, err := scanStaffDetails(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	return result, rows.Err()
}
