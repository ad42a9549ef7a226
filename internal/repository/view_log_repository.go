package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ViewCount pairs a user with a number of logged views.
type ViewCount struct {
	UserID string
	Views  int64
}

// ViewLogRepository appends and aggregates profile view events. Rows are
// write-once; there is no update path.
type ViewLogRepository interface {
	Insert(ctx context.Context, userID, ip string) error
	// RecentExists reports whether the same IP viewed the same profile at
	// or after the given time. This is the Postgres fallback for the dedup
	// window; it is check-then-act, not atomic.
	RecentExists(ctx context.Context, userID, ip string, since time.Time) (bool, error)
	// TopViewed groups views by user, optionally restricted to
	// viewed_at >= since (zero time means all-time), ordered by count
	// descending, capped at limit.
	TopViewed(ctx context.Context, since time.Time, limit int) ([]ViewCount, error)
	// CountForUser counts a user's views within [from, to); zero bounds are
	// open ends.
	CountForUser(ctx context.Context, userID string, from, to time.Time) (int64, error)
}

type viewLogRepository struct {
	pool *pgxpool.Pool
}

// NewViewLogRepository instantiates the repository.
func NewViewLogRepository(pool *pgxpool.Pool) ViewLogRepository {
	return &viewLogRepository{pool: pool}
}

func (r *viewLogRepository) Insert(ctx context.Context, userID, ip string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO profile_view_logs (user_id, ip) VALUES ($1,$2)`, userID, ip)
	return err
}

func (r *viewLogRepository) RecentExists(ctx context.Context, userID, ip string, since time.Time) (bool, error) {
	const query = `
        SELECT EXISTS(
            SELECT 1 FROM profile_view_logs
            WHERE user_id=$1 AND ip=$2 AND viewed_at >= $3)`
	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, ip, since).Scan(&exists)
	return exists, err
}

func (r *viewLogRepository) TopViewed(ctx context.Context, since time.Time, limit int) ([]ViewCount, error) {
	var (
		query string
		args  []any
	)
	if since.IsZero() {
		query = `
            SELECT user_id, COUNT(*) AS views FROM profile_view_logs
            GROUP BY user_id ORDER BY views DESC LIMIT $1`
		args = []any{limit}
	} else {
		query = `
            SELECT user_id, COUNT(*) AS views FROM profile_view_logs
            WHERE viewed_at >= $1
            GROUP BY user_id ORDER BY views DESC LIMIT $2`
		args = []any{since, limit}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ViewCount
	for rows.Next() {
		var vc ViewCount
		if err := rows.Scan(&vc.UserID, &vc.Views); err != nil {
			return nil, err
		}
		result = append(result, vc)
	}
	return result, rows.Err()
}

func (r *viewLogRepository) CountForUser(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM profile_view_logs WHERE user_id=$1`
	args := []any{userID}
	if !from.IsZero() {
		args = append(args, from)
		query += ` AND viewed_at >= $2`
	}
	if !to.IsZero() {
		args = append(args, to)
		if len(args) == 3 {
			query += ` AND viewed_at < $3`
		} else {
			query += ` AND viewed_at < $2`
		}
	}

	var count int64
	err := r.pool.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}
