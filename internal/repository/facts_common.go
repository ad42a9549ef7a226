package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// countForDepartment counts rows of a fact table, optionally narrowed to the
// owners' department. An empty department means the whole institution.
func countForDepartment(ctx context.Context, pool *pgxpool.Pool, table, department string) (int64, error) {
	var (
		query string
		args  []any
	)
	if department == "" {
		query = fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)
	} else {
		query = fmt.Sprintf(`
            SELECT COUNT(*) FROM %s f
            JOIN staff_details s ON s.user_id = f.user_id
            WHERE s.department = $1`, table)
		args = append(args, department)
	}

	var count int64
	if err := pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// deleteOwned removes a row scoped to its owner. A row that exists but
// belongs to someone else reports the same pgx.ErrNoRows as a missing one.
func deleteOwned(ctx context.Context, pool *pgxpool.Pool, table, id, userID string) error {
	cmd, err := pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1 AND user_id=$2`, table), id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// countOwned counts a user's rows in a fact table.
func countOwned(ctx context.Context, pool *pgxpool.Pool, table, userID string) (int64, error) {
	var count int64
	err := pool.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE user_id=$1`, table), userID).Scan(&count)
	return count, err
}
