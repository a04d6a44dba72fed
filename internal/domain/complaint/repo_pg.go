package complaint

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drishti/clinic/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type complaintRepoPG struct{ pool *pgxpool.Pool }

func NewComplaintRepoPG(pool *pgxpool.Pool) Repository {
	return &complaintRepoPG{pool: pool}
}

func (r *complaintRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *complaintRepoPG) ListOptions(ctx context.Context) ([]*Option, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, complaint_options FROM complaints_list ORDER BY complaint_options`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.ID, &o.Text); err != nil {
			return nil, err
		}
		items = append(items, &o)
	}
	return items, rows.Err()
}

func (r *complaintRepoPG) AddOrTouch(ctx context.Context, text string) (bool, error) {
	// Concurrent submissions of the same option race to insert; the conflict
	// clause collapses the loser into a no-op update.
	var inserted bool
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO complaints_list (complaint_options)
		VALUES ($1)
		ON CONFLICT (complaint_options) DO UPDATE SET complaint_options = EXCLUDED.complaint_options
		RETURNING (xmax = 0)`, text,
	).Scan(&inserted)
	return inserted, err
}
