package examination

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

type eyeDiagnosisRepoPG struct{ pool *pgxpool.Pool }

func NewEyeDiagnosisRepoPG(pool *pgxpool.Pool) Repository {
	return &eyeDiagnosisRepoPG{pool: pool}
}

func (r *eyeDiagnosisRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const eyeDiagnosisCols = `patient_id, sl_no, eye, diagnosis, created_at, updated_at`

func (r *eyeDiagnosisRepoPG) FindByPatient(ctx context.Context, patientID string) ([]*EyeDiagnosis, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+eyeDiagnosisCols+` FROM eye_diagnosis WHERE patient_id = $1 ORDER BY sl_no, eye`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*EyeDiagnosis
	for rows.Next() {
		var d EyeDiagnosis
		if err := rows.Scan(&d.PatientID, &d.SlNo, &d.Eye, &d.Diagnosis, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}

func (r *eyeDiagnosisRepoPG) Upsert(ctx context.Context, d *EyeDiagnosis) (bool, error) {
	var inserted bool
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO eye_diagnosis (patient_id, sl_no, eye, diagnosis)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (patient_id, sl_no, eye) DO UPDATE SET
			diagnosis = EXCLUDED.diagnosis, updated_at = NOW()
		RETURNING (xmax = 0)`,
		d.PatientID, d.SlNo, d.Eye, d.Diagnosis,
	).Scan(&inserted)
	return inserted, err
}
