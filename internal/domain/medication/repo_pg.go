package medication

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

type medicationRepoPG struct{ pool *pgxpool.Pool }

func NewMedicationRepoPG(pool *pgxpool.Pool) Repository {
	return &medicationRepoPG{pool: pool}
}

func (r *medicationRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const medicationCols = `patient_id, sl_no, eye, form, medicine, dose, frequency, duration, remark,
	created_at, updated_at`

func (r *medicationRepoPG) FindByPatient(ctx context.Context, patientID string) ([]*Medication, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+medicationCols+` FROM medication WHERE patient_id = $1 ORDER BY sl_no`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Medication
	for rows.Next() {
		var m Medication
		if err := rows.Scan(&m.PatientID, &m.SlNo, &m.Eye, &m.Form, &m.Medicine, &m.Dose,
			&m.Frequency, &m.Duration, &m.Remark, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &m)
	}
	return items, rows.Err()
}

func (r *medicationRepoPG) Upsert(ctx context.Context, m *Medication) (bool, error) {
	// xmax = 0 marks a freshly inserted row, so the caller can tell a create
	// from an overwrite without a prior read.
	var inserted bool
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medication (patient_id, sl_no, eye, form, medicine, dose, frequency, duration, remark)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (patient_id, sl_no) DO UPDATE SET
			eye = EXCLUDED.eye, form = EXCLUDED.form, medicine = EXCLUDED.medicine,
			dose = EXCLUDED.dose, frequency = EXCLUDED.frequency,
			duration = EXCLUDED.duration, remark = EXCLUDED.remark, updated_at = NOW()
		RETURNING (xmax = 0)`,
		m.PatientID, m.SlNo, m.Eye, m.Form, m.Medicine, m.Dose, m.Frequency, m.Duration, m.Remark,
	).Scan(&inserted)
	return inserted, err
}
