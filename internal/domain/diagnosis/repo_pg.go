package diagnosis

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

type diagnosisRepoPG struct{ pool *pgxpool.Pool }

func NewDiagnosisRepoPG(pool *pgxpool.Pool) Repository {
	return &diagnosisRepoPG{pool: pool}
}

func (r *diagnosisRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const diagnosisCols = `patient_id, complaint, clinical_comment, action_plan, review_date,
	created_at, updated_at`

func (r *diagnosisRepoPG) GetByPatient(ctx context.Context, patientID string) (*Diagnosis, error) {
	var d Diagnosis
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT `+diagnosisCols+` FROM diagnosis WHERE patient_id = $1`, patientID,
	).Scan(&d.PatientID, &d.Complaint, &d.ClinicalComment, &d.ActionPlan, &d.ReviewDate,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *diagnosisRepoPG) Insert(ctx context.Context, d *Diagnosis) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO diagnosis (patient_id, complaint, clinical_comment, action_plan, review_date)
		VALUES ($1,$2,$3,$4,$5)`,
		d.PatientID, d.Complaint, d.ClinicalComment, d.ActionPlan, d.ReviewDate)
	return err
}

func (r *diagnosisRepoPG) Update(ctx context.Context, d *Diagnosis) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE diagnosis SET complaint=$2, clinical_comment=$3, action_plan=$4, review_date=$5,
			updated_at=NOW()
		WHERE patient_id = $1`,
		d.PatientID, d.Complaint, d.ClinicalComment, d.ActionPlan, d.ReviewDate)
	return err
}
