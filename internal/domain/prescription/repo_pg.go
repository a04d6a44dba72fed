package prescription

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

type prescriptionRepoPG struct{ pool *pgxpool.Pool }

func NewPrescriptionRepoPG(pool *pgxpool.Pool) Repository {
	return &prescriptionRepoPG{pool: pool}
}

func (r *prescriptionRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const eyePrescriptionCols = `patient_id, eye, vision_type, sphere, cylinder, axis, va, created_at, updated_at`

func (r *prescriptionRepoPG) FindEyeByPatient(ctx context.Context, patientID string) ([]*EyePrescription, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+eyePrescriptionCols+` FROM eye_prescription WHERE patient_id = $1 ORDER BY eye, vision_type`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*EyePrescription
	for rows.Next() {
		var p EyePrescription
		if err := rows.Scan(&p.PatientID, &p.Eye, &p.VisionType, &p.Sphere, &p.Cylinder,
			&p.Axis, &p.VA, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

func (r *prescriptionRepoPG) UpsertEye(ctx context.Context, p *EyePrescription) (bool, error) {
	var inserted bool
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO eye_prescription (patient_id, eye, vision_type, sphere, cylinder, axis, va)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (patient_id, eye, vision_type) DO UPDATE SET
			sphere = EXCLUDED.sphere, cylinder = EXCLUDED.cylinder,
			axis = EXCLUDED.axis, va = EXCLUDED.va, updated_at = NOW()
		RETURNING (xmax = 0)`,
		p.PatientID, p.Eye, p.VisionType, p.Sphere, p.Cylinder, p.Axis, p.VA,
	).Scan(&inserted)
	return inserted, err
}

const glassPrescriptionCols = `patient_id, eye, glass_type, lens_type, created_at, updated_at`

func (r *prescriptionRepoPG) FindGlassByPatient(ctx context.Context, patientID string) ([]*GlassPrescription, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+glassPrescriptionCols+` FROM glass_prescription WHERE patient_id = $1 ORDER BY eye`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*GlassPrescription
	for rows.Next() {
		var p GlassPrescription
		if err := rows.Scan(&p.PatientID, &p.Eye, &p.GlassType, &p.LensType, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

func (r *prescriptionRepoPG) UpsertGlass(ctx context.Context, p *GlassPrescription) (bool, error) {
	var inserted bool
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO glass_prescription (patient_id, eye, glass_type, lens_type)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (patient_id, eye) DO UPDATE SET
			glass_type = EXCLUDED.glass_type, lens_type = EXCLUDED.lens_type, updated_at = NOW()
		RETURNING (xmax = 0)`,
		p.PatientID, p.Eye, p.GlassType, p.LensType,
	).Scan(&inserted)
	return inserted, err
}
