package examination

import "context"

type Repository interface {
	FindByPatient(ctx context.Context, patientID string) ([]*EyeDiagnosis, error)
	Upsert(ctx context.Context, d *EyeDiagnosis) (bool, error)
}
