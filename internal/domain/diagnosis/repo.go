package diagnosis

import "context"

type Repository interface {
	GetByPatient(ctx context.Context, patientID string) (*Diagnosis, error)
	Insert(ctx context.Context, d *Diagnosis) error
	Update(ctx context.Context, d *Diagnosis) error
}
