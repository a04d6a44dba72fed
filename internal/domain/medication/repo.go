package medication

import "context"

type Repository interface {
	FindByPatient(ctx context.Context, patientID string) ([]*Medication, error)
	// Upsert writes one sheet line, inserting or overwriting the row with the
	// same composite key. Reports whether a new row was created.
	Upsert(ctx context.Context, m *Medication) (bool, error)
}
