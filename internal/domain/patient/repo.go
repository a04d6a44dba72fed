package patient

import "context"

// Repository is the persistence contract for patient master records.
type Repository interface {
	GetByID(ctx context.Context, patientID string) (*Patient, error)
	Insert(ctx context.Context, p *Patient) error
	// UpdateDemographics rewrites only the mutable identity fields; the
	// visit and financial columns captured at intake are never touched.
	UpdateDemographics(ctx context.Context, p *Patient) error
	Search(ctx context.Context, query string, limit int) ([]*Patient, error)
}
