package prescription

import "context"

type Repository interface {
	FindEyeByPatient(ctx context.Context, patientID string) ([]*EyePrescription, error)
	UpsertEye(ctx context.Context, p *EyePrescription) (bool, error)

	FindGlassByPatient(ctx context.Context, patientID string) ([]*GlassPrescription, error)
	UpsertGlass(ctx context.Context, p *GlassPrescription) (bool, error)
}
