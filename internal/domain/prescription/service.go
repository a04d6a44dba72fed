package prescription

import (
	"context"

	"github.com/drishti/clinic/internal/platform/db"
	"github.com/drishti/clinic/internal/platform/rest"
)

type Service struct {
	repo Repository
	db   db.Beginner
}

// NewService wires the repository. When beginner is non-nil every batch
// runs in a single transaction, so a mid-batch failure writes nothing.
func NewService(repo Repository, beginner db.Beginner) *Service {
	return &Service{repo: repo, db: beginner}
}

type BatchResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

func (s *Service) ListEye(ctx context.Context, patientID string) ([]*EyePrescription, error) {
	if patientID == "" {
		return nil, rest.Invalid("Patient ID is required")
	}
	items, err := s.repo.FindEyeByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, rest.NotFound("Eye Prescription")
	}
	return items, nil
}

func (s *Service) UpsertEyeBatch(ctx context.Context, patientID string, items []*EyePrescription) (*BatchResult, error) {
	if patientID == "" {
		return nil, rest.Invalid("Patient ID is required")
	}
	for _, p := range items {
		for _, f := range eyeRequiredFields {
			if !p.field(f) {
				return nil, rest.MissingField(f)
			}
		}
	}
	res := &BatchResult{}
	err := db.RunInTx(ctx, s.db, func(ctx context.Context) error {
		for _, p := range items {
			p.PatientID = patientID
			created, err := s.repo.UpsertEye(ctx, p)
			if err != nil {
				return err
			}
			if created {
				res.Created++
			} else {
				res.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Service) ListGlass(ctx context.Context, patientID string) ([]*GlassPrescription, error) {
	if patientID == "" {
		return nil, rest.Invalid("Patient ID is required")
	}
	items, err := s.repo.FindGlassByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, rest.NotFound("Glass Prescription")
	}
	return items, nil
}

func (s *Service) UpsertGlassBatch(ctx context.Context, patientID string, items []*GlassPrescription) (*BatchResult, error) {
	if patientID == "" {
		return nil, rest.Invalid("Patient ID is required")
	}
	for _, p := range items {
		for _, f := range glassRequiredFields {
			if !p.field(f) {
				return nil, rest.MissingField(f)
			}
		}
	}
	res := &BatchResult{}
	err := db.RunInTx(ctx, s.db, func(ctx context.Context) error {
		for _, p := range items {
			p.PatientID = patientID
			created, err := s.repo.UpsertGlass(ctx, p)
			if err != nil {
				return err
			}
			if created {
				res.Created++
			} else {
				res.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
