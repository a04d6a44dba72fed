package medication

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

// BatchResult reports how a sheet submission landed.
type BatchResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

func (s *Service) List(ctx context.Context, patientID string) ([]*Medication, error) {
	if patientID == "" {
		return nil, rest.Invalid("Patient ID is required")
	}
	items, err := s.repo.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, rest.NotFound("Medication")
	}
	return items, nil
}

// UpsertBatch validates the whole sheet before touching storage, then writes
// every line keyed on (patient_id, sl_no). A single missing field anywhere
// rejects the entire batch with no rows written.
func (s *Service) UpsertBatch(ctx context.Context, patientID string, items []*Medication) (*BatchResult, error) {
	if patientID == "" {
		return nil, rest.Invalid("Patient ID is required")
	}
	for _, m := range items {
		for _, f := range requiredFields {
			if !m.field(f) {
				return nil, rest.MissingField(f)
			}
		}
	}
	res := &BatchResult{}
	err := db.RunInTx(ctx, s.db, func(ctx context.Context) error {
		for _, m := range items {
			m.PatientID = patientID
			created, err := s.repo.Upsert(ctx, m)
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
