package examination

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

func (s *Service) List(ctx context.Context, patientID string) ([]*EyeDiagnosis, error) {
	if patientID == "" {
		return nil, rest.Invalid("Patient ID is required")
	}
	items, err := s.repo.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, rest.NotFound("Eye Diagnosis")
	}
	return items, nil
}

// UpsertBatch prechecks every entry, then writes the full batch. Earlier
// revisions of the sheet stopped after the first entry; every entry is
// processed now, with creates and overwrites counted separately.
func (s *Service) UpsertBatch(ctx context.Context, patientID string, items []*EyeDiagnosis) (*BatchResult, error) {
	if patientID == "" {
		return nil, rest.Invalid("Patient ID is required")
	}
	for _, d := range items {
		for _, f := range requiredFields {
			if !d.field(f) {
				return nil, rest.MissingField(f)
			}
		}
	}
	res := &BatchResult{}
	err := db.RunInTx(ctx, s.db, func(ctx context.Context) error {
		for _, d := range items {
			d.PatientID = patientID
			created, err := s.repo.Upsert(ctx, d)
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
