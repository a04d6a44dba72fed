package diagnosis

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/drishti/clinic/internal/domain/complaint"
	"github.com/drishti/clinic/internal/platform/rest"
	"github.com/drishti/clinic/pkg/notefield"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, patientID string) (*Diagnosis, error) {
	if patientID == "" {
		return nil, rest.Invalid("Patient ID is required")
	}
	d, err := s.repo.GetByPatient(ctx, patientID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, rest.NotFound("Diagnosis")
	}
	return d, err
}

// ComplaintHistory decodes the stored complaint note into its structured
// entries. The note holds the flat line form the complaint form writes.
func (s *Service) ComplaintHistory(ctx context.Context, patientID string) ([]complaint.Record, error) {
	d, err := s.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return complaint.DecodeLines(d.Complaint), nil
}

// appendOnly guards the clinical note fields: an update may extend the stored
// text but never rewrite what earlier visits recorded.
func appendOnly(field, stored, incoming string) error {
	if !notefield.Extends(stored, incoming) {
		return &rest.ValidationError{Field: field, Msg: field + " can only be appended to"}
	}
	return nil
}

// Upsert creates the patient's diagnosis row or applies a partial update.
// Absent patch fields are left untouched. Returns true on create.
func (s *Service) Upsert(ctx context.Context, patientID string, patch *Patch) (bool, error) {
	if patientID == "" {
		return false, rest.Invalid("Patient ID is required")
	}

	existing, err := s.repo.GetByPatient(ctx, patientID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	if existing != nil && err == nil {
		if patch.Empty() {
			return false, rest.Invalid("No fields to update")
		}
		if patch.Complaint != nil {
			if err := appendOnly("complaint", existing.Complaint, *patch.Complaint); err != nil {
				return false, err
			}
			existing.Complaint = *patch.Complaint
		}
		if patch.ClinicalComment != nil {
			if err := appendOnly("clinical_comment", existing.ClinicalComment, *patch.ClinicalComment); err != nil {
				return false, err
			}
			existing.ClinicalComment = *patch.ClinicalComment
		}
		if patch.ActionPlan != nil {
			if err := appendOnly("action_plan", existing.ActionPlan, *patch.ActionPlan); err != nil {
				return false, err
			}
			existing.ActionPlan = *patch.ActionPlan
		}
		if patch.ReviewDate != nil {
			t, err := parseReviewDate(*patch.ReviewDate)
			if err != nil {
				return false, rest.Invalid(err.Error())
			}
			existing.ReviewDate = t
		}
		return false, s.repo.Update(ctx, existing)
	}

	if patch.Empty() {
		return false, rest.Invalid("No data to create")
	}
	for _, f := range []struct {
		name string
		val  *string
	}{
		{"complaint", patch.Complaint},
		{"clinical_comment", patch.ClinicalComment},
		{"action_plan", patch.ActionPlan},
		{"review_date", patch.ReviewDate},
	} {
		if f.val == nil {
			return false, rest.MissingField(f.name)
		}
	}
	reviewDate, err := parseReviewDate(*patch.ReviewDate)
	if err != nil {
		return false, rest.Invalid(err.Error())
	}
	return true, s.repo.Insert(ctx, &Diagnosis{
		PatientID:       patientID,
		Complaint:       *patch.Complaint,
		ClinicalComment: *patch.ClinicalComment,
		ActionPlan:      *patch.ActionPlan,
		ReviewDate:      reviewDate,
	})
}
