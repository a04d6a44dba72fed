package diagnosis

import (
	"fmt"
	"time"
)

// Diagnosis is the singleton clinical note row for a patient. The free-text
// fields grow append-only across visits; prior visits' text is never edited.
type Diagnosis struct {
	PatientID       string    `db:"patient_id" json:"patient_id"`
	Complaint       string    `db:"complaint" json:"complaint"`
	ClinicalComment string    `db:"clinical_comment" json:"clinical_comment"`
	ActionPlan      string    `db:"action_plan" json:"action_plan"`
	ReviewDate      time.Time `db:"review_date" json:"review_date"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// Patch is a partial submission. Nil means the field was absent from the
// payload and must be left untouched; an empty string is a present value.
type Patch struct {
	Complaint       *string `json:"complaint"`
	ClinicalComment *string `json:"clinical_comment"`
	ActionPlan      *string `json:"action_plan"`
	ReviewDate      *string `json:"review_date"`
}

func (p *Patch) Empty() bool {
	return p.Complaint == nil && p.ClinicalComment == nil && p.ActionPlan == nil && p.ReviewDate == nil
}

var reviewDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseReviewDate(s string) (time.Time, error) {
	for _, layout := range reviewDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid review_date: %q", s)
}
