package examination

import "time"

// EyeDiagnosis is one per-eye finding on the examination sheet, keyed by
// (patient_id, sl_no, eye) so each serial line can carry a finding for
// either eye independently.
type EyeDiagnosis struct {
	PatientID string    `db:"patient_id" json:"patient_id"`
	SlNo      int       `db:"sl_no" json:"sl_no"`
	Eye       string    `db:"eye" json:"eye"`
	Diagnosis string    `db:"diagnosis" json:"diagnosis"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

var requiredFields = []string{"sl_no", "eye", "diagnosis"}

func (d *EyeDiagnosis) field(name string) bool {
	switch name {
	case "sl_no":
		return d.SlNo != 0
	case "eye":
		return d.Eye != ""
	case "diagnosis":
		return d.Diagnosis != ""
	}
	return false
}
