package medication

import "time"

// Medication is one line of a patient's medication sheet, keyed by
// (patient_id, sl_no). Resubmitting the sheet rewrites lines in place.
type Medication struct {
	PatientID string    `db:"patient_id" json:"patient_id"`
	SlNo      int       `db:"sl_no" json:"sl_no"`
	Eye       string    `db:"eye" json:"eye"`
	Form      string    `db:"form" json:"form"`
	Medicine  string    `db:"medicine" json:"medicine"`
	Dose      string    `db:"dose" json:"dose"`
	Frequency string    `db:"frequency" json:"frequency"`
	Duration  string    `db:"duration" json:"duration"`
	Remark    string    `db:"remark" json:"remark"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// requiredFields is checked in this order across the whole batch before any
// row is written.
var requiredFields = []string{"sl_no", "eye", "form", "medicine", "dose", "frequency", "duration", "remark"}

func (m *Medication) field(name string) bool {
	switch name {
	case "sl_no":
		return m.SlNo != 0
	case "eye":
		return m.Eye != ""
	case "form":
		return m.Form != ""
	case "medicine":
		return m.Medicine != ""
	case "dose":
		return m.Dose != ""
	case "frequency":
		return m.Frequency != ""
	case "duration":
		return m.Duration != ""
	case "remark":
		return m.Remark != ""
	}
	return false
}
