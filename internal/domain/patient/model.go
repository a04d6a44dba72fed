package patient

import (
	"fmt"
	"regexp"
	"time"
)

// Patient maps to the patient table. patient_id is supplied by the intake
// client (derived from the intake timestamp) and is the lookup key for
// every child-record family.
type Patient struct {
	PatientID      string    `db:"patient_id" json:"patient_id"`
	Name           string    `db:"name" json:"name"`
	Age            int       `db:"age" json:"age"`
	Sex            string    `db:"sex" json:"sex"`
	Address        string    `db:"address" json:"address"`
	Mobile         string    `db:"mobile" json:"mobile"`
	VisitAt        time.Time `db:"visit_at" json:"visit_at"`
	PatientType    string    `db:"patient_type" json:"patient_type"`
	ConsultancyFee float64   `db:"consultancy_fee" json:"consultancy_fee"`
	PaymentStatus  string    `db:"payment_status" json:"payment_status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// Payload carries an intake or demographic-update submission. Whether each
// field is required depends on whether the patient already exists; visit and
// financial fields are write-once.
type Payload struct {
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	Sex            string  `json:"sex"`
	Address        string  `json:"address"`
	Mobile         string  `json:"mobile"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	PatientType    string  `json:"patient_type"`
	ConsultancyFee float64 `json:"consultancy_fee"`
	PaymentStatus  string  `json:"payment_status"`
}

var mobilePattern = regexp.MustCompile(`^[1-9][0-9]{9}$`)

// ValidateDemographics applies the intake form's field rules.
func (p *Payload) ValidateDemographics() error {
	if p.Age < 1 || p.Age > 120 {
		return fmt.Errorf("age must be between 1 and 120")
	}
	if !mobilePattern.MatchString(p.Mobile) {
		return fmt.Errorf("mobile number must be 10 digits and cannot start with 0")
	}
	return nil
}

// VisitTime parses the intake date and time into the visit timestamp of
// record. Accepts HH:MM and HH:MM:SS clock forms.
func (p *Payload) VisitTime() (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04"} {
		if t, err := time.Parse(layout, p.Date+" "+p.Time); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid visit date/time: %q %q", p.Date, p.Time)
}
