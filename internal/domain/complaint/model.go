package complaint

import "fmt"

// Option is one entry of the shared complaint vocabulary doctors pick from.
// The option text itself is the natural key.
type Option struct {
	ID   int64  `db:"id" json:"id"`
	Text string `db:"complaint_options" json:"complaintOptions"`
}

// Record is one structured complaint line of a patient's history.
type Record struct {
	ID           int    `json:"id"`
	Eye          string `json:"eye"`
	Type         string `json:"type"`
	Duration     string `json:"duration"`
	DurationUnit string `json:"durationUnit"`
}

var validEyes = map[string]bool{"OU": true, "OS": true, "OD": true}

var validDurationUnits = map[string]bool{
	"Hours": true, "Days": true, "Weeks": true, "Months": true, "Years": true,
}

// Validate applies the vocabulary rules to a newly entered record. Records
// decoded from stored history are display-only and skip this.
func (r *Record) Validate() error {
	if !validEyes[r.Eye] {
		return fmt.Errorf("invalid eye %q, want OU, OS or OD", r.Eye)
	}
	if !validDurationUnits[r.DurationUnit] {
		return fmt.Errorf("invalid duration unit %q", r.DurationUnit)
	}
	if r.Type == "" {
		return fmt.Errorf("complaint type is required")
	}
	if r.Duration == "" {
		return fmt.Errorf("duration is required")
	}
	return nil
}

// NextID numbers a new record after everything already on screen: the
// fetched history plus the lines added in this sitting.
func NextID(fetched, added int) int {
	return fetched + added + 1
}
