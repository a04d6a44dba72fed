package prescription

import "time"

// EyePrescription is a refraction row keyed by (patient_id, eye, vision_type).
// A patient carries at most one row per eye per vision type; resubmitting the
// refraction sheet overwrites in place.
type EyePrescription struct {
	PatientID  string    `db:"patient_id" json:"patient_id"`
	Eye        string    `db:"eye" json:"eye"`
	VisionType string    `db:"vision_type" json:"vision_type"`
	Sphere     string    `db:"sphere" json:"sphere"`
	Cylinder   string    `db:"cylinder" json:"cylinder"`
	Axis       string    `db:"axis" json:"axis"`
	VA         string    `db:"va" json:"va"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

var eyeRequiredFields = []string{"eye", "vision_type", "sphere", "cylinder", "axis", "va"}

func (p *EyePrescription) field(name string) bool {
	switch name {
	case "eye":
		return p.Eye != ""
	case "vision_type":
		return p.VisionType != ""
	case "sphere":
		return p.Sphere != ""
	case "cylinder":
		return p.Cylinder != ""
	case "axis":
		return p.Axis != ""
	case "va":
		return p.VA != ""
	}
	return false
}

// GlassPrescription is the dispensed-glasses row, keyed by (patient_id, eye).
type GlassPrescription struct {
	PatientID string    `db:"patient_id" json:"patient_id"`
	Eye       string    `db:"eye" json:"eye"`
	GlassType string    `db:"glass_type" json:"glass_type"`
	LensType  string    `db:"lens_type" json:"lens_type"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

var glassRequiredFields = []string{"eye", "glass_type", "lens_type"}

func (p *GlassPrescription) field(name string) bool {
	switch name {
	case "eye":
		return p.Eye != ""
	case "glass_type":
		return p.GlassType != ""
	case "lens_type":
		return p.LensType != ""
	}
	return false
}
