package patient

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/drishti/clinic/internal/platform/rest"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// intakeFields is the full required set for a first submission; updateFields
// is the restricted set for a returning patient. Checked in form order so the
// first gap is the one reported.
var intakeFields = []string{"name", "age", "sex", "address", "mobile", "date", "time",
	"patient_type", "consultancy_fee", "payment_status"}

var updateFields = []string{"name", "age", "sex", "address", "mobile"}

func (p *Payload) field(name string) bool {
	switch name {
	case "name":
		return p.Name != ""
	case "age":
		return p.Age != 0
	case "sex":
		return p.Sex != ""
	case "address":
		return p.Address != ""
	case "mobile":
		return p.Mobile != ""
	case "date":
		return p.Date != ""
	case "time":
		return p.Time != ""
	case "patient_type":
		return p.PatientType != ""
	case "consultancy_fee":
		return p.ConsultancyFee != 0
	case "payment_status":
		return p.PaymentStatus != ""
	}
	return false
}

func requireFields(p *Payload, names []string) error {
	for _, n := range names {
		if !p.field(n) {
			return rest.MissingField(n)
		}
	}
	return nil
}

func (s *Service) Get(ctx context.Context, patientID string) (*Patient, error) {
	if patientID == "" {
		return nil, rest.Invalid("Patient ID is required")
	}
	p, err := s.repo.GetByID(ctx, patientID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, rest.NotFound("Patient")
	}
	return p, err
}

// CreateOrUpdate registers a new patient or, when the record already exists,
// rewrites the mutable demographics only. Visit and financial fields are
// write-once at intake. Returns true when a new record was created.
func (s *Service) CreateOrUpdate(ctx context.Context, patientID string, p *Payload) (bool, error) {
	if patientID == "" {
		return false, rest.Invalid("Patient ID is required")
	}

	existing, err := s.repo.GetByID(ctx, patientID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	if existing != nil && err == nil {
		if err := requireFields(p, updateFields); err != nil {
			return false, err
		}
		if err := p.ValidateDemographics(); err != nil {
			return false, rest.Invalid(err.Error())
		}
		existing.Name = p.Name
		existing.Age = p.Age
		existing.Sex = p.Sex
		existing.Address = p.Address
		existing.Mobile = p.Mobile
		return false, s.repo.UpdateDemographics(ctx, existing)
	}

	if err := requireFields(p, intakeFields); err != nil {
		return false, err
	}
	if err := p.ValidateDemographics(); err != nil {
		return false, rest.Invalid(err.Error())
	}
	visitAt, err := p.VisitTime()
	if err != nil {
		return false, rest.Invalid(err.Error())
	}
	return true, s.repo.Insert(ctx, &Patient{
		PatientID:      patientID,
		Name:           p.Name,
		Age:            p.Age,
		Sex:            p.Sex,
		Address:        p.Address,
		Mobile:         p.Mobile,
		VisitAt:        visitAt,
		PatientType:    p.PatientType,
		ConsultancyFee: p.ConsultancyFee,
		PaymentStatus:  p.PaymentStatus,
	})
}

func (s *Service) Search(ctx context.Context, query string, limit int) ([]*Patient, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.Search(ctx, query, limit)
}
