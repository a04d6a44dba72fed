package patient

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/drishti/clinic/internal/platform/rest"
)

type mockRepo struct {
	patients map[string]*Patient
	failWith error
	inserts  int
	updates  int
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: map[string]*Patient{}}
}

func (m *mockRepo) GetByID(_ context.Context, id string) (*Patient, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	p, ok := m.patients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *p
	return &cp, nil
}

func (m *mockRepo) Insert(_ context.Context, p *Patient) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.inserts++
	cp := *p
	m.patients[p.PatientID] = &cp
	return nil
}

func (m *mockRepo) UpdateDemographics(_ context.Context, p *Patient) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.updates++
	cur := m.patients[p.PatientID]
	cur.Name, cur.Age, cur.Sex, cur.Address, cur.Mobile = p.Name, p.Age, p.Sex, p.Address, p.Mobile
	return nil
}

func (m *mockRepo) Search(_ context.Context, _ string, _ int) ([]*Patient, error) {
	var out []*Patient
	for _, p := range m.patients {
		out = append(out, p)
	}
	return out, nil
}

func intakePayload() *Payload {
	return &Payload{
		Name: "Asha Verma", Age: 34, Sex: "F", Address: "12 Lake Rd",
		Mobile: "9876543210", Date: "2026-08-30", Time: "10:30",
		PatientType: "new", ConsultancyFee: 500, PaymentStatus: "paid",
	}
}

func TestCreateOrUpdate_CreatesNewPatient(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	created, err := svc.CreateOrUpdate(context.Background(), "1756543800", intakePayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected created=true for a new patient")
	}
	p := repo.patients["1756543800"]
	if p == nil || p.Name != "Asha Verma" || p.ConsultancyFee != 500 {
		t.Fatalf("stored patient wrong: %+v", p)
	}
	if p.VisitAt.Format("2006-01-02 15:04") != "2026-08-30 10:30" {
		t.Fatalf("visit time not parsed: %v", p.VisitAt)
	}
}

func TestCreateOrUpdate_MissingIntakeField(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p := intakePayload()
	p.PaymentStatus = ""
	_, err := svc.CreateOrUpdate(context.Background(), "p1", p)
	var ve *rest.ValidationError
	if !errors.As(err, &ve) || ve.Field != "payment_status" {
		t.Fatalf("expected missing payment_status, got %v", err)
	}
	if repo.inserts != 0 {
		t.Fatal("nothing should be written on a validation failure")
	}
}

func TestCreateOrUpdate_UpdateTouchesOnlyDemographics(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	if _, err := svc.CreateOrUpdate(context.Background(), "p1", intakePayload()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	created, err := svc.CreateOrUpdate(context.Background(), "p1", &Payload{
		Name: "Asha V", Age: 35, Sex: "F", Address: "14 Lake Rd", Mobile: "9876543211",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatal("expected created=false for an existing patient")
	}
	p := repo.patients["p1"]
	if p.Name != "Asha V" || p.Age != 35 || p.Address != "14 Lake Rd" {
		t.Fatalf("demographics not updated: %+v", p)
	}
	if p.ConsultancyFee != 500 || p.PaymentStatus != "paid" {
		t.Fatalf("write-once fields changed: %+v", p)
	}
}

func TestCreateOrUpdate_UpdateOmitsVisitFields(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	if _, err := svc.CreateOrUpdate(context.Background(), "p1", intakePayload()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// date/time/fee are not required on the update path.
	_, err := svc.CreateOrUpdate(context.Background(), "p1", &Payload{
		Name: "Asha", Age: 34, Sex: "F", Address: "12 Lake Rd", Mobile: "9876543210",
	})
	if err != nil {
		t.Fatalf("update without intake fields should pass: %v", err)
	}
}

func TestCreateOrUpdate_RejectsBadAgeAndMobile(t *testing.T) {
	svc := NewService(newMockRepo())

	p := intakePayload()
	p.Age = 150
	if _, err := svc.CreateOrUpdate(context.Background(), "p1", p); err == nil {
		t.Fatal("age 150 should be rejected")
	}

	p = intakePayload()
	p.Mobile = "0876543210"
	if _, err := svc.CreateOrUpdate(context.Background(), "p1", p); err == nil {
		t.Fatal("mobile starting with 0 should be rejected")
	}
}

func TestCreateOrUpdate_EmptyPatientID(t *testing.T) {
	svc := NewService(newMockRepo())
	_, err := svc.CreateOrUpdate(context.Background(), "", intakePayload())
	var ve *rest.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	_, err := svc.Get(context.Background(), "ghost")
	var nf *rest.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestGet_StorageFaultPassesThrough(t *testing.T) {
	repo := newMockRepo()
	repo.failWith = errors.New("connection reset")
	svc := NewService(repo)
	_, err := svc.Get(context.Background(), "p1")
	if err == nil || errors.As(err, new(*rest.NotFoundError)) {
		t.Fatalf("storage fault must not read as not-found: %v", err)
	}
}
