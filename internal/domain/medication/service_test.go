package medication

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/drishti/clinic/internal/platform/rest"
)

type mockRepo struct {
	rows     map[string]*Medication
	failWith error
}

func newMockRepo() *mockRepo {
	return &mockRepo{rows: map[string]*Medication{}}
}

func key(patientID string, slNo int) string {
	return fmt.Sprintf("%s/%d", patientID, slNo)
}

func (m *mockRepo) FindByPatient(_ context.Context, patientID string) ([]*Medication, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var out []*Medication
	for _, r := range m.rows {
		if r.PatientID == patientID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRepo) Upsert(_ context.Context, med *Medication) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	k := key(med.PatientID, med.SlNo)
	_, exists := m.rows[k]
	cp := *med
	m.rows[k] = &cp
	return !exists, nil
}

func sheet() []*Medication {
	return []*Medication{
		{SlNo: 1, Eye: "right", Form: "drop", Medicine: "Timolol", Dose: "1", Frequency: "BD", Duration: "30 days", Remark: "before food"},
		{SlNo: 2, Eye: "both", Form: "tablet", Medicine: "Acetazolamide", Dose: "250mg", Frequency: "OD", Duration: "7 days", Remark: "after food"},
	}
}

func TestUpsertBatch_CreatesAllRows(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, nil)

	res, err := svc.UpsertBatch(context.Background(), "p1", sheet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created != 2 || res.Updated != 0 {
		t.Fatalf("expected 2 created, got %+v", res)
	}
	if len(repo.rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(repo.rows))
	}
}

func TestUpsertBatch_ResubmissionUpdatesInPlace(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, nil)
	if _, err := svc.UpsertBatch(context.Background(), "p1", sheet()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	second := sheet()
	second[0].Dose = "2"
	res, err := svc.UpsertBatch(context.Background(), "p1", second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created != 0 || res.Updated != 2 {
		t.Fatalf("expected 2 updated, got %+v", res)
	}
	if len(repo.rows) != 2 {
		t.Fatalf("row count grew on resubmission: %d", len(repo.rows))
	}
	if repo.rows[key("p1", 1)].Dose != "2" {
		t.Fatal("dose not rewritten")
	}
}

func TestUpsertBatch_MissingFieldRejectsWholeBatch(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, nil)

	batch := sheet()
	batch[1].Medicine = ""
	_, err := svc.UpsertBatch(context.Background(), "p1", batch)
	var ve *rest.ValidationError
	if !errors.As(err, &ve) || ve.Field != "medicine" {
		t.Fatalf("expected missing medicine, got %v", err)
	}
	if len(repo.rows) != 0 {
		t.Fatalf("batch with a gap must write nothing, wrote %d rows", len(repo.rows))
	}
}

func TestUpsertBatch_MixedCreateAndUpdate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, nil)
	if _, err := svc.UpsertBatch(context.Background(), "p1", sheet()[:1]); err != nil {
		t.Fatalf("seed: %v", err)
	}

	res, err := svc.UpsertBatch(context.Background(), "p1", sheet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created != 1 || res.Updated != 1 {
		t.Fatalf("expected mixed outcome, got %+v", res)
	}
}

func TestUpsertBatch_ScopedToPatient(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, nil)
	if _, err := svc.UpsertBatch(context.Background(), "p1", sheet()); err != nil {
		t.Fatalf("seed p1: %v", err)
	}

	// Same sl_no under a different patient must not collide.
	res, err := svc.UpsertBatch(context.Background(), "p2", sheet())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created != 2 {
		t.Fatalf("expected 2 created for p2, got %+v", res)
	}
}

func TestList_NotFoundWhenEmpty(t *testing.T) {
	svc := NewService(newMockRepo(), nil)
	_, err := svc.List(context.Background(), "ghost")
	var nf *rest.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestUpsertBatch_EmptyPatientID(t *testing.T) {
	svc := NewService(newMockRepo(), nil)
	_, err := svc.UpsertBatch(context.Background(), "", sheet())
	var ve *rest.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpsertBatch_DuplicateKeyInBatchLastWriteWins(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo, nil)

	// Two lines share sl_no 1; the later one overwrites the earlier.
	batch := []*Medication{
		{SlNo: 1, Eye: "right", Form: "drop", Medicine: "Timolol", Dose: "1gtt", Frequency: "BD", Duration: "30 days", Remark: "before food"},
		{SlNo: 1, Eye: "left", Form: "drop", Medicine: "Timolol", Dose: "2gtt", Frequency: "BD", Duration: "30 days", Remark: "before food"},
	}
	res, err := svc.UpsertBatch(context.Background(), "p1", batch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created != 1 || res.Updated != 1 {
		t.Fatalf("expected 1 created and 1 updated, got %+v", res)
	}
	if len(repo.rows) != 1 {
		t.Fatalf("expected a single row, got %d", len(repo.rows))
	}
	row := repo.rows[key("p1", 1)]
	if row.Dose != "2gtt" || row.Eye != "left" {
		t.Fatalf("later line must win, got dose=%q eye=%q", row.Dose, row.Eye)
	}
}
