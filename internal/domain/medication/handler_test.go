package medication

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestHandler(repo Repository) *Handler {
	return NewHandler(NewService(repo, nil), zerolog.Nop())
}

func doRequest(h echo.HandlerFunc, method, body, paramID string) *httptest.ResponseRecorder {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/medication/"+paramID, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/medication/"+paramID, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(paramID)
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

const sheetJSON = `[
	{"sl_no":1,"eye":"right","form":"drop","medicine":"Timolol","dose":"1","frequency":"BD","duration":"30 days","remark":"before food"},
	{"sl_no":2,"eye":"both","form":"tablet","medicine":"Acetazolamide","dose":"250mg","frequency":"OD","duration":"7 days","remark":"after food"}
]`

func TestSaveMedications_AllCreatedReturns201(t *testing.T) {
	h := newTestHandler(newMockRepo())
	rec := doRequest(h.SaveMedications, http.MethodPost, sheetJSON, "p1")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Medications added") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSaveMedications_ResubmissionReturns200(t *testing.T) {
	repo := newMockRepo()
	h := newTestHandler(repo)
	if rec := doRequest(h.SaveMedications, http.MethodPost, sheetJSON, "p1"); rec.Code != http.StatusCreated {
		t.Fatalf("seed: %d", rec.Code)
	}
	rec := doRequest(h.SaveMedications, http.MethodPost, sheetJSON, "p1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on resubmission, got %d", rec.Code)
	}
}

func TestSaveMedications_MissingFieldReturns400(t *testing.T) {
	h := newTestHandler(newMockRepo())
	body := `[{"sl_no":1,"eye":"right","form":"drop","dose":"1","frequency":"BD","duration":"30 days","remark":"x"}]`
	rec := doRequest(h.SaveMedications, http.MethodPost, body, "p1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Missing required field: medicine") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSaveMedications_NonArrayReturns400(t *testing.T) {
	h := newTestHandler(newMockRepo())
	rec := doRequest(h.SaveMedications, http.MethodPost, `{"sl_no":1}`, "p1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid data format") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetMedications_EmptyReturns404(t *testing.T) {
	h := newTestHandler(newMockRepo())
	rec := doRequest(h.GetMedications, http.MethodGet, "", "ghost")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Medication not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
