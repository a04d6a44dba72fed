package prescription

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func doRequest(h echo.HandlerFunc, method, target, body, paramID string) *httptest.ResponseRecorder {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
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

func TestSaveEyePrescriptions_AllCreatedReturns201(t *testing.T) {
	h := NewHandler(NewService(newMockRepo(), nil), zerolog.Nop())
	body := `[{"eye":"right","vision_type":"distance","sphere":"-1.25","cylinder":"-0.50","axis":"90","va":"6/9"}]`
	rec := doRequest(h.SaveEyePrescriptions, http.MethodPost, "/eye-prescription/p1", body, "p1")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSaveEyePrescriptions_MissingFieldReturns400(t *testing.T) {
	h := NewHandler(NewService(newMockRepo(), nil), zerolog.Nop())
	body := `[{"eye":"right","vision_type":"distance","sphere":"-1.25","cylinder":"-0.50","axis":"90"}]`
	rec := doRequest(h.SaveEyePrescriptions, http.MethodPost, "/eye-prescription/p1", body, "p1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Missing required field: va") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestSaveGlassPrescriptions_ResubmissionReturns200(t *testing.T) {
	repo := newMockRepo()
	h := NewHandler(NewService(repo, nil), zerolog.Nop())
	body := `[{"eye":"right","glass_type":"bifocal","lens_type":"antiglare"}]`
	if rec := doRequest(h.SaveGlassPrescriptions, http.MethodPost, "/glass-prescription/p1", body, "p1"); rec.Code != http.StatusCreated {
		t.Fatalf("seed: %d", rec.Code)
	}
	rec := doRequest(h.SaveGlassPrescriptions, http.MethodPost, "/glass-prescription/p1", body, "p1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSaveGlassPrescriptions_NonArrayReturns400(t *testing.T) {
	h := NewHandler(NewService(newMockRepo(), nil), zerolog.Nop())
	rec := doRequest(h.SaveGlassPrescriptions, http.MethodPost, "/glass-prescription/p1", `{"eye":"right"}`, "p1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid data format") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetEyePrescriptions_EmptyReturns404(t *testing.T) {
	h := NewHandler(NewService(newMockRepo(), nil), zerolog.Nop())
	rec := doRequest(h.GetEyePrescriptions, http.MethodGet, "/eye-prescription/ghost", "", "ghost")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Eye Prescription not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestGetGlassPrescriptions_EmptyReturns404(t *testing.T) {
	h := NewHandler(NewService(newMockRepo(), nil), zerolog.Nop())
	rec := doRequest(h.GetGlassPrescriptions, http.MethodGet, "/glass-prescription/ghost", "", "ghost")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Glass Prescription not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
