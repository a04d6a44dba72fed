package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newCtx(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMissingField_Message(t *testing.T) {
	err := MissingField("medicine")
	if err.Error() != "Missing required field: medicine" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if err.Field != "medicine" {
		t.Errorf("expected field medicine, got %s", err.Field)
	}
}

func TestServiceError_Validation(t *testing.T) {
	c, rec := newCtx(t)
	logger := zerolog.New(os.Stderr)

	err := ServiceError(c, logger, "medication", "p1", MissingField("dose"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if want := `"Missing required field: dose"`; !strings.Contains(rec.Body.String(), want) {
		t.Errorf("body %s missing %s", rec.Body.String(), want)
	}
}

func TestServiceError_WrappedValidation(t *testing.T) {
	c, rec := newCtx(t)
	logger := zerolog.New(os.Stderr)

	wrapped := fmt.Errorf("upsert batch: %w", Invalid("Invalid data format"))
	if err := ServiceError(c, logger, "medication", "p1", wrapped); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestServiceError_NotFound(t *testing.T) {
	c, rec := newCtx(t)
	logger := zerolog.New(os.Stderr)

	if err := ServiceError(c, logger, "diagnosis", "p1", NotFound("Diagnosis")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Diagnosis not found") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestServiceError_StorageFault(t *testing.T) {
	c, rec := newCtx(t)
	logger := zerolog.New(os.Stderr)

	if err := ServiceError(c, logger, "patient", "p1", errors.New("connection refused")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Error("internal fault detail leaked to the client")
	}
}

func TestOptions_SetsAllowHeader(t *testing.T) {
	c, rec := newCtx(t)

	h := Options(http.MethodGet, http.MethodPost)
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.Header().Get("Allow"); got != "GET, POST" {
		t.Errorf("expected Allow 'GET, POST', got %q", got)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
