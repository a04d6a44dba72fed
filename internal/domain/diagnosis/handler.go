package diagnosis

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/drishti/clinic/internal/domain/complaint"
	"github.com/drishti/clinic/internal/platform/auth"
	"github.com/drishti/clinic/internal/platform/rest"
)

type Handler struct {
	svc *Service
	log zerolog.Logger
}

func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole("doctor")

	api.GET("/diagnosis/:id", h.GetDiagnosis, role)
	api.POST("/diagnosis/:id", h.SaveDiagnosis, role)
	api.OPTIONS("/diagnosis/:id", rest.Options("GET", "POST"))
	api.GET("/diagnosis/:id/complaints", h.GetComplaintHistory, role)
}

func (h *Handler) GetDiagnosis(c echo.Context) error {
	id := c.Param("id")
	d, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return rest.ServiceError(c, h.log, "diagnosis", id, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) GetComplaintHistory(c echo.Context) error {
	id := c.Param("id")
	records, err := h.svc.ComplaintHistory(c.Request().Context(), id)
	if err != nil {
		return rest.ServiceError(c, h.log, "diagnosis", id, err)
	}
	if records == nil {
		records = []complaint.Record{}
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) SaveDiagnosis(c echo.Context) error {
	id := c.Param("id")
	var patch Patch
	if err := c.Bind(&patch); err != nil {
		return rest.Message(c, http.StatusBadRequest, "Invalid data format")
	}
	created, err := h.svc.Upsert(c.Request().Context(), id, &patch)
	if err != nil {
		return rest.ServiceError(c, h.log, "diagnosis", id, err)
	}
	if created {
		return rest.Message(c, http.StatusCreated, "Diagnosis added")
	}
	return rest.Message(c, http.StatusOK, "Diagnosis updated")
}
