package medication

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

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

	api.GET("/medication/:id", h.GetMedications, role)
	api.POST("/medication/:id", h.SaveMedications, role)
	api.OPTIONS("/medication/:id", rest.Options("GET", "POST"))
}

func (h *Handler) GetMedications(c echo.Context) error {
	id := c.Param("id")
	items, err := h.svc.List(c.Request().Context(), id)
	if err != nil {
		return rest.ServiceError(c, h.log, "medication", id, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SaveMedications(c echo.Context) error {
	id := c.Param("id")
	var items []*Medication
	if err := c.Bind(&items); err != nil || items == nil {
		return rest.Message(c, http.StatusBadRequest, "Invalid data format")
	}
	res, err := h.svc.UpsertBatch(c.Request().Context(), id, items)
	if err != nil {
		return rest.ServiceError(c, h.log, "medication", id, err)
	}
	if res.Updated == 0 {
		return rest.Message(c, http.StatusCreated, "Medications added")
	}
	return rest.Message(c, http.StatusOK, "Medications processed")
}
