package patient

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
	role := auth.RequireRole("doctor", "reception")

	api.GET("/patients", h.SearchPatients, role)
	api.GET("/patients/:id", h.GetPatient, role)
	api.POST("/patients/:id", h.SavePatient, role)
	api.OPTIONS("/patients/:id", rest.Options("GET", "POST"))
}

func (h *Handler) GetPatient(c echo.Context) error {
	id := c.Param("id")
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return rest.ServiceError(c, h.log, "patient", id, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) SavePatient(c echo.Context) error {
	id := c.Param("id")
	var p Payload
	if err := c.Bind(&p); err != nil {
		return rest.Message(c, http.StatusBadRequest, "Invalid data format")
	}
	created, err := h.svc.CreateOrUpdate(c.Request().Context(), id, &p)
	if err != nil {
		return rest.ServiceError(c, h.log, "patient", id, err)
	}
	if created {
		return rest.Message(c, http.StatusCreated, "Patient added")
	}
	return rest.Message(c, http.StatusOK, "Patient updated")
}

func (h *Handler) SearchPatients(c echo.Context) error {
	q := c.QueryParam("q")
	items, err := h.svc.Search(c.Request().Context(), q, 20)
	if err != nil {
		return rest.ServiceError(c, h.log, "patient", q, err)
	}
	return c.JSON(http.StatusOK, items)
}
