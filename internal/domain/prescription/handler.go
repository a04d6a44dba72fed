package prescription

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

	api.GET("/eye-prescription/:id", h.GetEyePrescriptions, role)
	api.POST("/eye-prescription/:id", h.SaveEyePrescriptions, role)
	api.OPTIONS("/eye-prescription/:id", rest.Options("GET", "POST"))

	api.GET("/glass-prescription/:id", h.GetGlassPrescriptions, role)
	api.POST("/glass-prescription/:id", h.SaveGlassPrescriptions, role)
	api.OPTIONS("/glass-prescription/:id", rest.Options("GET", "POST"))
}

func (h *Handler) GetEyePrescriptions(c echo.Context) error {
	id := c.Param("id")
	items, err := h.svc.ListEye(c.Request().Context(), id)
	if err != nil {
		return rest.ServiceError(c, h.log, "eye_prescription", id, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SaveEyePrescriptions(c echo.Context) error {
	id := c.Param("id")
	var items []*EyePrescription
	if err := c.Bind(&items); err != nil || items == nil {
		return rest.Message(c, http.StatusBadRequest, "Invalid data format")
	}
	res, err := h.svc.UpsertEyeBatch(c.Request().Context(), id, items)
	if err != nil {
		return rest.ServiceError(c, h.log, "eye_prescription", id, err)
	}
	if res.Updated == 0 {
		return rest.Message(c, http.StatusCreated, "Eye prescriptions processed")
	}
	return rest.Message(c, http.StatusOK, "Eye prescriptions processed")
}

func (h *Handler) GetGlassPrescriptions(c echo.Context) error {
	id := c.Param("id")
	items, err := h.svc.ListGlass(c.Request().Context(), id)
	if err != nil {
		return rest.ServiceError(c, h.log, "glass_prescription", id, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) SaveGlassPrescriptions(c echo.Context) error {
	id := c.Param("id")
	var items []*GlassPrescription
	if err := c.Bind(&items); err != nil || items == nil {
		return rest.Message(c, http.StatusBadRequest, "Invalid data format")
	}
	res, err := h.svc.UpsertGlassBatch(c.Request().Context(), id, items)
	if err != nil {
		return rest.ServiceError(c, h.log, "glass_prescription", id, err)
	}
	if res.Updated == 0 {
		return rest.Message(c, http.StatusCreated, "Glass prescriptions processed")
	}
	return rest.Message(c, http.StatusOK, "Glass prescriptions processed")
}
