package complaint

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

	api.GET("/complaints", h.ListOptions, role)
	api.POST("/complaints", h.AddOption, role)
	api.OPTIONS("/complaints", rest.Options("GET", "POST"))
}

func (h *Handler) ListOptions(c echo.Context) error {
	items, err := h.svc.ListOptions(c.Request().Context())
	if err != nil {
		return rest.ServiceError(c, h.log, "complaints_list", "", err)
	}
	if items == nil {
		items = []*Option{}
	}
	return c.JSON(http.StatusOK, items)
}

type addOptionPayload struct {
	ComplaintOptions string `json:"complaintOptions"`
}

func (h *Handler) AddOption(c echo.Context) error {
	var p addOptionPayload
	if err := c.Bind(&p); err != nil {
		return rest.Message(c, http.StatusBadRequest, "Invalid data format")
	}
	created, err := h.svc.AddOrTouch(c.Request().Context(), p.ComplaintOptions)
	if err != nil {
		return rest.ServiceError(c, h.log, "complaints_list", p.ComplaintOptions, err)
	}
	if created {
		return rest.Message(c, http.StatusCreated, "Complaint added")
	}
	return rest.Message(c, http.StatusOK, "Complaint updated")
}
